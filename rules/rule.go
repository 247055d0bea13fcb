package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/striker/model"
)

// ActionFunc runs when a rule's condition is true. It may update the
// working memory on env and returns the single motion command for the cycle.
type ActionFunc func(env RuleEnv) model.Command

// Rule is the atomic unit of behavior: a condition → action pair.
// The engine evaluates rules by priority and stops at the first match.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // approach, recovery, search; used for logging
	ConditionSrc string      // expr source (preserved for serialization)
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
