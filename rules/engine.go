package rules

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nstehr/striker/model"
)

// Decision is the outcome of one evaluated cycle.
type Decision struct {
	Rule     string        // name of the rule that fired, empty if none
	Category string        // category of that rule
	Command  model.Command // CommandNone if no rule fired
}

// Engine runs compiled rules against a snapshot each cycle.
// Rules fire in priority order and the first match wins, so exactly one
// command comes out of a cycle. The engine holds no per-robot state; memory
// is passed in and returned so one engine can serve many controllers.
type Engine struct {
	mu     sync.RWMutex
	rules  []*Rule
	tuning Tuning
}

// NewEngine compiles the behavior for t into expr bytecode and sorts by priority.
func NewEngine(t Tuning) (*Engine, error) {
	t.Validate()
	compiled, err := compileRules(CompileBehavior(t))
	if err != nil {
		return nil, err
	}
	return &Engine{rules: compiled, tuning: t}, nil
}

// Decide evaluates one cycle. mem is not modified; the updated memory is
// returned alongside the decision.
func (e *Engine) Decide(mem model.Memory, snap model.Snapshot) (Decision, model.Memory) {
	e.mu.RLock()
	rules := e.rules
	tuning := e.tuning
	e.mu.RUnlock()

	next := mem
	env := RuleEnv{Snapshot: snap, Memory: &next, Tuning: tuning}
	observe(env)

	for _, r := range rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}

		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		cmd := r.Action(env)
		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category, "command", cmd)
		return Decision{Rule: r.Name, Category: r.Category, Command: cmd}, next
	}

	slog.Warn("no rule fired", "fall", next.Fall, "ballInView", next.BallInView, "walking", next.Walking)
	return Decision{}, next
}

// Swap atomically replaces the rule set with one compiled from t (called by
// the tuning watcher). Compiles first; if compilation fails the old rules
// remain active.
func (e *Engine) Swap(t Tuning) error {
	t.Validate()
	compiled, err := compileRules(CompileBehavior(t))
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.rules = compiled
	e.tuning = t
	e.mu.Unlock()
	slog.Info("rule set swapped",
		"tuning", t.Name,
		"count", len(compiled),
		"toleranceDeg", t.ToleranceAngleDeg,
		"toleratedDistance", t.ToleratedDistance,
		"uprightAccelZ", t.UprightAccelZ,
	)
	return nil
}

// Tuning returns the thresholds of the active rule set.
func (e *Engine) Tuning() Tuning {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tuning
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
