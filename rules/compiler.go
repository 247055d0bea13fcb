package rules

import (
	"fmt"
	"strconv"
)

// CompileBehavior generates the complete rule set from a tuning.
// All conditions are built via fmt.Sprintf with interpolated thresholds;
// the compiler never generates invalid expr.
func CompileBehavior(t Tuning) []*Rule {
	t.Validate()
	var rules []*Rule

	inTolerance := fmt.Sprintf(`BallInView() && abs(BallBearing()) < %s`, num(t.ToleranceRad()))
	far := fmt.Sprintf(`BallDistance() > %s`, num(t.ToleratedDistance))
	near := fmt.Sprintf(`BallDistance() <= %s`, num(t.ToleratedDistance))

	// --- Approach / align (ball in front) ---

	rules = append(rules, &Rule{
		Name:         "approach-ball",
		Priority:     500,
		Category:     "approach",
		ConditionSrc: inTolerance + " && " + far,
		Action:       ActionWalkForward,
	})

	// Near but not lined up with the goal mouth: stop first, then side-step
	// on the following cycles.
	rules = append(rules, &Rule{
		Name:         "stop-to-align",
		Priority:     490,
		Category:     "approach",
		ConditionSrc: inTolerance + " && " + near + ` && !AlignedWithGoal() && Walking()`,
		Action:       ActionStopWalking,
	})

	rules = append(rules, &Rule{
		Name:         "side-step-left",
		Priority:     480,
		Category:     "approach",
		ConditionSrc: inTolerance + " && " + near + ` && !AlignedWithGoal() && !Walking() && LeftPostBehindBall()`,
		Action:       ActionSideStepLeft,
	})

	rules = append(rules, &Rule{
		Name:         "side-step-right",
		Priority:     470,
		Category:     "approach",
		ConditionSrc: inTolerance + " && " + near + ` && !AlignedWithGoal() && !Walking() && !LeftPostBehindBall()`,
		Action:       ActionSideStepRight,
	})

	rules = append(rules, &Rule{
		Name:         "push-to-goal",
		Priority:     460,
		Category:     "approach",
		ConditionSrc: inTolerance + " && " + near + ` && AlignedWithGoal()`,
		Action:       ActionWalkForward,
	})

	// Ball lost or drifted out of tolerance mid-walk.
	rules = append(rules, &Rule{
		Name:         "stop-walking",
		Priority:     400,
		Category:     "approach",
		ConditionSrc: `Walking()`,
		Action:       ActionStopWalking,
	})

	// --- Recovery ---

	rules = append(rules, &Rule{
		Name:         "stand-up-from-back",
		Priority:     300,
		Category:     "recovery",
		ConditionSrc: `!Walking() && OnBack()`,
		Action:       ActionStandUpFromBack,
	})

	rules = append(rules, &Rule{
		Name:         "roll-over-to-back",
		Priority:     290,
		Category:     "recovery",
		ConditionSrc: `!Walking() && OnFront()`,
		Action:       ActionRollOverToBack,
	})

	// --- Search (fallback, always matches) ---

	rules = append(rules, &Rule{
		Name:         "lower-head",
		Priority:     200,
		Category:     "search",
		ConditionSrc: `!HeadLowered()`,
		Action:       ActionTurnHeadDown,
	})

	rules = append(rules, &Rule{
		Name:         "turn-left",
		Priority:     190,
		Category:     "search",
		ConditionSrc: `BallBearing() > 0`,
		Action:       ActionTurnLeft,
	})

	rules = append(rules, &Rule{
		Name:         "turn-right",
		Priority:     180,
		Category:     "search",
		ConditionSrc: `true`,
		Action:       ActionTurnRight,
	})

	return rules
}

// num formats a threshold as a plain decimal literal without losing precision.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
