package rules

import "github.com/nstehr/striker/model"

// RuleEnv wraps one cycle's snapshot and the working memory, and exposes
// helper methods callable from expr expressions.
type RuleEnv struct {
	Snapshot model.Snapshot
	Memory   *model.Memory
	Tuning   Tuning
}

// BallInView is the tracking result for this cycle, set by the pre-pass.
func (e RuleEnv) BallInView() bool { return e.Memory.BallInView }

// BallBearing is the last known ball bearing. It survives cycles where the
// ball is not visible.
func (e RuleEnv) BallBearing() float64 { return e.Memory.LastBallBearing }

// BallDistance returns the distance of a visible ball, or 0 when the ball
// is out of view so no stale coordinate is ever read.
func (e RuleEnv) BallDistance() float64 {
	if !e.Snapshot.BallVisible {
		return 0
	}
	return e.Snapshot.Ball.Norm
}

// LeftPostBehindBall is the literal comparison the side-step rule uses:
// left post bearing <= ball bearing. Sign convention is the field model's.
func (e RuleEnv) LeftPostBehindBall() bool {
	if !e.Snapshot.BallVisible {
		return false
	}
	return e.Snapshot.LeftPost.Alpha <= e.Snapshot.Ball.Alpha
}

// AlignedWithGoal reports whether the ball bearing lies strictly between the
// two opponent post bearings (right < ball < left).
func (e RuleEnv) AlignedWithGoal() bool {
	if !e.Snapshot.BallVisible {
		return false
	}
	ball := e.Snapshot.Ball.Alpha
	return !(e.Snapshot.LeftPost.Alpha <= ball || e.Snapshot.RightPost.Alpha >= ball)
}

func (e RuleEnv) Walking() bool     { return e.Memory.Walking }
func (e RuleEnv) HeadLowered() bool { return e.Memory.HeadLowered }
func (e RuleEnv) Fallen() bool      { return e.Memory.Fall != model.Upright }
func (e RuleEnv) OnBack() bool      { return e.Memory.Fall == model.OnBack }
func (e RuleEnv) OnFront() bool     { return e.Memory.Fall == model.OnFront }

// observe runs the cycle's pre-pass: fall classification and ball tracking.
// Both are recomputed every cycle before any rule is evaluated.
func observe(env RuleEnv) {
	env.Memory.Fall = model.ClassifyFall(env.Snapshot.Acc, env.Tuning.UprightAccelZ)
	if env.Snapshot.BallVisible {
		env.Memory.LastBallBearing = env.Snapshot.Ball.Alpha
		env.Memory.BallInView = true
	} else {
		env.Memory.BallInView = false
	}
}
