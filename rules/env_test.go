package rules

import (
	"testing"

	"github.com/nstehr/striker/model"
)

func envFor(snap model.Snapshot, mem model.Memory) RuleEnv {
	return RuleEnv{Snapshot: snap, Memory: &mem, Tuning: DefaultTuning()}
}

func TestAlignedWithGoal(t *testing.T) {
	tests := []struct {
		name              string
		ball, left, right float64
		aligned           bool
		leftBehind        bool
	}{
		{"between posts", 0.05, 0.3, -0.2, true, false},
		{"left post at ball", 0.3, 0.3, -0.2, false, true},
		{"past left post", 0.5, 0.3, -0.2, false, true},
		{"right post at ball", -0.2, 0.3, -0.2, false, false},
		{"past right post", -0.4, 0.3, -0.2, false, false},
	}
	for _, tc := range tests {
		env := envFor(model.Snapshot{
			BallVisible: true,
			Ball:        model.Polar{Alpha: tc.ball, Norm: 0.5},
			LeftPost:    model.Polar{Alpha: tc.left},
			RightPost:   model.Polar{Alpha: tc.right},
		}, model.Memory{})
		if got := env.AlignedWithGoal(); got != tc.aligned {
			t.Errorf("%s: AlignedWithGoal() = %v, want %v", tc.name, got, tc.aligned)
		}
		if got := env.LeftPostBehindBall(); got != tc.leftBehind {
			t.Errorf("%s: LeftPostBehindBall() = %v, want %v", tc.name, got, tc.leftBehind)
		}
	}
}

func TestBallHelpersGatedOnVisibility(t *testing.T) {
	// Coordinates left over from the bridge must not leak through when the
	// ball is not visible.
	env := envFor(model.Snapshot{
		BallVisible: false,
		Ball:        model.Polar{Alpha: 0.1, Norm: 3},
		LeftPost:    model.Polar{Alpha: 0.3},
		RightPost:   model.Polar{Alpha: -0.2},
	}, model.Memory{LastBallBearing: -0.7})

	if got := env.BallDistance(); got != 0 {
		t.Errorf("BallDistance() = %v, want 0", got)
	}
	if env.AlignedWithGoal() || env.LeftPostBehindBall() {
		t.Error("goal alignment helpers should be false without a visible ball")
	}
	if got := env.BallBearing(); got != -0.7 {
		t.Errorf("BallBearing() = %v, want remembered -0.7", got)
	}
}

func TestObserve(t *testing.T) {
	mem := model.Memory{LastBallBearing: 0.2, BallInView: true}
	env := RuleEnv{
		Snapshot: model.Snapshot{Acc: model.Vector3{Y: -1, Z: 3}},
		Memory:   &mem,
		Tuning:   DefaultTuning(),
	}
	observe(env)
	if mem.Fall != model.OnFront {
		t.Errorf("Fall = %s, want on_front", mem.Fall)
	}
	if mem.BallInView {
		t.Error("BallInView should be cleared when the ball is not visible")
	}
	if mem.LastBallBearing != 0.2 {
		t.Errorf("LastBallBearing = %v, want retained 0.2", mem.LastBallBearing)
	}

	env.Snapshot = model.Snapshot{Acc: model.Vector3{Z: 9.8}, BallVisible: true, Ball: model.Polar{Alpha: -0.3, Norm: 2}}
	observe(env)
	if mem.Fall != model.Upright || !mem.BallInView || mem.LastBallBearing != -0.3 {
		t.Errorf("after visible cycle: %+v", mem)
	}
}
