package rules

import (
	"log/slog"

	"github.com/nstehr/striker/model"
)

func ActionWalkForward(env RuleEnv) model.Command {
	env.Memory.Walking = true
	return model.CommandWalkForward
}

func ActionStopWalking(env RuleEnv) model.Command {
	env.Memory.Walking = false
	return model.CommandStopWalking
}

func ActionSideStepLeft(env RuleEnv) model.Command {
	slog.Debug("side-stepping left", "ball", env.Snapshot.Ball.Alpha, "leftPost", env.Snapshot.LeftPost.Alpha)
	return model.CommandSideStepLeft
}

func ActionSideStepRight(env RuleEnv) model.Command {
	slog.Debug("side-stepping right", "ball", env.Snapshot.Ball.Alpha, "rightPost", env.Snapshot.RightPost.Alpha)
	return model.CommandSideStepRight
}

func ActionStandUpFromBack(env RuleEnv) model.Command {
	return model.CommandStandUpFromBack
}

// ActionRollOverToBack is the first stage of front recovery. Once the roll
// lands, the next ready cycle classifies OnBack and stands up.
func ActionRollOverToBack(env RuleEnv) model.Command {
	return model.CommandRollOverToBack
}

func ActionTurnHeadDown(env RuleEnv) model.Command {
	env.Memory.HeadLowered = true
	return model.CommandTurnHeadDown
}

// Turning toward the last known side also ends the head-down phase so the
// next search cycle looks at the feet again.
func ActionTurnLeft(env RuleEnv) model.Command {
	env.Memory.HeadLowered = false
	return model.CommandTurnLeft
}

func ActionTurnRight(env RuleEnv) model.Command {
	env.Memory.HeadLowered = false
	return model.CommandTurnRight
}
