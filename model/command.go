package model

import "slices"

// Command is one motion intent. The string values are also the wire names
// sent back to the simulator bridge.
type Command string

const (
	CommandNone            Command = ""
	CommandWalkForward     Command = "walk_forward"
	CommandStopWalking     Command = "stop_walking"
	CommandSideStepLeft    Command = "side_step_left"
	CommandSideStepRight   Command = "side_step_right"
	CommandTurnLeft        Command = "turn_left"
	CommandTurnRight       Command = "turn_right"
	CommandTurnHeadDown    Command = "turn_head_down"
	CommandStandUpFromBack Command = "stand_up_from_back"
	CommandRollOverToBack  Command = "roll_over_to_back"
)

// Commands lists every command the controller can emit.
var Commands = []Command{
	CommandWalkForward,
	CommandStopWalking,
	CommandSideStepLeft,
	CommandSideStepRight,
	CommandTurnLeft,
	CommandTurnRight,
	CommandTurnHeadDown,
	CommandStandUpFromBack,
	CommandRollOverToBack,
}

// Valid reports whether c is a known, non-empty command.
func (c Command) Valid() bool {
	return slices.Contains(Commands, c)
}
