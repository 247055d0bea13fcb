package ipc

import "github.com/nstehr/striker/model"

// Command type constants. Must stay in sync with the bridge's motion dispatcher.
const (
	TypeMotion = "motion"
)

// MotionCommand asks the bridge's keyframe executor to start a motion.
type MotionCommand struct {
	Cycle   int           `json:"cycle"`
	Command model.Command `json:"command"`
}
