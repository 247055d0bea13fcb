package model

// Vector3 is a raw 3-axis reading, e.g. the torso accelerometer.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Polar is a robot-relative coordinate. Alpha is the bearing in radians
// (sign convention owned by the field model), Norm the distance.
type Polar struct {
	Alpha float64 `json:"alpha"`
	Norm  float64 `json:"norm"`
}

type Ball struct {
	Visible bool  `json:"visible"`
	Coords  Polar `json:"coords"`
}

// GoalPostID names a goal post the way the field model does.
// G1R/G2R are the left and right posts of the opponent goal.
type GoalPostID string

const (
	GoalPostG1L GoalPostID = "G1L"
	GoalPostG2L GoalPostID = "G2L"
	GoalPostG1R GoalPostID = "G1R"
	GoalPostG2R GoalPostID = "G2R"
)

// Percept is one cycle of perception as delivered by the simulator bridge.
type Percept struct {
	Cycle       int                  `json:"cycle"`
	MotionReady bool                 `json:"motionReady"`
	Acc         Vector3              `json:"acc"`
	Ball        Ball                 `json:"ball"`
	GoalPosts   map[GoalPostID]Polar `json:"goalPosts"`
}

// Snapshot is the per-cycle input of a decision. Ball is only meaningful
// when BallVisible is set.
type Snapshot struct {
	Acc         Vector3
	BallVisible bool
	Ball        Polar
	LeftPost    Polar
	RightPost   Polar
}
