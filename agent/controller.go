package agent

import (
	"fmt"

	"github.com/nstehr/striker/model"
	"github.com/nstehr/striker/rules"
)

// MotionExecutor plays keyframe motions. Every command is a fire-and-forget
// request; the executor owns sequencing and reports back through Ready.
type MotionExecutor interface {
	Ready() bool
	WalkForward()
	StopWalking()
	SideStepLeft()
	SideStepRight()
	TurnLeft()
	TurnRight()
	TurnHeadDown()
	StandUpFromBack()
	RollOverToBack()
}

// FallSensor exposes the current cycle's accelerometer reading.
type FallSensor interface {
	Acc() model.Vector3
}

// BallObserver exposes the ball. Coords is only read when Visible is true.
type BallObserver interface {
	Visible() bool
	Coords() model.Polar
}

// Landmark is a static field feature whose bearing is always resolvable.
type Landmark interface {
	Coords() model.Polar
}

// GoalPosts looks up goal posts by identifier.
type GoalPosts interface {
	Post(id model.GoalPostID) (Landmark, bool)
}

// Controller is the per-robot behavior controller. Call Decide once per
// server cycle after perception has been updated; it issues at most one
// command to the motion executor.
type Controller struct {
	engine *rules.Engine
	motion MotionExecutor
	fall   FallSensor
	ball   BallObserver

	// Opponent goal posts, resolved once at construction.
	leftPost  Landmark
	rightPost Landmark

	mem model.Memory
}

// NewController wires a controller to its collaborators. The opponent goal
// posts (G1R left, G2R right) must be known to goals.
func NewController(engine *rules.Engine, motion MotionExecutor, fall FallSensor, ball BallObserver, goals GoalPosts) (*Controller, error) {
	left, ok := goals.Post(model.GoalPostG1R)
	if !ok {
		return nil, fmt.Errorf("goal post %s not found", model.GoalPostG1R)
	}
	right, ok := goals.Post(model.GoalPostG2R)
	if !ok {
		return nil, fmt.Errorf("goal post %s not found", model.GoalPostG2R)
	}
	return &Controller{
		engine:    engine,
		motion:    motion,
		fall:      fall,
		ball:      ball,
		leftPost:  left,
		rightPost: right,
	}, nil
}

// Decide selects and issues this cycle's motion. While the executor is busy
// nothing happens: no command and no memory change, so a running movement is
// never interrupted.
func (c *Controller) Decide() rules.Decision {
	if !c.motion.Ready() {
		return rules.Decision{}
	}

	decision, mem := c.engine.Decide(c.mem, c.snapshot())
	c.mem = mem
	dispatch(c.motion, decision.Command)
	return decision
}

// Memory returns a copy of the controller's retained state.
func (c *Controller) Memory() model.Memory {
	return c.mem
}

func (c *Controller) snapshot() model.Snapshot {
	snap := model.Snapshot{
		Acc:       c.fall.Acc(),
		LeftPost:  c.leftPost.Coords(),
		RightPost: c.rightPost.Coords(),
	}
	if c.ball.Visible() {
		snap.BallVisible = true
		snap.Ball = c.ball.Coords()
	}
	return snap
}

// dispatch forwards cmd to the matching executor call.
func dispatch(m MotionExecutor, cmd model.Command) {
	switch cmd {
	case model.CommandWalkForward:
		m.WalkForward()
	case model.CommandStopWalking:
		m.StopWalking()
	case model.CommandSideStepLeft:
		m.SideStepLeft()
	case model.CommandSideStepRight:
		m.SideStepRight()
	case model.CommandTurnLeft:
		m.TurnLeft()
	case model.CommandTurnRight:
		m.TurnRight()
	case model.CommandTurnHeadDown:
		m.TurnHeadDown()
	case model.CommandStandUpFromBack:
		m.StandUpFromBack()
	case model.CommandRollOverToBack:
		m.RollOverToBack()
	}
}
