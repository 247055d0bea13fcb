package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nstehr/striker/ipc"
	"github.com/nstehr/striker/model"
	"github.com/nstehr/striker/rules"
)

// Session owns the decision-making for a single robot connection.
type Session struct {
	ID     string
	Conn   *ipc.Connection
	Player string
	Team   string

	view *perceptView
	ctrl *Controller
	prev *model.Memory
}

func New(conn *ipc.Connection, engine *rules.Engine) (*Session, error) {
	id := uuid.NewString()
	conn.Session = id
	view := &perceptView{}
	motion := &remoteMotion{conn: conn, view: view}
	ctrl, err := NewController(engine, motion, view, view, view)
	if err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	return &Session{ID: id, Conn: conn, view: view, ctrl: ctrl}, nil
}

// HandleHello completes the handshake so the bridge knows we are ready.
func (s *Session) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	s.Player = hello.Player
	s.Team = hello.Team
	s.Conn.Player = hello.Player
	slog.Info("player identified", "session", s.ID, "player", s.Player, "team", s.Team)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandlePercept runs one control cycle. The motion command, if any, is sent
// before the ack so the bridge can apply it in the same cycle.
func (s *Session) HandlePercept(env ipc.Envelope) (*ipc.Envelope, error) {
	var p model.Percept
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal percept: %w", err)
	}
	for _, id := range []model.GoalPostID{model.GoalPostG1R, model.GoalPostG2R} {
		if _, ok := p.GoalPosts[id]; !ok {
			return nil, fmt.Errorf("percept cycle %d: missing goal post %s", p.Cycle, id)
		}
	}

	s.view.percept = p
	d := s.ctrl.Decide()

	if d.Command != model.CommandNone {
		mem := s.ctrl.Memory()
		for _, e := range detectEvents(p.Cycle, s.prev, mem) {
			slog.Info("behavior event", "session", s.ID, "player", s.Player, "cycle", e.Cycle, "kind", e.Kind, "detail", e.Detail)
		}
		s.prev = &mem
		slog.Debug("cycle decided",
			"session", s.ID,
			"cycle", p.Cycle,
			"rule", d.Rule,
			"command", d.Command,
			"fall", mem.Fall,
			"ballInView", mem.BallInView,
			"walking", mem.Walking,
		)
	}

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok", Cycle: p.Cycle})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// Controller exposes the session's controller, mainly for inspection in tests.
func (s *Session) Controller() *Controller { return s.ctrl }

// perceptView serves the latest percept as the controller's sensors.
type perceptView struct {
	percept model.Percept
}

func (v *perceptView) Acc() model.Vector3  { return v.percept.Acc }
func (v *perceptView) Visible() bool       { return v.percept.Ball.Visible }
func (v *perceptView) Coords() model.Polar { return v.percept.Ball.Coords }

func (v *perceptView) Post(id model.GoalPostID) (Landmark, bool) {
	switch id {
	case model.GoalPostG1L, model.GoalPostG2L, model.GoalPostG1R, model.GoalPostG2R:
		return postView{view: v, id: id}, true
	}
	return nil, false
}

type postView struct {
	view *perceptView
	id   model.GoalPostID
}

func (p postView) Coords() model.Polar { return p.view.percept.GoalPosts[p.id] }

// remoteMotion forwards commands to the bridge's keyframe executor.
// Readiness comes from the latest percept.
type remoteMotion struct {
	conn *ipc.Connection
	view *perceptView
}

func (m *remoteMotion) Ready() bool { return m.view.percept.MotionReady }

func (m *remoteMotion) send(cmd model.Command) {
	err := m.conn.Send(ipc.TypeMotion, ipc.MotionCommand{Cycle: m.view.percept.Cycle, Command: cmd})
	if err != nil {
		slog.Error("failed to send motion", "command", cmd, "cycle", m.view.percept.Cycle, "error", err)
	}
}

func (m *remoteMotion) WalkForward()     { m.send(model.CommandWalkForward) }
func (m *remoteMotion) StopWalking()     { m.send(model.CommandStopWalking) }
func (m *remoteMotion) SideStepLeft()    { m.send(model.CommandSideStepLeft) }
func (m *remoteMotion) SideStepRight()   { m.send(model.CommandSideStepRight) }
func (m *remoteMotion) TurnLeft()        { m.send(model.CommandTurnLeft) }
func (m *remoteMotion) TurnRight()       { m.send(model.CommandTurnRight) }
func (m *remoteMotion) TurnHeadDown()    { m.send(model.CommandTurnHeadDown) }
func (m *remoteMotion) StandUpFromBack() { m.send(model.CommandStandUpFromBack) }
func (m *remoteMotion) RollOverToBack()  { m.send(model.CommandRollOverToBack) }
