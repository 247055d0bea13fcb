package agent

import (
	"fmt"

	"github.com/nstehr/striker/model"
)

// EventKind identifies a behavior transition worth logging.
type EventKind string

const (
	EventFell           EventKind = "fell"
	EventRecovered      EventKind = "recovered"
	EventBallAcquired   EventKind = "ball_acquired"
	EventBallLost       EventKind = "ball_lost"
	EventStartedWalking EventKind = "started_walking"
	EventStoppedWalking EventKind = "stopped_walking"
)

// Event is a transition detected by diffing memory across one decision.
type Event struct {
	Kind   EventKind
	Cycle  int
	Detail string
}

// detectEvents compares memory before and after a decision. Returns nil if
// prev is nil (first decided cycle).
func detectEvents(cycle int, prev *model.Memory, cur model.Memory) []Event {
	if prev == nil {
		return nil
	}

	var events []Event

	switch {
	case prev.Fall == model.Upright && cur.Fall != model.Upright:
		events = append(events, Event{
			Kind:   EventFell,
			Cycle:  cycle,
			Detail: fmt.Sprintf("fell %s", cur.Fall),
		})
	case prev.Fall != model.Upright && cur.Fall == model.Upright:
		events = append(events, Event{
			Kind:   EventRecovered,
			Cycle:  cycle,
			Detail: fmt.Sprintf("upright again (was %s)", prev.Fall),
		})
	}

	if !prev.BallInView && cur.BallInView {
		events = append(events, Event{
			Kind:   EventBallAcquired,
			Cycle:  cycle,
			Detail: fmt.Sprintf("ball seen at bearing %.3f", cur.LastBallBearing),
		})
	} else if prev.BallInView && !cur.BallInView {
		events = append(events, Event{
			Kind:   EventBallLost,
			Cycle:  cycle,
			Detail: fmt.Sprintf("ball lost, last bearing %.3f", cur.LastBallBearing),
		})
	}

	if !prev.Walking && cur.Walking {
		events = append(events, Event{Kind: EventStartedWalking, Cycle: cycle})
	} else if prev.Walking && !cur.Walking {
		events = append(events, Event{Kind: EventStoppedWalking, Cycle: cycle})
	}

	return events
}
