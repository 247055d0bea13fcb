package model

// FallState is the torso orientation derived from the accelerometer.
type FallState int

const (
	Upright FallState = iota
	OnBack
	OnFront
)

func (f FallState) String() string {
	switch f {
	case Upright:
		return "upright"
	case OnBack:
		return "on_back"
	case OnFront:
		return "on_front"
	}
	return "unknown"
}

// DefaultUprightAccelZ is the vertical acceleration below which the robot
// is no longer standing under roughly gravity-aligned acceleration.
const DefaultUprightAccelZ = 7.0

// ClassifyFall maps an acceleration reading to a FallState. Only the
// vertical (Z) and lateral (Y) components matter.
func ClassifyFall(acc Vector3, uprightZ float64) FallState {
	if acc.Z >= uprightZ {
		return Upright
	}
	if acc.Y > 0 {
		return OnBack
	}
	return OnFront
}
