package model

// Memory is everything the controller carries from one cycle to the next.
// The zero value is the state of a freshly constructed controller.
type Memory struct {
	LastBallBearing float64   // last bearing seen while the ball was visible
	BallInView      bool      // ball visible in the most recent decided cycle
	Walking         bool      // a walk was started and not yet stopped
	HeadLowered     bool      // search phase: head already turned down
	Fall            FallState // classification from the most recent decided cycle
}
