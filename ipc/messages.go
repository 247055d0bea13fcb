package ipc

// These constants must stay in sync with the simulator bridge.
const (
	TypeHello   = "hello"
	TypeAck     = "ack"
	TypePercept = "percept"
)

type HelloMessage struct {
	Player string `json:"player"`
	Team   string `json:"team"`
}

type AckMessage struct {
	Status string `json:"status"`
	Cycle  int    `json:"cycle,omitempty"`
}
