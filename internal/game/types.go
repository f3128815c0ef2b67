package game

// State is the phase a level session is in.
type State int

const (
	// StateAiming: the player sweeps the sight-line around the room.
	StateAiming State = iota
	// StateUnfolding: the bounced ray straightens step by step.
	StateUnfolding
	// StateResult: the photo verdict is on screen, waiting for a retry.
	StateResult
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
