package models

type SubmissionState int

const (
	IdleState SubmissionState = iota
	PendingState
	SucceededState
	FailedState
)

func (s SubmissionState) String() string {
	switch s {
	case IdleState:
		return "idle"
	case PendingState:
		return "pending"
	case SucceededState:
		return "succeeded"
	case FailedState:
		return "failed"
	}
	return "unknown"
}
