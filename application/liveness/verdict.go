package liveness

type VerdictState string

const (
	StatePending  VerdictState = "pending"
	StateVerified VerdictState = "verified"
	StateFailed   VerdictState = "failed"
)

// Verdict is the full result of processing one frame. Every field is
// statically accounted for so callers never consume an open map.
type Verdict struct {
	State           VerdictState `json:"state"`
	Message         string       `json:"message"`
	OpenCaptured    bool         `json:"open_captured"`
	ClosedCaptured  bool         `json:"closed_captured"`
	BlinkOpenSeen   bool         `json:"blink_open_seen"`
	BlinkClosedSeen bool         `json:"blink_closed_seen"`
	BlinkReopenSeen bool         `json:"blink_reopen_seen"`
	EyeAspectRatio  *float64     `json:"ear,omitempty"`
}

func pendingVerdict(message string, session *LivenessSession) Verdict {
	verdict := Verdict{
		State:   StatePending,
		Message: message,
	}
	applySessionStatus(&verdict, session)
	return verdict
}

func failedVerdict(message string, session *LivenessSession) Verdict {
	verdict := Verdict{
		State:   StateFailed,
		Message: message,
	}
	applySessionStatus(&verdict, session)
	return verdict
}

func applySessionStatus(verdict *Verdict, session *LivenessSession) {
	if session == nil {
		return
	}
	verdict.OpenCaptured = session.OpenEye.Captured
	verdict.ClosedCaptured = session.ClosedEye.Captured
	verdict.BlinkOpenSeen = session.SawOpenBeforeClose
	verdict.BlinkClosedSeen = session.SawClosedAfterOpen
	verdict.BlinkReopenSeen = session.SawReopenAfterClose
}
