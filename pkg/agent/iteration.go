package agent

// MaxConsecutiveToolTimeouts aborts the native-thinking loop. Two tool
// calls timing out back to back means the MCP server is effectively gone;
// burning the remaining iteration budget on it helps nobody.
const MaxConsecutiveToolTimeouts = 2

// IterationState tracks loop state across controller iterations.
type IterationState struct {
	CurrentIteration           int
	MaxIterations              int
	LastInteractionFailed      bool
	LastErrorMessage           string
	ConsecutiveTimeoutFailures int
}

// ShouldAbortOnTimeouts reports whether consecutive tool timeouts have
// reached the abort threshold.
func (s *IterationState) ShouldAbortOnTimeouts() bool {
	return s.ConsecutiveTimeoutFailures >= MaxConsecutiveToolTimeouts
}

// RecordSuccess resets failure tracking after a successful interaction.
func (s *IterationState) RecordSuccess() {
	s.LastInteractionFailed = false
	s.LastErrorMessage = ""
	s.ConsecutiveTimeoutFailures = 0
}

// RecordFailure records a failed interaction. Only timeouts accumulate
// toward the consecutive-timeout abort; any other outcome resets the streak.
func (s *IterationState) RecordFailure(errMsg string, isTimeout bool) {
	s.LastInteractionFailed = true
	s.LastErrorMessage = errMsg
	if isTimeout {
		s.ConsecutiveTimeoutFailures++
	} else {
		s.ConsecutiveTimeoutFailures = 0
	}
}
