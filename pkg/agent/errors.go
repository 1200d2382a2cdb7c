package agent

import "fmt"

// AgentError is the general execution error for agent runs. Recoverable
// errors may be retried by the surrounding iteration loop; unrecoverable
// ones fail the stage.
type AgentError struct {
	Message     string
	Recoverable bool
	Err         error
}

func (e *AgentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AgentError) Unwrap() error { return e.Err }

// NewAgentError creates an unrecoverable AgentError wrapping err.
func NewAgentError(message string, err error) *AgentError {
	return &AgentError{Message: message, Err: err}
}

// MaxIterationsError is raised when a controller exhausts its iteration
// budget without reaching a conclusion. Terminal for the stage.
type MaxIterationsError struct {
	MaxIterations    int
	Context          string // e.g. "investigation", "final_analysis"
	LastErrorMessage string // Error from the last failed LLM/tool call, if any
}

func (e *MaxIterationsError) Error() string {
	msg := fmt.Sprintf("agent reached maximum iterations (%d) without producing a conclusion", e.MaxIterations)
	if e.Context != "" {
		msg = fmt.Sprintf("%s during %s", msg, e.Context)
	}
	if e.LastErrorMessage != "" {
		msg = fmt.Sprintf("%s. Last error: %s", msg, e.LastErrorMessage)
	}
	return msg
}

// SessionPausedError signals that the controller hit its iteration budget
// with forced conclusion disabled. Not a failure: the stage and session
// transition to paused and can be resumed later.
type SessionPausedError struct {
	Iteration int
}

func (e *SessionPausedError) Error() string {
	return fmt.Sprintf("session paused at iteration %d awaiting resume", e.Iteration)
}

// CancelledError signals external cancellation of the session.
type CancelledError struct {
	Reason string
}

func (e *CancelledError) Error() string {
	if e.Reason == "" {
		return "session cancelled"
	}
	return fmt.Sprintf("session cancelled: %s", e.Reason)
}
