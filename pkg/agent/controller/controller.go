// Package controller implements the iteration strategies that drive one
// stage execution: the text-parsed ReAct loop, its stage-summary variant,
// the single-shot final analysis, and the Google-native thinking loop.
package controller

import (
	"context"

	"github.com/tarsy-ai/tarsy/pkg/agent"
)

// Controller runs the analysis loop for one stage execution and returns the
// final text (user-facing analysis or stage result summary).
//
// Terminal errors: *agent.MaxIterationsError when the budget is exhausted
// without a conclusion, *agent.SessionPausedError when the stage pauses,
// *agent.CancelledError on external cancellation, *agent.AgentError for
// everything else.
type Controller interface {
	Run(ctx context.Context, execCtx *agent.ExecutionContext) (string, error)
}
