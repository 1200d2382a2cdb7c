package controller

import (
	"context"
	"strings"

	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/pkg/agent"
)

// FinalAnalysisController makes a single tool-less LLM call that turns the
// accumulated investigation data into the final analysis. There is no loop:
// a failed or empty response is terminal.
type FinalAnalysisController struct{}

var _ Controller = (*FinalAnalysisController)(nil)

// NewFinalAnalysisController creates the single-shot final analysis controller.
func NewFinalAnalysisController() *FinalAnalysisController {
	return &FinalAnalysisController{}
}

// Run performs the single final-analysis call.
func (c *FinalAnalysisController) Run(ctx context.Context, execCtx *agent.ExecutionContext) (string, error) {
	messages := execCtx.PromptBuilder.BuildFinalAnalysisMessages(execCtx)

	resp, err := callLLM(ctx, execCtx, messages, nil, llminteraction.InteractionTypeFinalAnalysis)
	if err != nil {
		return "", &agent.MaxIterationsError{
			MaxIterations:    1,
			Context:          "final_analysis",
			LastErrorMessage: err.Error(),
		}
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", &agent.MaxIterationsError{
			MaxIterations:    1,
			Context:          "final_analysis",
			LastErrorMessage: "empty response from LLM",
		}
	}
	return resp.Text, nil
}
