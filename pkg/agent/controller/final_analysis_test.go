package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/agent"
)

func TestFinalAnalysis_Success(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "Root cause: a finalizer on the namespace blocks deletion."},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(nil), 1)

	out, err := NewFinalAnalysisController().Run(context.Background(), execCtx)

	require.NoError(t, err)
	assert.Equal(t, "Root cause: a finalizer on the namespace blocks deletion.", out)
	require.Equal(t, 1, llm.calls)

	// Single shot, no tools, two-message conversation.
	assert.Nil(t, llm.inputs[0].Tools)
	require.Len(t, llm.inputs[0].Messages, 2)
	assert.Contains(t, llm.inputs[0].Messages[0].Content, "Final Analysis Instructions")
}

func TestFinalAnalysis_CallFailure(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{err: errors.New("provider unavailable")},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(nil), 1)

	_, err := NewFinalAnalysisController().Run(context.Background(), execCtx)

	var maxErr *agent.MaxIterationsError
	require.ErrorAs(t, err, &maxErr)
	assert.Equal(t, 1, maxErr.MaxIterations)
	assert.Equal(t, "final_analysis", maxErr.Context)
	assert.Contains(t, err.Error(), "provider unavailable")
}

func TestFinalAnalysis_EmptyResponse(t *testing.T) {
	llm := &scriptedLLM{responses: []scriptedResponse{
		{text: "   \n  "},
	}}
	execCtx, _ := newExecContext(llm, agent.NewStubToolExecutor(nil), 1)

	_, err := NewFinalAnalysisController().Run(context.Background(), execCtx)

	var maxErr *agent.MaxIterationsError
	require.ErrorAs(t, err, &maxErr)
	assert.Equal(t, 1, maxErr.MaxIterations)
	assert.Contains(t, err.Error(), "empty response")
}
