package hooks

import (
	"context"

	"github.com/google/uuid"

	"github.com/tarsy-ai/tarsy/pkg/history"
)

// LLMInteractionContext records one LLM call from start to finish. Open it
// before issuing the call, fill the record with the outcome, then finish with
// Complete or Fail exactly once. Finishing stamps end time, duration, and
// timestamp and fires the LLM hooks.
type LLMInteractionContext struct {
	mgr  *Manager
	rec  *history.LLMInteractionRecord
	done bool
}

// StartLLMInteraction opens a context around an LLM call. The record carries
// the identity and request fields; an interaction id is assigned if missing,
// and start_time_us is stamped now.
func (m *Manager) StartLLMInteraction(rec *history.LLMInteractionRecord) *LLMInteractionContext {
	if rec.InteractionID == "" {
		rec.InteractionID = uuid.NewString()
	}
	rec.StartTimeUs = history.NowMicros()
	return &LLMInteractionContext{mgr: m, rec: rec}
}

// Record exposes the underlying record so the caller can merge response
// fields (conversation, tokens) before finishing.
func (c *LLMInteractionContext) Record() *history.LLMInteractionRecord {
	return c.rec
}

// Complete finishes the interaction as successful and fires the hooks.
func (c *LLMInteractionContext) Complete(ctx context.Context) {
	c.finish(ctx, nil)
}

// Fail finishes the interaction as failed with the error message and fires
// the hooks.
func (c *LLMInteractionContext) Fail(ctx context.Context, err error) {
	c.finish(ctx, err)
}

func (c *LLMInteractionContext) finish(ctx context.Context, err error) {
	if c.done {
		return
	}
	c.done = true

	finalizeTimes(&c.rec.EndTimeUs, &c.rec.DurationMs, &c.rec.TimestampUs, c.rec.StartTimeUs)
	if err != nil {
		c.rec.Success = false
		c.rec.ErrorMessage = err.Error()
	} else {
		c.rec.Success = true
	}

	c.mgr.fireLLMHooks(ctx, c.rec)
}

// MCPInteractionContext records one MCP call (tool invocation or tool
// listing) from start to finish. Same lifecycle as LLMInteractionContext.
type MCPInteractionContext struct {
	mgr  *Manager
	rec  *history.MCPInteractionRecord
	done bool
}

// StartMCPInteraction opens a context around an MCP call.
func (m *Manager) StartMCPInteraction(rec *history.MCPInteractionRecord) *MCPInteractionContext {
	if rec.RequestID == "" {
		rec.RequestID = uuid.NewString()
	}
	rec.StartTimeUs = history.NowMicros()
	return &MCPInteractionContext{mgr: m, rec: rec}
}

// Record exposes the underlying record so the caller can merge result fields
// before finishing.
func (c *MCPInteractionContext) Record() *history.MCPInteractionRecord {
	return c.rec
}

// Complete finishes the interaction as successful and fires the hooks.
func (c *MCPInteractionContext) Complete(ctx context.Context) {
	c.finish(ctx, nil)
}

// Fail finishes the interaction as failed with the error message and fires
// the hooks.
func (c *MCPInteractionContext) Fail(ctx context.Context, err error) {
	c.finish(ctx, err)
}

func (c *MCPInteractionContext) finish(ctx context.Context, err error) {
	if c.done {
		return
	}
	c.done = true

	finalizeTimes(&c.rec.EndTimeUs, &c.rec.DurationMs, &c.rec.TimestampUs, c.rec.StartTimeUs)
	if err != nil {
		c.rec.Success = false
		c.rec.ErrorMessage = err.Error()
	} else {
		c.rec.Success = true
	}

	c.mgr.fireMCPHooks(ctx, c.rec)
}

// finalizeTimes stamps end_time_us, duration_ms, and timestamp_us. The
// timestamp equals the start time so interaction listings order by call
// initiation, not completion.
func finalizeTimes(endUs *int64, durationMs *int, timestampUs *int64, startUs int64) {
	*endUs = history.NowMicros()
	if *endUs < startUs {
		*endUs = startUs
	}
	*durationMs = int((*endUs - startUs) / 1000)
	*timestampUs = startUs
}
