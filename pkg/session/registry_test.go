package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterUnregister(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register("s1", nil))
	assert.True(t, r.IsRunning("s1"))
	assert.Error(t, r.Register("s1", nil), "duplicate registration must fail")

	r.Unregister("s1")
	assert.False(t, r.IsRunning("s1"))

	// Unregistering twice is harmless.
	r.Unregister("s1")
}

func TestRegistry_PauseAndCancelFlags(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("s1", nil))

	assert.False(t, r.PauseRequested("s1"))
	assert.False(t, r.CancelRequested("s1"))

	assert.True(t, r.RequestPause("s1"))
	assert.True(t, r.PauseRequested("s1"))
	assert.False(t, r.CancelRequested("s1"))

	assert.True(t, r.RequestCancel("s1"))
	assert.True(t, r.CancelRequested("s1"))
}

func TestRegistry_UnknownSession(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.RequestPause("missing"))
	assert.False(t, r.RequestCancel("missing"))
	assert.False(t, r.PauseRequested("missing"))
	assert.False(t, r.CancelRequested("missing"))
	assert.Nil(t, r.Done("missing"))
}

func TestRegistry_CancelAll(t *testing.T) {
	r := NewRegistry()
	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	require.NoError(t, r.Register("s1", cancel1))
	require.NoError(t, r.Register("s2", cancel2))

	r.CancelAll()

	assert.Error(t, ctx1.Err())
	assert.Error(t, ctx2.Err())
}

func TestRegistry_WaitAll(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("s1", nil))

	go func() {
		time.Sleep(20 * time.Millisecond)
		r.Unregister("s1")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, r.WaitAll(ctx))
}

func TestRegistry_WaitAll_Timeout(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("stuck", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.WaitAll(ctx), context.DeadlineExceeded)
}

func TestRegistry_ActiveSessions(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("a", nil))
	require.NoError(t, r.Register("b", nil))

	assert.ElementsMatch(t, []string{"a", "b"}, r.ActiveSessions())
}
