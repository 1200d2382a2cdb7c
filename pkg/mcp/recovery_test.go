package mcp

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	t.Run("no retry", func(t *testing.T) {
		for _, err := range []error{
			nil,
			context.Canceled,
			context.DeadlineExceeded,
			errors.Join(errors.New("call failed"), context.Canceled),
			errors.New("use of closed network connection"), // not in the connection-error set
			errors.New("JSON-RPC error: method not found"),
			errors.New("invalid params: missing required field"),
			errors.New("something unexpected happened"),
		} {
			assert.Equal(t, NoRetry, ClassifyError(err), "%v", err)
		}
	})

	t.Run("retry with a fresh session", func(t *testing.T) {
		for _, err := range []error{
			io.EOF,
			io.ErrUnexpectedEOF,
			errors.New("dial tcp 127.0.0.1:8080: connection refused"),
			errors.New("read tcp: connection reset by peer"),
			errors.New("write: broken pipe"),
		} {
			assert.Equal(t, RetryNewSession, ClassifyError(err), "%v", err)
		}
	})
}

// mockNetError implements net.Error for testing.
type mockNetError struct {
	msg     string
	timeout bool
}

func (e *mockNetError) Error() string   { return e.msg }
func (e *mockNetError) Timeout() bool   { return e.timeout }
func (e *mockNetError) Temporary() bool { return false }

var _ net.Error = (*mockNetError)(nil)

func TestClassifyError_NetError(t *testing.T) {
	// Timeouts are the caller's budget expiring; retrying cannot help.
	assert.Equal(t, NoRetry, ClassifyError(&mockNetError{msg: "i/o timeout", timeout: true}))
	assert.Equal(t, RetryNewSession, ClassifyError(&mockNetError{msg: "connection refused"}))
}
