package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarsy-ai/tarsy/pkg/config"
)

func TestListRunbooks(t *testing.T) {
	t.Run("returns discovered runbooks", func(t *testing.T) {
		h := newTestHarness()
		h.runbooks.urls = []string{
			"https://github.com/org/repo/blob/main/runbooks/k8s.md",
			"https://github.com/org/repo/blob/main/runbooks/net.md",
		}

		rec := h.do(t, http.MethodGet, "/api/v1/runbooks", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		require.Len(t, body["runbooks"], 2)
	})

	t.Run("service error fails open with empty list", func(t *testing.T) {
		h := newTestHarness()
		h.runbooks.err = errors.New("github unreachable")

		rec := h.do(t, http.MethodGet, "/api/v1/runbooks", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, decodeBody(t, rec)["runbooks"])
	})

	t.Run("nil service fails open with empty list", func(t *testing.T) {
		h := newTestHarness()
		h.server = NewServer(&config.Config{}, h.alerts, h.repo, h.registry, h.pool, h.sink, nil, nil)

		rec := h.do(t, http.MethodGet, "/api/v1/runbooks", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, decodeBody(t, rec)["runbooks"])
	})
}
