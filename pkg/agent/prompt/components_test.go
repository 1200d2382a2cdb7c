package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAlertSection(t *testing.T) {
	t.Run("with type and data", func(t *testing.T) {
		out := FormatAlertSection("kubernetes", "namespace superman-dev is stuck terminating")

		assert.Contains(t, out, "## Alert Details")
		assert.Contains(t, out, "**Alert Type:** kubernetes")
		assert.Contains(t, out, "<!-- ALERT_DATA_START -->")
		assert.Contains(t, out, "namespace superman-dev is stuck terminating")
		assert.Contains(t, out, "<!-- ALERT_DATA_END -->")
	})

	t.Run("without type", func(t *testing.T) {
		out := FormatAlertSection("", "some data")
		assert.NotContains(t, out, "Alert Metadata")
		assert.Contains(t, out, "some data")
	})

	t.Run("without data", func(t *testing.T) {
		out := FormatAlertSection("kubernetes", "")
		assert.Contains(t, out, "No additional alert data provided.")
		assert.NotContains(t, out, "ALERT_DATA_START")
	})
}

func TestFormatRunbookSection(t *testing.T) {
	t.Run("with content", func(t *testing.T) {
		out := FormatRunbookSection("# Runbook\nStep 1: check the namespace finalizers")

		assert.Contains(t, out, "## Runbook Content")
		assert.Contains(t, out, "<!-- RUNBOOK START -->")
		assert.Contains(t, out, "Step 1: check the namespace finalizers")
		assert.Contains(t, out, "<!-- RUNBOOK END -->")
	})

	t.Run("empty", func(t *testing.T) {
		out := FormatRunbookSection("")
		assert.Contains(t, out, "No runbook available.")
		assert.NotContains(t, out, "RUNBOOK START")
	})
}

func TestFormatChainContext(t *testing.T) {
	t.Run("first stage", func(t *testing.T) {
		out := FormatChainContext("")
		assert.Contains(t, out, "No previous stage data is available for this alert. This is the first stage of analysis.")
	})

	t.Run("with previous stages", func(t *testing.T) {
		out := FormatChainContext("### Stage: investigation\nFound stuck finalizer on namespace")
		assert.Contains(t, out, "## Previous Stage Data")
		assert.Contains(t, out, "Found stuck finalizer on namespace")
	})
}
