package api

// SubmitAlertRequest is the request body for POST /api/v1/alerts.
type SubmitAlertRequest struct {
	AlertType string                 `json:"alert_type"`
	Runbook   string                 `json:"runbook,omitempty"`
	Data      map[string]interface{} `json:"data"`

	// SlackMessageFingerprint ties a Slack-originated alert back to its
	// source message so notifications can thread onto it.
	SlackMessageFingerprint string `json:"slack_message_fingerprint,omitempty"`
}

// listSessionsQuery binds the GET /api/v1/sessions filter parameters.
type listSessionsQuery struct {
	Status    []string `form:"status"`
	AlertType string   `form:"alert_type"`
	ChainID   string   `form:"chain_id"`
	Page      int      `form:"page"`
	PageSize  int      `form:"page_size"`
}
