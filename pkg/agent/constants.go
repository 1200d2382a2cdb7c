package agent

// MaxAlertDataSize bounds the alert payload accepted at submission.
// Larger bodies are rejected with HTTP 413 before any parsing.
const MaxAlertDataSize = 1 * 1024 * 1024 // 1 MB
