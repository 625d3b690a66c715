package domain

import "time"

const (
	SubmissionActionCreate = "create"
	SubmissionActionUpdate = "update"

	SubmissionOutcomeSuccess = "success"
	SubmissionOutcomeFailure = "failure"
)

// Submission is one journaled pass through the spot editor pipeline,
// kept as an audit trail of who pushed what to the listings API.
type Submission struct {
	ID           uint      `json:"id"`
	EditorEmail  string    `json:"editor_email"`
	Action       string    `json:"action"`
	SpotID       uint      `json:"spot_id,omitempty"`
	SpotName     string    `json:"spot_name"`
	SectionID    uint      `json:"seccion_id"`
	Outcome      string    `json:"outcome"`
	RemoteStatus int       `json:"remote_status,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
