package models

import "time"

// RequestStatus represents the lifecycle of an enrollment request.
type RequestStatus string

// Possible request statuses. Accepted and Rejected are the only valid decisions.
const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusAccepted RequestStatus = "Accepted"
	RequestStatusRejected RequestStatus = "Rejected"
)

// IsDecision reports whether s is a terminal state an operator may choose.
func (s RequestStatus) IsDecision() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// TraineeProfile holds the descriptive attributes copied from a request into
// the roster. The workflow never interprets them.
type TraineeProfile struct {
	TraineeID   int    `db:"trainee_id" json:"TraineeId"`
	TraineeName string `db:"trainee_name" json:"TraineeName"`
	Class       string `db:"class" json:"Class"`
	Number      string `db:"number" json:"Number"`
	Age         int    `db:"age" json:"Age"`
	Dob         string `db:"dob" json:"Dob"`
	Gender      string `db:"gender" json:"Gender"`
}

// TraineeRequest is a submitted enrollment request awaiting or carrying a decision.
type TraineeRequest struct {
	ID string `db:"id" json:"id"`
	TraineeProfile
	Status       RequestStatus `db:"status" json:"Status"`
	TrainingRoom string        `db:"training_room" json:"TrainingRoom"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// DecisionResult is returned once a request has been accepted or rejected.
type DecisionResult struct {
	TraineeID    int           `json:"TraineeId"`
	Status       RequestStatus `json:"Status"`
	AssignedRoom string        `json:"TrainingRoom,omitempty"`
	Promoted     bool          `json:"promoted"`
}
