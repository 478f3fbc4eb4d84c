package dto

import "github.com/noah-isme/training-enrollment-api/internal/models"

// SubmitTraineeRequest is the enrollment request payload. Any status or room
// the client sends is ignored.
type SubmitTraineeRequest struct {
	TraineeID   FlexInt    `json:"TraineeId" validate:"gte=0"`
	TraineeName string     `json:"TraineeName" validate:"required,max=200"`
	Class       FlexString `json:"Class" validate:"max=50"`
	Number      FlexString `json:"Number" validate:"max=50"`
	Age         FlexInt    `json:"Age" validate:"gte=0,lte=150"`
	Dob         string     `json:"Dob" validate:"max=30"`
	Gender      string     `json:"Gender" validate:"max=30"`
}

// Profile maps the payload onto the stored descriptive attributes.
func (r SubmitTraineeRequest) Profile() models.TraineeProfile {
	return models.TraineeProfile{
		TraineeID:   int(r.TraineeID),
		TraineeName: r.TraineeName,
		Class:       string(r.Class),
		Number:      string(r.Number),
		Age:         int(r.Age),
		Dob:         r.Dob,
		Gender:      r.Gender,
	}
}

// SubmitResponse confirms a stored request.
type SubmitResponse struct {
	Message string                 `json:"message"`
	Request *models.TraineeRequest `json:"request"`
}

// DecisionRequest carries the operator's decision.
type DecisionRequest struct {
	Status string `json:"status"`
}

// DecisionResponse confirms a decision.
type DecisionResponse struct {
	Message string `json:"message"`
	models.DecisionResult
}

// UpdateTraineeRequest edits a roster entry.
type UpdateTraineeRequest struct {
	TraineeName string     `json:"TraineeName" validate:"required,max=200"`
	Class       FlexString `json:"Class" validate:"max=50"`
	Number      FlexString `json:"Number" validate:"max=50"`
	Age         FlexInt    `json:"Age" validate:"gte=0,lte=150"`
	Dob         string     `json:"Dob" validate:"max=30"`
	Gender      string     `json:"Gender" validate:"max=30"`
}

// Patch maps the payload onto the editable roster fields.
func (r UpdateTraineeRequest) Patch() models.TraineePatch {
	return models.TraineePatch{
		TraineeName: r.TraineeName,
		Class:       string(r.Class),
		Number:      string(r.Number),
		Age:         int(r.Age),
		Dob:         r.Dob,
		Gender:      r.Gender,
	}
}

// MessageResponse is the plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
