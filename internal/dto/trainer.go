package dto

// CreateTrainerRequest registers a trainer.
type CreateTrainerRequest struct {
	TrainerID   FlexInt    `json:"TrainerId" validate:"required"`
	TrainerName string     `json:"TrainerName" validate:"required,max=200"`
	Mobile      FlexString `json:"Mobile" validate:"max=50"`
	Subject     string     `json:"Subject" validate:"max=200"`
	Salary      FlexString `json:"Salary" validate:"max=50"`
}

// UpdateTrainerRequest edits a trainer. Older clients send the phone number
// as Number instead of Mobile.
type UpdateTrainerRequest struct {
	TrainerName string     `json:"TrainerName" validate:"required,max=200"`
	Mobile      FlexString `json:"Mobile" validate:"max=50"`
	Number      FlexString `json:"Number" validate:"max=50"`
	Subject     string     `json:"Subject" validate:"max=200"`
	Salary      FlexString `json:"Salary" validate:"max=50"`
}

// Phone returns the phone number from whichever field was sent.
func (r UpdateTrainerRequest) Phone() string {
	if r.Mobile != "" {
		return string(r.Mobile)
	}
	return string(r.Number)
}
