package models

import "time"

// Trainee is an entry of the active roster, created when a request is accepted.
// At most one exists per TraineeID.
type Trainee struct {
	ID string `db:"id" json:"id"`
	TraineeProfile
	TrainingRoom string    `db:"training_room" json:"TrainingRoom"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// TraineePatch lists the roster fields an operator may edit.
type TraineePatch struct {
	TraineeName string `db:"trainee_name"`
	Class       string `db:"class"`
	Number      string `db:"number"`
	Age         int    `db:"age"`
	Dob         string `db:"dob"`
	Gender      string `db:"gender"`
}

// Attendance summarises the active roster.
type Attendance struct {
	Attendance int       `json:"attendance"`
	Trainees   []Trainee `json:"trainees"`
}
