package models

import "time"

// Trainer is a member of the trainer roster.
type Trainer struct {
	ID          string    `db:"id" json:"id"`
	TrainerID   int       `db:"trainer_id" json:"TrainerId"`
	TrainerName string    `db:"trainer_name" json:"TrainerName"`
	Mobile      string    `db:"mobile" json:"Mobile"`
	Subject     string    `db:"subject" json:"Subject"`
	Salary      string    `db:"salary" json:"Salary"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
