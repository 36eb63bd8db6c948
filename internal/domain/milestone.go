package domain

import "time"

type Milestone struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	TargetDate  time.Time `json:"targetDate" db:"target_date"`
	Completed   bool      `json:"completed" db:"completed"`
}
