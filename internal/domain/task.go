package domain

import "time"

type Task struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"userId" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Category    string     `json:"category" db:"category"`
	DueDate     *time.Time `json:"dueDate" db:"due_date"`
	Completed   bool       `json:"completed" db:"completed"`
}
