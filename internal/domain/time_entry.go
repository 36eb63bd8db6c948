package domain

import "time"

// TimeEntry records time spent against a task. Duration is in minutes and is
// not reconciled against endTime-startTime; the client reports both.
type TimeEntry struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	TaskID    int64      `json:"taskId" db:"task_id"`
	StartTime time.Time  `json:"startTime" db:"start_time"`
	EndTime   *time.Time `json:"endTime" db:"end_time"`
	Duration  *int       `json:"duration" db:"duration"`
}
