// Package storage defines the persistence contract shared by the in-memory
// and PostgreSQL backends. The HTTP layer only sees Store, so the two
// implementations must stay behaviorally identical: same JSON shapes, same
// sentinel errors, same merge semantics on partial updates.
package storage

import (
	"context"
	"errors"

	"skillsync/internal/domain"
	"skillsync/internal/schema"
)

var (
	// ErrNotFound is returned for any row that does not exist. Handlers
	// translate it to 404; it is never a panic or a pgx error leaking out.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when creating a user with an email that is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")
)

type Store interface {
	// Users are created on first login and never updated or deleted.
	CreateUser(ctx context.Context, v schema.UserValues) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	CreateTask(ctx context.Context, userID int64, v schema.TaskValues) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context, userID int64) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id int64, ch schema.TaskChanges) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	CreateTimeEntry(ctx context.Context, userID int64, v schema.TimeEntryValues) (*domain.TimeEntry, error)
	GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error)
	ListTimeEntries(ctx context.Context, userID int64) ([]domain.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, id int64, ch schema.TimeEntryChanges) (*domain.TimeEntry, error)

	CreateMilestone(ctx context.Context, userID int64, v schema.MilestoneValues) (*domain.Milestone, error)
	GetMilestone(ctx context.Context, id int64) (*domain.Milestone, error)
	ListMilestones(ctx context.Context, userID int64) ([]domain.Milestone, error)
	UpdateMilestone(ctx context.Context, id int64, ch schema.MilestoneChanges) (*domain.Milestone, error)
	DeleteMilestone(ctx context.Context, id int64) error
}
