package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"skillsync/internal/domain"
	"skillsync/internal/schema"
)

// PGStore persists entities in PostgreSQL. Every operation is a single
// statement; identifier assignment is left to the serial columns. There are
// no multi-statement transactions anywhere in this layer, so concurrent
// updates to the same row are last-write-wins.
type PGStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PGStore)(nil)

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

const uniqueViolation = "23505"

func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrEmailTaken
	}
	return err
}

func (s *PGStore) CreateUser(ctx context.Context, v schema.UserValues) (*domain.User, error) {
	u := domain.User{Email: v.Email, Name: v.Name, PhotoURL: v.PhotoURL}
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (email, name, photo_url) VALUES ($1, $2, $3) RETURNING id`,
		v.Email, v.Name, v.PhotoURL,
	).Scan(&u.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (s *PGStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(ctx,
		`SELECT id, email, name, photo_url FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

func (s *PGStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(ctx,
		`SELECT id, email, name, photo_url FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

const taskColumns = `id, user_id, title, description, category, due_date, completed`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Category, &t.DueDate, &t.Completed); err != nil {
		return nil, mapErr(err)
	}
	return &t, nil
}

func (s *PGStore) CreateTask(ctx context.Context, userID int64, v schema.TaskValues) (*domain.Task, error) {
	return scanTask(s.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, description, category, due_date, completed)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+taskColumns,
		userID, v.Title, v.Description, v.Category, v.DueDate, v.Completed,
	))
}

func (s *PGStore) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return scanTask(s.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id,
	))
}

func (s *PGStore) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Category, &t.DueDate, &t.Completed); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// setBuilder collects SET clauses for a partial update. Only fields the
// caller supplied end up in the statement, so omitted fields stay untouched
// in the row.
type setBuilder struct {
	sets []string
	args []any
}

func (b *setBuilder) add(col string, val any) {
	b.args = append(b.args, val)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *setBuilder) query(table, returning string, id int64) (string, []any) {
	b.args = append(b.args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(b.sets, ", "), len(b.args), returning)
	return q, b.args
}

func (s *PGStore) UpdateTask(ctx context.Context, id int64, ch schema.TaskChanges) (*domain.Task, error) {
	var b setBuilder
	if ch.Title != nil {
		b.add("title", *ch.Title)
	}
	if ch.DescriptionSet {
		b.add("description", ch.Description)
	}
	if ch.Category != nil {
		b.add("category", *ch.Category)
	}
	if ch.DueDateSet {
		b.add("due_date", ch.DueDate)
	}
	if ch.Completed != nil {
		b.add("completed", *ch.Completed)
	}
	if len(b.sets) == 0 {
		return s.GetTask(ctx, id)
	}
	q, args := b.query("tasks", taskColumns, id)
	return scanTask(s.db.QueryRow(ctx, q, args...))
}

// DeleteTask ignores the affected-row count, matching the in-memory variant:
// a no-op delete is not an error.
func (s *PGStore) DeleteTask(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

const timeEntryColumns = `id, user_id, task_id, start_time, end_time, duration`

func scanTimeEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.TaskID, &e.StartTime, &e.EndTime, &e.Duration); err != nil {
		return nil, mapErr(err)
	}
	return &e, nil
}

func (s *PGStore) CreateTimeEntry(ctx context.Context, userID int64, v schema.TimeEntryValues) (*domain.TimeEntry, error) {
	return scanTimeEntry(s.db.QueryRow(ctx,
		`INSERT INTO time_entries (user_id, task_id, start_time, end_time, duration)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+timeEntryColumns,
		userID, v.TaskID, v.StartTime, v.EndTime, v.Duration,
	))
}

func (s *PGStore) GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	return scanTimeEntry(s.db.QueryRow(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries WHERE id = $1`, id,
	))
}

func (s *PGStore) ListTimeEntries(ctx context.Context, userID int64) ([]domain.TimeEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries WHERE user_id = $1 ORDER BY id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]domain.TimeEntry, 0)
	for rows.Next() {
		var e domain.TimeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.TaskID, &e.StartTime, &e.EndTime, &e.Duration); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (s *PGStore) UpdateTimeEntry(ctx context.Context, id int64, ch schema.TimeEntryChanges) (*domain.TimeEntry, error) {
	var b setBuilder
	if ch.TaskID != nil {
		b.add("task_id", *ch.TaskID)
	}
	if ch.StartTime != nil {
		b.add("start_time", *ch.StartTime)
	}
	if ch.EndTimeSet {
		b.add("end_time", ch.EndTime)
	}
	if ch.DurationSet {
		b.add("duration", ch.Duration)
	}
	if len(b.sets) == 0 {
		return s.GetTimeEntry(ctx, id)
	}
	q, args := b.query("time_entries", timeEntryColumns, id)
	return scanTimeEntry(s.db.QueryRow(ctx, q, args...))
}

const milestoneColumns = `id, user_id, title, description, target_date, completed`

func scanMilestone(row pgx.Row) (*domain.Milestone, error) {
	var m domain.Milestone
	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Description, &m.TargetDate, &m.Completed); err != nil {
		return nil, mapErr(err)
	}
	return &m, nil
}

func (s *PGStore) CreateMilestone(ctx context.Context, userID int64, v schema.MilestoneValues) (*domain.Milestone, error) {
	return scanMilestone(s.db.QueryRow(ctx,
		`INSERT INTO milestones (user_id, title, description, target_date, completed)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+milestoneColumns,
		userID, v.Title, v.Description, v.TargetDate, v.Completed,
	))
}

func (s *PGStore) GetMilestone(ctx context.Context, id int64) (*domain.Milestone, error) {
	return scanMilestone(s.db.QueryRow(ctx,
		`SELECT `+milestoneColumns+` FROM milestones WHERE id = $1`, id,
	))
}

func (s *PGStore) ListMilestones(ctx context.Context, userID int64) ([]domain.Milestone, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+milestoneColumns+` FROM milestones WHERE user_id = $1 ORDER BY id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]domain.Milestone, 0)
	for rows.Next() {
		var m domain.Milestone
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Description, &m.TargetDate, &m.Completed); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (s *PGStore) UpdateMilestone(ctx context.Context, id int64, ch schema.MilestoneChanges) (*domain.Milestone, error) {
	var b setBuilder
	if ch.Title != nil {
		b.add("title", *ch.Title)
	}
	if ch.DescriptionSet {
		b.add("description", ch.Description)
	}
	if ch.TargetDate != nil {
		b.add("target_date", *ch.TargetDate)
	}
	if ch.Completed != nil {
		b.add("completed", *ch.Completed)
	}
	if len(b.sets) == 0 {
		return s.GetMilestone(ctx, id)
	}
	q, args := b.query("milestones", milestoneColumns, id)
	return scanMilestone(s.db.QueryRow(ctx, q, args...))
}

func (s *PGStore) DeleteMilestone(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	return err
}
