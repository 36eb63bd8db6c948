package storage

import (
	"context"
	"sort"
	"sync"

	"skillsync/internal/domain"
	"skillsync/internal/schema"
)

// MemStore keeps everything in process memory. It backs tests and standalone
// development (no DATABASE_URL); data is lost on restart. Identifiers are
// per-entity counters starting at 1.
type MemStore struct {
	mu sync.Mutex

	users       map[int64]domain.User
	tasks       map[int64]domain.Task
	timeEntries map[int64]domain.TimeEntry
	milestones  map[int64]domain.Milestone

	nextUserID      int64
	nextTaskID      int64
	nextTimeEntryID int64
	nextMilestoneID int64
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:           make(map[int64]domain.User),
		tasks:           make(map[int64]domain.Task),
		timeEntries:     make(map[int64]domain.TimeEntry),
		milestones:      make(map[int64]domain.Milestone),
		nextUserID:      1,
		nextTaskID:      1,
		nextTimeEntryID: 1,
		nextMilestoneID: 1,
	}
}

func (s *MemStore) CreateUser(_ context.Context, v schema.UserValues) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == v.Email {
			return nil, ErrEmailTaken
		}
	}

	u := domain.User{
		ID:       s.nextUserID,
		Email:    v.Email,
		Name:     v.Name,
		PhotoURL: v.PhotoURL,
	}
	s.nextUserID++
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemStore) GetUser(_ context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateTask(_ context.Context, userID int64, v schema.TaskValues) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Task{
		ID:          s.nextTaskID,
		UserID:      userID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		DueDate:     v.DueDate,
		Completed:   v.Completed,
	}
	s.nextTaskID++
	s.tasks[t.ID] = t
	return &t, nil
}

func (s *MemStore) GetTask(_ context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemStore) ListTasks(_ context.Context, userID int64) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.Task, 0)
	for _, t := range s.tasks {
		if t.UserID == userID {
			res = append(res, t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *MemStore) UpdateTask(_ context.Context, id int64, ch schema.TaskChanges) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	if ch.Title != nil {
		t.Title = *ch.Title
	}
	if ch.DescriptionSet {
		t.Description = ch.Description
	}
	if ch.Category != nil {
		t.Category = *ch.Category
	}
	if ch.DueDateSet {
		t.DueDate = ch.DueDate
	}
	if ch.Completed != nil {
		t.Completed = *ch.Completed
	}
	s.tasks[id] = t
	return &t, nil
}

// DeleteTask is idempotent: deleting an absent row is not an error.
func (s *MemStore) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks, id)
	return nil
}

func (s *MemStore) CreateTimeEntry(_ context.Context, userID int64, v schema.TimeEntryValues) (*domain.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := domain.TimeEntry{
		ID:        s.nextTimeEntryID,
		UserID:    userID,
		TaskID:    v.TaskID,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		Duration:  v.Duration,
	}
	s.nextTimeEntryID++
	s.timeEntries[e.ID] = e
	return &e, nil
}

func (s *MemStore) GetTimeEntry(_ context.Context, id int64) (*domain.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.timeEntries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemStore) ListTimeEntries(_ context.Context, userID int64) ([]domain.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.TimeEntry, 0)
	for _, e := range s.timeEntries {
		if e.UserID == userID {
			res = append(res, e)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *MemStore) UpdateTimeEntry(_ context.Context, id int64, ch schema.TimeEntryChanges) (*domain.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.timeEntries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if ch.TaskID != nil {
		e.TaskID = *ch.TaskID
	}
	if ch.StartTime != nil {
		e.StartTime = *ch.StartTime
	}
	if ch.EndTimeSet {
		e.EndTime = ch.EndTime
	}
	if ch.DurationSet {
		e.Duration = ch.Duration
	}
	s.timeEntries[id] = e
	return &e, nil
}

func (s *MemStore) CreateMilestone(_ context.Context, userID int64, v schema.MilestoneValues) (*domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := domain.Milestone{
		ID:          s.nextMilestoneID,
		UserID:      userID,
		Title:       v.Title,
		Description: v.Description,
		TargetDate:  v.TargetDate,
		Completed:   v.Completed,
	}
	s.nextMilestoneID++
	s.milestones[m.ID] = m
	return &m, nil
}

func (s *MemStore) GetMilestone(_ context.Context, id int64) (*domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.milestones[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemStore) ListMilestones(_ context.Context, userID int64) ([]domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.Milestone, 0)
	for _, m := range s.milestones {
		if m.UserID == userID {
			res = append(res, m)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *MemStore) UpdateMilestone(_ context.Context, id int64, ch schema.MilestoneChanges) (*domain.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.milestones[id]
	if !ok {
		return nil, ErrNotFound
	}
	if ch.Title != nil {
		m.Title = *ch.Title
	}
	if ch.DescriptionSet {
		m.Description = ch.Description
	}
	if ch.TargetDate != nil {
		m.TargetDate = *ch.TargetDate
	}
	if ch.Completed != nil {
		m.Completed = *ch.Completed
	}
	s.milestones[id] = m
	return &m, nil
}

func (s *MemStore) DeleteMilestone(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.milestones, id)
	return nil
}
