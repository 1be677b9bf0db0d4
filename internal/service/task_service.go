package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tempo/internal/domain"
)

// TaskService coordinates the load, mutate, save cycle for every task
// operation.
// Write methods take primitive values, never a task reference; read methods
// return snapshots only. A single mutex serializes writes, which is enough
// for the one-user, one-process model this tool assumes.
type TaskService struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
	mu     sync.Mutex
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *TaskService {
	return &TaskService{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// CreateInput contains the parameters for creating a task.
type CreateInput struct {
	Due         *time.Time      // Due date (optional)
	Name        string          // Display name (required)
	Project     string          // Project tag (optional)
	Description string          // Free-form notes (optional)
	Estimate    string          // Effort estimate, e.g. "2h" (optional)
	Priority    domain.Priority // Empty = default
}

// Create adds a new pending task and returns its snapshot.
func (s *TaskService) Create(in CreateInput) (TaskDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	task, err := domain.NewTask(uuid.New(), in.Name, now)
	if err != nil {
		return TaskDto{}, err
	}
	task.Project = in.Project
	task.Description = in.Description
	task.Estimate = in.Estimate
	task.Due = in.Due
	if in.Priority != "" {
		if err := task.SetPriority(in.Priority); err != nil {
			return TaskDto{}, err
		}
	}

	if err := s.tasks.Save(task); err != nil {
		return TaskDto{}, fmt.Errorf("save task: %w", err)
	}

	s.info("task", fmt.Sprintf("created %s: %q", shortID(task.ID), task.Name))
	return newTaskDto(task, now, 0)
}

// Rename changes a task's display name.
func (s *TaskService) Rename(id uuid.UUID, name string) error {
	return s.update(id, func(t *domain.Task) error {
		return t.Rename(name)
	})
}

// ReassignProject changes a task's project tag.
func (s *TaskService) ReassignProject(id uuid.UUID, project string) error {
	return s.update(id, func(t *domain.Task) error {
		return t.ReassignProject(project)
	})
}

// EditInput contains optional field updates; nil means no change.
type EditInput struct {
	Name        *string
	Project     *string
	Description *string
	Estimate    *string
	Priority    *domain.Priority
	Due         *time.Time
	ClearDue    bool
}

// Edit applies the non-nil field updates to a task.
func (s *TaskService) Edit(id uuid.UUID, in EditInput) error {
	if in.Name == nil && in.Project == nil && in.Description == nil &&
		in.Estimate == nil && in.Priority == nil && in.Due == nil && !in.ClearDue {
		return domain.ErrNoFieldsToUpdate
	}

	return s.update(id, func(t *domain.Task) error {
		if in.Name != nil {
			if err := t.Rename(*in.Name); err != nil {
				return err
			}
		}
		if in.Project != nil {
			if err := t.ReassignProject(*in.Project); err != nil {
				return err
			}
		}
		if in.Description != nil {
			if err := t.SetDescription(*in.Description); err != nil {
				return err
			}
		}
		if in.Estimate != nil {
			if err := t.SetEstimate(*in.Estimate); err != nil {
				return err
			}
		}
		if in.Priority != nil {
			if err := t.SetPriority(*in.Priority); err != nil {
				return err
			}
		}
		if in.ClearDue {
			return t.SetDue(nil)
		}
		if in.Due != nil {
			return t.SetDue(in.Due)
		}
		return nil
	})
}

// StartTracking opens a work interval on a task.
func (s *TaskService) StartTracking(id uuid.UUID) error {
	err := s.update(id, func(t *domain.Task) error {
		return t.StartTracking(s.clock.Now())
	})
	if err == nil {
		s.info("track", fmt.Sprintf("started %s", shortID(id)))
	}
	return err
}

// StopTracking closes the open work interval on a task.
func (s *TaskService) StopTracking(id uuid.UUID) error {
	err := s.update(id, func(t *domain.Task) error {
		return t.StopTracking(s.clock.Now())
	})
	if err == nil {
		s.info("track", fmt.Sprintf("stopped %s", shortID(id)))
	}
	return err
}

// Complete marks a task as done, folding in any open interval first.
func (s *TaskService) Complete(id uuid.UUID) error {
	err := s.update(id, func(t *domain.Task) error {
		return t.Complete(s.clock.Now())
	})
	if err == nil {
		s.info("task", fmt.Sprintf("completed %s", shortID(id)))
	}
	return err
}

// Delete removes a task permanently.
func (s *TaskService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.load(id); err != nil {
		return err
	}
	if err := s.tasks.Delete(id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	s.info("task", fmt.Sprintf("deleted %s", shortID(id)))
	return nil
}

// Get returns a task snapshot, with the open interval valued as of now.
func (s *TaskService) Get(id uuid.UUID) (TaskDto, error) {
	task, err := s.load(id)
	if err != nil {
		return TaskDto{}, err
	}
	now := s.clock.Now()
	return newTaskDto(task, now, task.Score(domain.DefaultSortStrategy, now))
}

// ListInput contains the parameters for listing tasks.
type ListInput struct {
	Project          string              // Filter by project ("" = all)
	Strategy         domain.SortStrategy // Empty = default
	IncludeCompleted bool                // Include completed tasks
}

// List returns task snapshots ordered by descending score.
func (s *TaskService) List(in ListInput) ([]TaskDto, error) {
	filter := domain.TaskFilter{Project: in.Project}
	if !in.IncludeCompleted {
		filter.Statuses = []domain.Status{domain.StatusPending, domain.StatusTracking}
	}

	tasks, err := s.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	strategy := in.Strategy
	if strategy == "" {
		strategy = domain.DefaultSortStrategy
	}

	now := s.clock.Now()
	domain.SortTasks(tasks, strategy, now)

	dtos := make([]TaskDto, 0, len(tasks))
	for _, t := range tasks {
		dto, err := newTaskDto(t, now, t.Score(strategy, now))
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

// ResolveID resolves a full or prefixed task ID string to a task identity.
func (s *TaskService) ResolveID(prefix string) (uuid.UUID, error) {
	if id, err := uuid.Parse(prefix); err == nil {
		return id, nil
	}

	tasks, err := s.tasks.List(domain.TaskFilter{})
	if err != nil {
		return uuid.Nil, fmt.Errorf("list tasks: %w", err)
	}

	var matches []uuid.UUID
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), strings.ToLower(prefix)) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, prefix)
	default:
		return uuid.Nil, fmt.Errorf("%w: %q matches %d tasks", domain.ErrAmbiguousID, prefix, len(matches))
	}
}

// update runs fn against a freshly loaded task and persists the result.
// If fn fails the repository is left untouched.
func (s *TaskService) update(id uuid.UUID, fn func(*domain.Task) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.load(id)
	if err != nil {
		return err
	}
	if err := fn(task); err != nil {
		return err
	}
	if err := s.tasks.Save(task); err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// load fetches a task, mapping absence to ErrTaskNotFound.
func (s *TaskService) load(id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return task, nil
}

func (s *TaskService) info(category, msg string) {
	if s.logger != nil {
		s.logger.Info(category, msg)
	}
}

// shortID renders the first UUID group for log lines.
func shortID(id uuid.UUID) string {
	str := id.String()
	if len(str) > 8 {
		return str[:8]
	}
	return str
}
