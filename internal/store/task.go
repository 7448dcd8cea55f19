package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const taskColumns = `id, organisation_id, title, description, due_date, status, assignee_id, created_by, created_at, updated_at`

// CreateTaskParams represents parameters for creating a task
type CreateTaskParams struct {
	OrganisationID uuid.UUID
	Title          string
	Description    *string
	DueDate        *time.Time
	AssigneeID     *uuid.UUID
	CreatedBy      uuid.UUID
}

const sqlCreateTask = `
INSERT INTO tasks (organisation_id, title, description, due_date, assignee_id, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + taskColumns

// CreateTask creates a new task
func (s *Store) CreateTask(ctx context.Context, params CreateTaskParams) (Task, error) {
	var task Task
	err := s.db.GetContext(ctx, &task, sqlCreateTask,
		params.OrganisationID,
		params.Title,
		params.Description,
		params.DueDate,
		params.AssigneeID,
		params.CreatedBy)
	if err != nil {
		return Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

const sqlGetTaskByID = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = $1
`

// GetTaskByID retrieves a task by ID
func (s *Store) GetTaskByID(ctx context.Context, taskID uuid.UUID) (Task, error) {
	var task Task
	err := s.db.GetContext(ctx, &task, sqlGetTaskByID, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

const sqlUpdateTaskAssignee = `
UPDATE tasks
SET assignee_id = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + taskColumns

// UpdateTaskAssignee sets or clears the task assignee
func (s *Store) UpdateTaskAssignee(ctx context.Context, taskID uuid.UUID, assigneeID *uuid.UUID) (Task, error) {
	var task Task
	err := s.db.GetContext(ctx, &task, sqlUpdateTaskAssignee, taskID, assigneeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("failed to update task assignee: %w", err)
	}
	return task, nil
}

const sqlGetTasksDueSoon = `
SELECT ` + taskColumns + `
FROM tasks t
WHERE t.status <> 'completed'
  AND t.assignee_id IS NOT NULL
  AND t.due_date >= $1 AND t.due_date < $2
  AND NOT EXISTS (
    SELECT 1 FROM task_reminders r WHERE r.task_id = t.id AND r.type = $3
  )
ORDER BY t.due_date ASC
`

// GetTasksDueSoon lists assigned open tasks due in [from, to) that have not had the given reminder
func (s *Store) GetTasksDueSoon(ctx context.Context, from, to time.Time, reminderType string) ([]Task, error) {
	tasks := []Task{}
	if err := s.db.SelectContext(ctx, &tasks, sqlGetTasksDueSoon, from, to, reminderType); err != nil {
		return nil, fmt.Errorf("failed to get tasks due soon: %w", err)
	}
	return tasks, nil
}
