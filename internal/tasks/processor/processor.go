package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/observability"
	"crm-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUnauthorized         = errors.New("unauthorized access to task")
)

type TaskStore interface {
	CreateTask(ctx context.Context, params store.CreateTaskParams) (store.Task, error)
	GetTaskByID(ctx context.Context, taskID uuid.UUID) (store.Task, error)
	UpdateTaskAssignee(ctx context.Context, taskID uuid.UUID, assigneeID *uuid.UUID) (store.Task, error)
	CreateNotification(ctx context.Context, params store.CreateNotificationParams) (store.Notification, error)
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]store.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID uuid.UUID) (store.Notification, error)
}

type EventPublisher interface {
	PublishNotificationCreated(ctx context.Context, organisationID uuid.UUID, n store.Notification) error
}

type TaskProcessor struct {
	store  TaskStore
	events EventPublisher
	logger *observability.Logger
}

func New(store TaskStore, events EventPublisher, logger *observability.Logger) TaskProcessor {
	return TaskProcessor{
		store:  store,
		events: events,
		logger: logger,
	}
}

// EventKind says who a reassignment event is for
type EventKind string

const (
	EventNotifyNew EventKind = "notify_new"
	EventNotifyOld EventKind = "notify_old"
)

// Event is a notification owed to a user because a task changed hands
type Event struct {
	Kind    EventKind
	UserID  uuid.UUID
	TaskID  uuid.UUID
	Title   string
	Message string
	Type    string
}

type CreateTaskParams struct {
	Title       string
	Description *string
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
}

// CreateTask creates a task in the caller's organisation and tells the assignee about it
func (p *TaskProcessor) CreateTask(ctx context.Context, userID, orgID uuid.UUID, params CreateTaskParams) (store.Task, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "organisation_id", Value: orgID})

	task, err := p.store.CreateTask(ctx, store.CreateTaskParams{
		OrganisationID: orgID,
		Title:          params.Title,
		Description:    params.Description,
		DueDate:        params.DueDate,
		AssigneeID:     params.AssigneeID,
		CreatedBy:      userID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create task", err)
		return store.Task{}, err
	}

	p.NotifyCreated(ctx, task)
	return task, nil
}

// NotifyCreated tells the assignee about a new task. Failures are logged, not returned.
func (p *TaskProcessor) NotifyCreated(ctx context.Context, task store.Task) {
	if task.AssigneeID == nil {
		return
	}
	p.DispatchEvents(ctx, task.OrganisationID, []Event{{
		Kind:    EventNotifyNew,
		UserID:  *task.AssigneeID,
		TaskID:  task.ID,
		Title:   "New task assigned",
		Message: fmt.Sprintf("You have been assigned %q", task.Title),
		Type:    store.NotificationTypeInfo,
	}})
}

// Reassign changes the task's assignee and returns the notifications owed to the new and
// previous assignee. Nothing is returned when the assignee is unchanged.
func (p *TaskProcessor) Reassign(ctx context.Context, userID, orgID, taskID uuid.UUID, newAssigneeID *uuid.UUID) ([]Event, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID})

	task, err := p.getOwnedTask(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}
	previous := task.AssigneeID
	if sameAssignee(previous, newAssigneeID) {
		return nil, nil
	}

	task, err = p.store.UpdateTaskAssignee(ctx, taskID, newAssigneeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to update task assignee", err)
		return nil, err
	}

	var events []Event
	if newAssigneeID != nil {
		events = append(events, Event{
			Kind:    EventNotifyNew,
			UserID:  *newAssigneeID,
			TaskID:  task.ID,
			Title:   "Task assigned to you",
			Message: fmt.Sprintf("You have been assigned %q", task.Title),
			Type:    store.NotificationTypeInfo,
		})
	}
	if previous != nil {
		events = append(events, Event{
			Kind:    EventNotifyOld,
			UserID:  *previous,
			TaskID:  task.ID,
			Title:   "Task reassigned",
			Message: fmt.Sprintf("%q is no longer assigned to you", task.Title),
			Type:    store.NotificationTypeWarning,
		})
	}
	p.logger.Info(ctx, fmt.Sprintf("task reassigned by %s", userID))
	return events, nil
}

func sameAssignee(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// DispatchEvents stores each event as a notification and publishes it. It keeps going past failures.
func (p *TaskProcessor) DispatchEvents(ctx context.Context, orgID uuid.UUID, events []Event) []store.Notification {
	created := make([]store.Notification, 0, len(events))
	for _, event := range events {
		taskID := event.TaskID
		n, err := p.store.CreateNotification(ctx, store.CreateNotificationParams{
			UserID:    event.UserID,
			Title:     event.Title,
			Message:   event.Message,
			Type:      event.Type,
			Category:  store.NotificationCategoryTask,
			RelatedID: &taskID,
		})
		if err != nil {
			p.logger.Error(ctx, fmt.Sprintf("failed to create %s notification", event.Kind), err)
			continue
		}
		created = append(created, n)

		if err := p.events.PublishNotificationCreated(ctx, orgID, n); err != nil {
			p.logger.Error(ctx, "failed to publish notification event", err)
		}
	}
	return created
}

// ReassignAndNotify is Reassign followed by DispatchEvents
func (p *TaskProcessor) ReassignAndNotify(ctx context.Context, userID, orgID, taskID uuid.UUID, newAssigneeID *uuid.UUID) ([]store.Notification, error) {
	events, err := p.Reassign(ctx, userID, orgID, taskID, newAssigneeID)
	if err != nil {
		return nil, err
	}
	return p.DispatchEvents(ctx, orgID, events), nil
}

func (p *TaskProcessor) getOwnedTask(ctx context.Context, orgID, taskID uuid.UUID) (store.Task, error) {
	task, err := p.store.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Task{}, ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to get task", err)
		return store.Task{}, err
	}
	if task.OrganisationID != orgID {
		return store.Task{}, ErrUnauthorized
	}
	return task, nil
}

// ListNotifications lists the user's notifications, newest first
func (p *TaskProcessor) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]store.Notification, error) {
	notifications, err := p.store.ListNotifications(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list notifications", err)
		return nil, err
	}
	return notifications, nil
}

func (p *TaskProcessor) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) (store.Notification, error) {
	n, err := p.store.MarkNotificationRead(ctx, notificationID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Notification{}, ErrNotificationNotFound
		}
		p.logger.Error(ctx, "failed to mark notification read", err)
		return store.Notification{}, err
	}
	return n, nil
}
