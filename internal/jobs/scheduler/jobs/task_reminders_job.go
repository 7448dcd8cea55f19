package jobs

//go:generate go run go.uber.org/mock/mockgen@latest -source=task_reminders_job.go -destination=mocks_test.go -package=jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/observability"
	"crm-server/internal/store"

	"github.com/google/uuid"
)

// ReminderStore is the persistence the reminders job needs
type ReminderStore interface {
	GetTasksDueSoon(ctx context.Context, from, to time.Time, reminderType string) ([]store.Task, error)
	CreateReminderNotification(ctx context.Context, taskID uuid.UUID, reminderType string, params store.CreateNotificationParams) (store.Notification, error)
}

// TaskRemindersJob notifies assignees about open tasks that are due soon. Each task gets
// at most one reminder per window.
type TaskRemindersJob struct {
	store    ReminderStore
	logger   *observability.Logger
	schedule string
	dueDays  int
	now      func() time.Time
}

// NewTaskRemindersJob creates the due-soon reminder job
func NewTaskRemindersJob(store ReminderStore, logger *observability.Logger, schedule string, dueDays int) *TaskRemindersJob {
	if dueDays <= 0 {
		dueDays = 1
	}
	return &TaskRemindersJob{
		store:    store,
		logger:   logger,
		schedule: schedule,
		dueDays:  dueDays,
		now:      time.Now,
	}
}

func (j *TaskRemindersJob) Name() string { return "task_reminders" }

func (j *TaskRemindersJob) Schedule() string { return j.schedule }

// ReminderType is the dedupe key recorded per task
func (j *TaskRemindersJob) ReminderType() string {
	return fmt.Sprintf("due_soon_%dd", j.dueDays)
}

// Run reminds every assignee whose task is due between the start of today and the end of
// today plus the configured number of days
func (j *TaskRemindersJob) Run(ctx context.Context) error {
	now := j.now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, j.dueDays+1)
	reminderType := j.ReminderType()

	tasks, err := j.store.GetTasksDueSoon(ctx, from, to, reminderType)
	if err != nil {
		j.logger.Error(ctx, "failed to get tasks due soon", err)
		return err
	}

	sent := 0
	for _, task := range tasks {
		if task.AssigneeID == nil {
			continue
		}
		taskCtx := observability.WithFields(ctx, observability.Field{Key: "task_id", Value: task.ID})
		taskID := task.ID
		_, err := j.store.CreateReminderNotification(taskCtx, task.ID, reminderType, store.CreateNotificationParams{
			UserID:    *task.AssigneeID,
			Title:     "Task due soon",
			Message:   dueMessage(task, from),
			Type:      store.NotificationTypeReminder,
			Category:  store.NotificationCategoryReminder,
			RelatedID: &taskID,
		})
		if err != nil {
			if errors.Is(err, store.ErrReminderAlreadySent) {
				continue
			}
			j.logger.Error(taskCtx, "failed to create task reminder", err)
			continue
		}
		sent++
	}

	j.logger.Info(ctx, fmt.Sprintf("sent %d of %d task reminders", sent, len(tasks)))
	return nil
}

func dueMessage(task store.Task, today time.Time) string {
	if task.DueDate == nil {
		return fmt.Sprintf("%q is due soon", task.Title)
	}
	if task.DueDate.Before(today.AddDate(0, 0, 1)) {
		return fmt.Sprintf("%q is due today", task.Title)
	}
	return fmt.Sprintf("%q is due on %s", task.Title, task.DueDate.Format("Jan 2"))
}
