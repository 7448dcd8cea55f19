package handler

import (
	"net/http"
	"strconv"
	"time"

	"crm-server/internal/apierrors"
	authHandler "crm-server/internal/auth/handler"
	"crm-server/internal/observability"
	"crm-server/internal/tasks/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.TaskProcessor
	logger    *observability.Logger
}

func New(processor processor.TaskProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
}

// ReassignTaskRequest sets or clears (null) the assignee
type ReassignTaskRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"`
}

// HandleCreateTask creates a task and notifies its assignee
func (h *Handler) HandleCreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	task, err := h.processor.CreateTask(ctx, userID, orgID, processor.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// HandleReassignTask changes the assignee and notifies the new and previous assignee
func (h *Handler) HandleReassignTask(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		apierrors.RespondWithBadRequest(c, "Invalid task ID")
		return
	}

	var req ReassignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID.String()})

	notifications, err := h.processor.ReassignAndNotify(ctx, userID, orgID, taskID, req.AssigneeID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// HandleListNotifications lists the caller's notifications. unread=true limits to unread ones.
func (h *Handler) HandleListNotifications(c *gin.Context) {
	ctx := c.Request.Context()

	userID, _, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.Query("per_page"))
	if err != nil || perPage < 1 || perPage > 100 {
		perPage = 20
	}
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.processor.ListNotifications(ctx, userID, unreadOnly, perPage, (page-1)*perPage)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "page": page, "per_page": perPage})
}

// HandleMarkNotificationRead marks one of the caller's notifications as read
func (h *Handler) HandleMarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()

	userID, _, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	notificationID, err := uuid.Parse(c.Param("notification_id"))
	if err != nil {
		apierrors.RespondWithBadRequest(c, "Invalid notification ID")
		return
	}

	notification, err := h.processor.MarkNotificationRead(ctx, userID, notificationID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}
