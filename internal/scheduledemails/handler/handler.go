package handler

import (
	"net/http"
	"strconv"
	"time"

	"crm-server/internal/apierrors"
	"crm-server/internal/audience"
	authHandler "crm-server/internal/auth/handler"
	"crm-server/internal/observability"
	"crm-server/internal/scheduledemails/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ScheduledEmailProcessor
	logger    *observability.Logger
}

func New(processor processor.ScheduledEmailProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ScheduleEmailRequest represents the HTTP request for scheduling one email
type ScheduleEmailRequest struct {
	To       string                 `json:"to" binding:"required,email"`
	Subject  string                 `json:"subject" binding:"required,max=998"`
	Body     string                 `json:"body" binding:"required"`
	SendAt   time.Time              `json:"send_at" binding:"required"`
	LeadID   *uuid.UUID             `json:"lead_id,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// ScheduleBulkRequest represents the HTTP request for scheduling one message to many recipients.
// personalize and create_campaign default to true.
type ScheduleBulkRequest struct {
	Recipients     []audience.Recipient `json:"recipients" binding:"required,min=1"`
	Subject        string               `json:"subject" binding:"required,max=998"`
	Body           string               `json:"body" binding:"required"`
	SendAt         time.Time            `json:"send_at" binding:"required"`
	BatchSize      *int                 `json:"batch_size,omitempty" binding:"omitempty,min=1,max=50"`
	Personalize    *bool                `json:"personalize,omitempty"`
	CreateCampaign *bool                `json:"create_campaign,omitempty"`
	CampaignName   string               `json:"campaign_name,omitempty" binding:"max=255"`
}

// UpdateScheduledEmailRequest represents the HTTP request for editing a scheduled email
type UpdateScheduledEmailRequest struct {
	Subject  *string                `json:"subject,omitempty" binding:"omitempty,max=998"`
	Body     *string                `json:"body,omitempty"`
	SendAt   *time.Time             `json:"send_at,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// HandleScheduleEmail schedules a single email
func (h *Handler) HandleScheduleEmail(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	var req ScheduleEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	email, err := h.processor.ScheduleSingleEmail(ctx, userID, orgID, processor.ScheduleSingleEmailParams{
		To:       req.To,
		Subject:  req.Subject,
		Body:     req.Body,
		SendAt:   req.SendAt,
		LeadID:   req.LeadID,
		Metadata: req.Metadata,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, email)
}

// HandleScheduleBulk schedules one message for many recipients
func (h *Handler) HandleScheduleBulk(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	var req ScheduleBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.ScheduleBulkEmails(ctx, userID, orgID, req.toParams())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (r ScheduleBulkRequest) toParams() processor.ScheduleBulkEmailsParams {
	params := processor.ScheduleBulkEmailsParams{
		Recipients:     r.Recipients,
		Subject:        r.Subject,
		Body:           r.Body,
		SendAt:         r.SendAt,
		BatchSize:      audience.DefaultBatchSize,
		Personalize:    true,
		CreateCampaign: true,
		CampaignName:   r.CampaignName,
	}
	if r.BatchSize != nil {
		params.BatchSize = *r.BatchSize
	}
	if r.Personalize != nil {
		params.Personalize = *r.Personalize
	}
	if r.CreateCampaign != nil {
		params.CreateCampaign = *r.CreateCampaign
	}
	return params
}

// HandleListScheduledEmails lists scheduled emails visible to the caller
func (h *Handler) HandleListScheduledEmails(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	page, perPage := pagination(c)
	params := processor.ListScheduledEmailsParams{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	if raw := c.Query("campaign_id"); raw != "" {
		campaignID, err := uuid.Parse(raw)
		if err != nil {
			apierrors.RespondWithBadRequest(c, "Invalid campaign ID")
			return
		}
		params.CampaignID = &campaignID
	}
	var err error
	if params.FromDate, err = parseDate(c.Query("from_date")); err != nil {
		apierrors.RespondWithBadRequest(c, "from_date must be a date (YYYY-MM-DD) or RFC 3339 time")
		return
	}
	if params.ToDate, err = parseDate(c.Query("to_date")); err != nil {
		apierrors.RespondWithBadRequest(c, "to_date must be a date (YYYY-MM-DD) or RFC 3339 time")
		return
	}

	result, err := h.processor.ListScheduledEmails(ctx, userID, orgID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scheduled_emails": result.Emails,
		"pagination": gin.H{
			"total_count": result.TotalCount,
			"page":        page,
			"per_page":    perPage,
			"total_pages": (result.TotalCount + perPage - 1) / perPage,
		},
	})
}

// HandleGetScheduledEmail returns one scheduled email
func (h *Handler) HandleGetScheduledEmail(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	emailID, ok := h.getEmailID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_email_id", Value: emailID.String()})

	email, err := h.processor.GetScheduledEmail(ctx, userID, orgID, emailID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, email)
}

// HandleUpdateScheduledEmail edits a scheduled email that has not been claimed yet
func (h *Handler) HandleUpdateScheduledEmail(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	emailID, ok := h.getEmailID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_email_id", Value: emailID.String()})

	var req UpdateScheduledEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	email, err := h.processor.UpdateScheduledEmail(ctx, userID, orgID, emailID, processor.UpdateScheduledEmailParams{
		Subject:  req.Subject,
		Body:     req.Body,
		SendAt:   req.SendAt,
		Metadata: req.Metadata,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, email)
}

// HandleCancelScheduledEmail cancels a scheduled email. cancelled is false when it was
// already claimed or finished.
func (h *Handler) HandleCancelScheduledEmail(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	emailID, ok := h.getEmailID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_email_id", Value: emailID.String()})

	cancelled, err := h.processor.CancelScheduledEmail(ctx, userID, orgID, emailID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

// HandleGetLeadEmails returns the logged email history of a lead
func (h *Handler) HandleGetLeadEmails(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	leadID, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		apierrors.RespondWithBadRequest(c, "Invalid lead ID")
		return
	}

	page, perPage := pagination(c)
	history, err := h.processor.GetLeadEmailHistory(ctx, userID, orgID, leadID, perPage, (page-1)*perPage)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *Handler) getEmailID(c *gin.Context) (uuid.UUID, bool) {
	emailID, err := uuid.Parse(c.Param("scheduled_email_id"))
	if err != nil {
		apierrors.RespondWithBadRequest(c, "Invalid scheduled email ID")
		return uuid.Nil, false
	}
	return emailID, true
}

// pagination reads page and per_page. per_page defaults to 20 and is capped at 100.
func pagination(c *gin.Context) (page, perPage int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err = strconv.Atoi(c.Query("per_page"))
	if err != nil || perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
