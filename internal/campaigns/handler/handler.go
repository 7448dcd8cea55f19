package handler

import (
	"net/http"
	"strconv"
	"time"

	"crm-server/internal/apierrors"
	"crm-server/internal/audience"
	authHandler "crm-server/internal/auth/handler"
	"crm-server/internal/campaigns/processor"
	"crm-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name         string               `json:"name" binding:"required,min=1,max=255"`
	Subject      string               `json:"subject" binding:"required,min=1,max=998"`
	Content      string               `json:"content" binding:"required"`
	Audience     []audience.Recipient `json:"audience" binding:"required,min=1"`
	Schedule     string               `json:"schedule" binding:"omitempty,oneof=now later"`
	ScheduleTime *time.Time           `json:"schedule_time,omitempty"`
	Draft        bool                 `json:"draft"`
}

// UpdateCampaignRequest represents the HTTP request for updating a campaign
type UpdateCampaignRequest struct {
	Name         *string              `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Subject      *string              `json:"subject,omitempty" binding:"omitempty,min=1,max=998"`
	Content      *string              `json:"content,omitempty"`
	Audience     []audience.Recipient `json:"audience,omitempty"`
	ScheduleTime *time.Time           `json:"schedule_time,omitempty"`
}

// HandleCreateCampaign creates a campaign and schedules its processing
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, userID, orgID, processor.CreateCampaignParams{
		Name:         req.Name,
		Subject:      req.Subject,
		Content:      req.Content,
		Recipients:   req.Audience,
		Schedule:     req.Schedule,
		ScheduleTime: req.ScheduleTime,
		Draft:        req.Draft,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists campaigns visible to the caller
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	page, perPage := pagination(c)
	params := processor.ListCampaignsParams{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
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

	result, err := h.processor.ListCampaigns(ctx, userID, orgID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns": result.Campaigns,
		"pagination": gin.H{
			"total_count": result.TotalCount,
			"page":        page,
			"per_page":    perPage,
			"total_pages": (result.TotalCount + perPage - 1) / perPage,
		},
	})
}

// HandleGetCampaign returns a campaign with its statistics
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := h.processor.GetCampaign(ctx, userID, orgID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaign updates a draft or scheduled campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, userID, orgID, campaignID, processor.UpdateCampaignParams{
		Name:         req.Name,
		Subject:      req.Subject,
		Content:      req.Content,
		Recipients:   req.Audience,
		ScheduleTime: req.ScheduleTime,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleCancelCampaign cancels a campaign and its not yet claimed emails
func (h *Handler) HandleCancelCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	result, err := h.processor.CancelCampaign(ctx, userID, orgID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithBadRequest(c, "Invalid campaign ID")
		return uuid.Nil, false
	}
	return campaignID, true
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
