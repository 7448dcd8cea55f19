package api

import (
	"net/http"

	authHandler "crm-server/internal/auth/handler"
	campaignHandler "crm-server/internal/campaigns/handler"
	mailAccountHandler "crm-server/internal/mailaccounts/handler"
	"crm-server/internal/ratelimit"
	scheduledEmailHandler "crm-server/internal/scheduledemails/handler"
	taskHandler "crm-server/internal/tasks/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router                *gin.RouterGroup
	authHandler           authHandler.Handler
	campaignHandler       campaignHandler.Handler
	scheduledEmailHandler scheduledEmailHandler.Handler
	mailAccountHandler    mailAccountHandler.Handler
	taskHandler           taskHandler.Handler
	sendLimiter           *ratelimit.Service
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	campaignHandler campaignHandler.Handler,
	scheduledEmailHandler scheduledEmailHandler.Handler,
	mailAccountHandler mailAccountHandler.Handler,
	taskHandler taskHandler.Handler,
	sendLimiter *ratelimit.Service,
) API {
	return API{
		router:                router,
		authHandler:           authHandler,
		campaignHandler:       campaignHandler,
		scheduledEmailHandler: scheduledEmailHandler,
		mailAccountHandler:    mailAccountHandler,
		taskHandler:           taskHandler,
		sendLimiter:           sendLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api/v1")

	// Google redirects here without a bearer token; the user travels in the signed state
	apiGroup.GET("/mail-account/google/callback", a.mailAccountHandler.HandleGoogleCallback)

	protectedGroup := apiGroup.Group("", a.authHandler.HandleJWTMiddleware)
	{
		limitSends := a.sendLimiter.Middleware("send")

		campaigns := protectedGroup.Group("/campaigns")
		campaigns.POST("", limitSends, a.campaignHandler.HandleCreateCampaign)
		campaigns.GET("", a.campaignHandler.HandleListCampaigns)
		campaigns.GET("/:campaign_id", a.campaignHandler.HandleGetCampaign)
		campaigns.PATCH("/:campaign_id", a.campaignHandler.HandleUpdateCampaign)
		campaigns.POST("/:campaign_id/cancel", a.campaignHandler.HandleCancelCampaign)

		scheduled := protectedGroup.Group("/scheduled-emails")
		scheduled.POST("", limitSends, a.scheduledEmailHandler.HandleScheduleEmail)
		scheduled.POST("/bulk", limitSends, a.scheduledEmailHandler.HandleScheduleBulk)
		scheduled.GET("", a.scheduledEmailHandler.HandleListScheduledEmails)
		scheduled.GET("/:scheduled_email_id", a.scheduledEmailHandler.HandleGetScheduledEmail)
		scheduled.PATCH("/:scheduled_email_id", a.scheduledEmailHandler.HandleUpdateScheduledEmail)
		scheduled.POST("/:scheduled_email_id/cancel", a.scheduledEmailHandler.HandleCancelScheduledEmail)

		protectedGroup.GET("/leads/:lead_id/emails", a.scheduledEmailHandler.HandleGetLeadEmails)

		mailAccount := protectedGroup.Group("/mail-account")
		mailAccount.GET("/google/connect", a.mailAccountHandler.HandleConnect)
		mailAccount.GET("/status", a.mailAccountHandler.HandleStatus)
		mailAccount.POST("/refresh", a.mailAccountHandler.HandleRefresh)
		mailAccount.DELETE("", a.mailAccountHandler.HandleDisconnect)
		mailAccount.POST("/test", limitSends, a.mailAccountHandler.HandleSendTestEmail)

		protectedGroup.POST("/tasks", a.taskHandler.HandleCreateTask)
		protectedGroup.PATCH("/tasks/:task_id/assignee", a.taskHandler.HandleReassignTask)

		protectedGroup.GET("/notifications", a.taskHandler.HandleListNotifications)
		protectedGroup.POST("/notifications/:notification_id/read", a.taskHandler.HandleMarkNotificationRead)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
