package handler

import (
	"net/http"
	"net/url"

	"crm-server/internal/apierrors"
	authHandler "crm-server/internal/auth/handler"
	"crm-server/internal/mailaccounts/processor"
	"crm-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.MailAccountProcessor
	webAppURI string
	logger    *observability.Logger
}

func New(processor processor.MailAccountProcessor, webAppURI string, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		webAppURI: webAppURI,
		logger:    logger,
	}
}

type SendTestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// HandleConnect returns the Google consent URL for the caller
func (h *Handler) HandleConnect(c *gin.Context) {
	ctx := c.Request.Context()

	userID, _, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	connectURL, err := h.processor.ConnectURL(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": connectURL})
}

// HandleGoogleCallback finishes the Google consent flow and sends the browser back to the web app
func (h *Handler) HandleGoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	if oauthErr := c.Query("error"); oauthErr != "" {
		h.logger.Warn(ctx, "google consent was not granted: "+oauthErr)
		c.Redirect(http.StatusFound, h.redirectURL("error", oauthErr))
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		apierrors.RespondWithBadRequest(c, "Authorization code is missing")
		return
	}

	if _, err := h.processor.Connect(ctx, state, code); err != nil {
		apiErr := apierrors.MapError(err)
		c.Redirect(http.StatusFound, h.redirectURL("error", apiErr.Code))
		return
	}

	c.Redirect(http.StatusFound, h.redirectURL("connected", ""))
}

func (h *Handler) redirectURL(result, reason string) string {
	redirect := url.URL{Path: "/settings/mail-account"}
	if base, err := url.Parse(h.webAppURI); err == nil {
		redirect.Scheme = base.Scheme
		redirect.Host = base.Host
	}
	q := url.Values{"mail_account": {result}}
	if reason != "" {
		q.Set("reason", reason)
	}
	redirect.RawQuery = q.Encode()
	return redirect.String()
}

// HandleStatus reports whether the caller's mail account can send
func (h *Handler) HandleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	userID, _, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	status, err := h.processor.Status(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HandleRefresh forces an access token refresh
func (h *Handler) HandleRefresh(c *gin.Context) {
	ctx := c.Request.Context()

	userID, _, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	status, err := h.processor.Refresh(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HandleDisconnect removes the caller's mail account
func (h *Handler) HandleDisconnect(c *gin.Context) {
	ctx := c.Request.Context()

	userID, _, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	if err := h.processor.Disconnect(ctx, userID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleSendTestEmail sends a test message through the caller's mail account
func (h *Handler) HandleSendTestEmail(c *gin.Context) {
	ctx := c.Request.Context()

	userID, orgID, ok := authHandler.MustCaller(c)
	if !ok {
		return
	}

	var req SendTestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SendTestEmail(ctx, userID, orgID, req.To)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message_id": result.MessageID})
}
