package handler

import (
	"errors"
	"strings"

	"crm-server/internal/apierrors"
	"crm-server/internal/auth/processor"
	"crm-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey         = "User-ID"
	organisationIDKey = "Organisation-ID"
)

var errNoCaller = errors.New("no authenticated user on request")

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		c.Abort()
		return
	}

	c.Set(userIDKey, claims.Subject)
	c.Set(organisationIDKey, claims.OrganisationID)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: claims.Subject},
		observability.Field{Key: "organisation_id", Value: claims.OrganisationID},
	)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// Caller returns the user and organisation set by HandleJWTMiddleware
func Caller(c *gin.Context) (userID uuid.UUID, organisationID uuid.UUID, err error) {
	rawUser, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, uuid.Nil, errNoCaller
	}
	rawOrg, ok := c.Get(organisationIDKey)
	if !ok {
		return uuid.Nil, uuid.Nil, errNoCaller
	}
	userID, err = uuid.Parse(rawUser.(string))
	if err != nil {
		return uuid.Nil, uuid.Nil, errNoCaller
	}
	organisationID, err = uuid.Parse(rawOrg.(string))
	if err != nil {
		return uuid.Nil, uuid.Nil, errNoCaller
	}
	return userID, organisationID, nil
}

// MustCaller is Caller for handlers behind the middleware. It writes a 401 and returns false
// when the request carries no caller.
func MustCaller(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, orgID, err := Caller(c)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return uuid.Nil, uuid.Nil, false
	}
	return userID, orgID, true
}
