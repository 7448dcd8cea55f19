package apierrors

import (
	"errors"
	"strings"

	authProcessor "crm-server/internal/auth/processor"
	campaignsProcessor "crm-server/internal/campaigns/processor"
	mailAccountsProcessor "crm-server/internal/mailaccounts/processor"
	"crm-server/internal/mailer"
	scheduledEmailsProcessor "crm-server/internal/scheduledemails/processor"
	tasksProcessor "crm-server/internal/tasks/processor"
	"crm-server/internal/tokenbroker"
)

// MapError converts domain/processor errors to APIErrors. An APIError is returned as is;
// anything unknown becomes a sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Token expired")

	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken),
		errors.Is(err, authProcessor.ErrMissingOrganisation):
		return Unauthorized("Authorization token is missing or invalid")

	// Map campaign processor errors
	case errors.Is(err, campaignsProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignsProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this campaign")

	case errors.Is(err, campaignsProcessor.ErrCampaignNotCancellable):
		return Conflict(CodeCampaignNotCancel, "Campaign can no longer be cancelled")

	case errors.Is(err, campaignsProcessor.ErrCampaignNotEditable):
		return Conflict(CodeCampaignNotEditable, "Only draft or scheduled campaigns can be updated")

	case errors.Is(err, campaignsProcessor.ErrEmptyAudience):
		return BadRequest(CodeEmptyAudience, "Campaign audience has no valid recipients")

	case errors.Is(err, campaignsProcessor.ErrScheduleTimeRequired):
		return BadRequest(CodeInvalidSchedule, "Schedule time is required")

	case errors.Is(err, campaignsProcessor.ErrScheduleTimeInPast):
		return BadRequest(CodeInvalidSchedule, "Schedule time must be in the future")

	// Map scheduled email processor errors
	case errors.Is(err, scheduledEmailsProcessor.ErrScheduledEmailNotFound):
		return NotFound(CodeEmailNotFound, "Scheduled email not found")

	case errors.Is(err, scheduledEmailsProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this scheduled email")

	case errors.Is(err, scheduledEmailsProcessor.ErrInvalidRecipient):
		return BadRequest(CodeInvalidRecipient, "Invalid recipient email address")

	case errors.Is(err, scheduledEmailsProcessor.ErrNoRecipients):
		return BadRequest(CodeInvalidRecipient, "At least one valid recipient is required")

	case errors.Is(err, scheduledEmailsProcessor.ErrInvalidBatchSize):
		return BadRequest(CodeInvalidBatchSize, "Batch size must be between 1 and 50")

	case errors.Is(err, scheduledEmailsProcessor.ErrSendAtInPast):
		return BadRequest(CodeInvalidSchedule, "Send time must be in the future")

	case errors.Is(err, scheduledEmailsProcessor.ErrNotEditable):
		return Conflict(CodeEmailNotEditable, "Only pending or scheduled emails can be changed")

	// Map task processor errors
	case errors.Is(err, tasksProcessor.ErrTaskNotFound):
		return NotFound(CodeTaskNotFound, "Task not found")

	case errors.Is(err, tasksProcessor.ErrNotificationNotFound):
		return NotFound(CodeNotificationNotFound, "Notification not found")

	case errors.Is(err, tasksProcessor.ErrUnauthorized):
		return Forbidden("You do not have access to this task")

	// Map mail account errors
	case errors.Is(err, mailAccountsProcessor.ErrInvalidState):
		return BadRequest(CodeInvalidState, "The connect link is invalid or has expired. Please try again.")

	case errors.Is(err, mailAccountsProcessor.ErrAccountNotLinked),
		errors.Is(err, tokenbroker.ErrNoProviderLinked):
		return NotFound(CodeMailAccountNotLinked, "No mail account is connected")

	case errors.Is(err, mailAccountsProcessor.ErrNoRefreshToken),
		errors.Is(err, tokenbroker.ErrNoRefreshToken),
		errors.Is(err, tokenbroker.ErrGrantRevoked):
		return Conflict(CodeReconnectRequired, "Your mail account needs to be reconnected")

	case errors.Is(err, mailAccountsProcessor.ErrInvalidRecipient):
		return BadRequest(CodeInvalidRecipient, "Invalid recipient email address")

	case errors.Is(err, mailAccountsProcessor.ErrConnectFailed):
		return ServiceUnavailable(CodeMailProviderError, "Could not connect your mail account. Please try again later.", err)

	// Map mail delivery errors
	case errors.Is(err, mailer.ErrProviderRejected):
		return BadRequest(CodeMailProviderRejected, "The mail provider rejected the message")

	case errors.Is(err, mailer.ErrProviderUnavailable),
		errors.Is(err, mailer.ErrAuthExpired),
		errors.Is(err, tokenbroker.ErrTransientRefresh):
		return ServiceUnavailable(CodeMailProviderError, "Mail provider is temporarily unavailable. Please try again later.", err)

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError identifies external service errors by message content
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "gmail") || strings.Contains(errMsg, "googleapi") {
		return ServiceUnavailable(
			CodeMailProviderError,
			"Mail provider is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
