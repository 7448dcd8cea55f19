package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-server/internal/mailer"
	"crm-server/internal/observability"
	"crm-server/internal/store"
	"crm-server/internal/tokenbroker"

	"github.com/google/uuid"
)

// DeliverScheduledEmail performs one delivery attempt for a scheduled email. Redelivered or
// stale tasks are no-ops. A returned error wrapping ErrPermanentFailure must not be retried;
// any other error means a retry is pending.
func (p *ScheduledEmailProcessor) DeliverScheduledEmail(ctx context.Context, emailID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_email_id", Value: emailID.String()})

	email, err := p.store.GetScheduledEmailByID(ctx, emailID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "scheduled email to deliver no longer exists")
			return nil
		}
		p.logger.Error(ctx, "failed to get scheduled email", err)
		return err
	}

	now := p.now()
	leaseExpiredBefore := now.Add(-store.ProcessingLease)
	if !deliverable(email, now, leaseExpiredBefore) {
		p.logger.Info(ctx, fmt.Sprintf("scheduled email in status %s is not deliverable now", email.Status))
		return nil
	}

	claimed, err := p.store.ClaimScheduledEmail(ctx, emailID, now, leaseExpiredBefore)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "scheduled email already claimed")
			return nil
		}
		p.logger.Error(ctx, "failed to claim scheduled email", err)
		return err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "attempt", Value: claimed.Attempts})
	result, sendErr := p.send(ctx, claimed)

	// the outcome is recorded even when the attempt ran out of time
	recordCtx := context.WithoutCancel(ctx)
	if sendErr != nil {
		return p.recordFailure(recordCtx, claimed, sendErr)
	}
	p.recordSent(recordCtx, claimed, result)
	return nil
}

func deliverable(email store.ScheduledEmail, now, leaseExpiredBefore time.Time) bool {
	if email.CanBeSentNow(now) || email.RetryDue(now) {
		return true
	}
	return email.Status == store.ScheduledEmailStatusProcessing &&
		email.IsRetryable() &&
		email.ProcessingStartedAt != nil &&
		email.ProcessingStartedAt.Before(leaseExpiredBefore)
}

// send obtains a session and makes the attempt, falling back to the default mailer when the
// user's account needs reconnecting. An expired token is refreshed once and the send repeated.
func (p *ScheduledEmailProcessor) send(ctx context.Context, email store.ScheduledEmail) (mailer.Result, error) {
	msg := mailer.Message{
		To:      []string{email.ToEmail},
		Subject: email.Subject,
		Body:    email.Body,
		IsHTML:  true,
	}

	session := p.sessions.GetAuthenticatedSession(ctx, email.UserID)
	if !session.Available() {
		sessionErr := session.Err
		if sessionErr == nil {
			sessionErr = fmt.Errorf("%w: empty access token", tokenbroker.ErrTransientRefresh)
		}
		if tokenbroker.IsReconnectRequired(sessionErr) && p.fallback.Enabled() {
			p.logger.InfoWithError(ctx, "sending through the default mailer", sessionErr)
			return p.fallback.Send(ctx, msg)
		}
		return mailer.Result{}, sessionErr
	}

	msg.From = session.SenderEmail
	result, err := p.sender.Send(ctx, session.TokenSource(), msg)
	if !errors.Is(err, mailer.ErrAuthExpired) {
		return result, err
	}

	p.logger.Info(ctx, "access token rejected, forcing a refresh")
	session, err = p.sessions.ForceRefresh(ctx, email.UserID)
	if err != nil {
		return mailer.Result{}, err
	}
	return p.sender.Send(ctx, session.TokenSource(), msg)
}

func (p *ScheduledEmailProcessor) recordSent(ctx context.Context, email store.ScheduledEmail, result mailer.Result) {
	sent, err := p.store.MarkScheduledEmailSent(ctx, email.ID, result.MessageID)
	if err != nil {
		// the message is out; a retry would send it twice
		p.logger.Error(ctx, "failed to mark scheduled email sent", err)
		sent = email
	}

	sentAt := p.now()
	if sent.SentAt != nil {
		sentAt = *sent.SentAt
	}
	messageID := result.MessageID
	p.writeLog(ctx, store.CreateEmailLogParams{
		ScheduledEmailID: &email.ID,
		LeadID:           email.LeadID(),
		UserID:           email.UserID,
		OrganisationID:   email.OrganisationID,
		ToEmail:          email.ToEmail,
		Subject:          email.Subject,
		Body:             email.Body,
		MessageID:        &messageID,
		Status:           store.EmailLogStatusSent,
		SentAt:           &sentAt,
		ScheduledFor:     email.ScheduledFor,
	})

	p.logger.Info(ctx, "scheduled email sent")
	if err := p.events.PublishEmailSent(ctx, sent, result.MessageID); err != nil {
		p.logger.Warn(ctx, "email sent event not published")
	}
	p.rollUp(ctx, sent)
}

func (p *ScheduledEmailProcessor) recordFailure(ctx context.Context, email store.ScheduledEmail, sendErr error) error {
	retry := isRetryable(sendErr) && email.IsRetryable()
	reason := failureReason(sendErr)

	var nextRetryAt *time.Time
	if retry {
		at := p.now().Add(store.SendRetryBackoff(email.Attempts))
		nextRetryAt = &at
	}

	failed, err := p.store.MarkScheduledEmailFailed(ctx, email.ID, reason, nextRetryAt)
	if err != nil {
		p.logger.Error(ctx, "failed to mark scheduled email failed", err)
		return err
	}

	p.writeLog(ctx, store.CreateEmailLogParams{
		ScheduledEmailID: &email.ID,
		LeadID:           email.LeadID(),
		UserID:           email.UserID,
		OrganisationID:   email.OrganisationID,
		ToEmail:          email.ToEmail,
		Subject:          email.Subject,
		Body:             email.Body,
		Status:           store.EmailLogStatusFailed,
		ErrorMessage:     &reason,
		ScheduledFor:     email.ScheduledFor,
	})

	if retry {
		p.logger.InfoWithError(ctx, fmt.Sprintf("scheduled email send failed, retry at %s", nextRetryAt.Format(time.RFC3339)), sendErr)
		return fmt.Errorf("failed to send scheduled email: %w", sendErr)
	}

	p.logger.Error(ctx, "scheduled email failed permanently", sendErr)
	if err := p.events.PublishEmailFailed(ctx, failed, reason); err != nil {
		p.logger.Warn(ctx, "email failed event not published")
	}
	p.rollUp(ctx, failed)
	return fmt.Errorf("%w: %w", ErrPermanentFailure, sendErr)
}

func (p *ScheduledEmailProcessor) writeLog(ctx context.Context, params store.CreateEmailLogParams) {
	if _, err := p.store.CreateEmailLog(ctx, params); err != nil {
		p.logger.Error(ctx, "failed to write email log", err)
	}
}

// isRetryable classifies a send failure. Account problems and rejected messages are final.
func isRetryable(err error) bool {
	switch {
	case tokenbroker.IsReconnectRequired(err),
		errors.Is(err, mailer.ErrProviderRejected),
		errors.Is(err, mailer.ErrFallbackDisabled):
		return false
	}
	return true
}

func failureReason(err error) string {
	if tokenbroker.IsReconnectRequired(err) {
		return "mail account unavailable, reconnect the account: " + err.Error()
	}
	return err.Error()
}
