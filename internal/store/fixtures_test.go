package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Campaign Fixtures ---

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	SenderID       uuid.UUID
	OrganisationID uuid.UUID
	Name           string
	Status         CampaignStatus
	ScheduleTime   *time.Time
	Audience       types.JSONText
}

// CreateCampaign creates a scheduled campaign unless overridden.
func (f *Fixtures) CreateCampaign(opts ...func(*CampaignOpts)) Campaign {
	f.t.Helper()
	o := CampaignOpts{
		SenderID:       uuid.New(),
		OrganisationID: uuid.New(),
		Name:           "Spring outreach",
		Status:         CampaignStatusScheduled,
		Audience:       types.JSONText(`["a@example.com","b@example.com"]`),
	}
	for _, fn := range opts {
		fn(&o)
	}

	campaign, err := f.testDB.Store.CreateCampaign(f.ctx, CreateCampaignParams{
		SenderID:       o.SenderID,
		OrganisationID: o.OrganisationID,
		Name:           o.Name,
		Subject:        "Hello {{first_name}}",
		Audience:       o.Audience,
		Content:        "Hi {{lead_name}}",
		Schedule:       CampaignScheduleLater,
		Status:         o.Status,
		ScheduleTime:   o.ScheduleTime,
	})
	require.NoError(f.t, err, "failed to create test campaign")
	return campaign
}

// --- Scheduled Email Fixtures ---

// ScheduledEmailOpts customizes scheduled email creation.
type ScheduledEmailOpts struct {
	CampaignID     *uuid.UUID
	UserID         uuid.UUID
	OrganisationID uuid.UUID
	ToEmail        string
	ScheduledFor   *time.Time
	Metadata       JSONB
}

// CreateScheduledEmail creates a scheduled email due one minute ago unless overridden.
func (f *Fixtures) CreateScheduledEmail(opts ...func(*ScheduledEmailOpts)) ScheduledEmail {
	f.t.Helper()
	due := time.Now().Add(-time.Minute)
	o := ScheduledEmailOpts{
		UserID:         uuid.New(),
		OrganisationID: uuid.New(),
		ToEmail:        "lead@example.com",
		ScheduledFor:   &due,
	}
	for _, fn := range opts {
		fn(&o)
	}

	email, err := f.testDB.Store.CreateScheduledEmail(f.ctx, CreateScheduledEmailParams{
		CampaignID:     o.CampaignID,
		UserID:         o.UserID,
		OrganisationID: o.OrganisationID,
		ToEmail:        o.ToEmail,
		Subject:        "Subject",
		Body:           "<p>Body</p>",
		ScheduledFor:   o.ScheduledFor,
		Metadata:       o.Metadata,
	})
	require.NoError(f.t, err, "failed to create test scheduled email")
	return email
}

// CreateTask creates an assigned task due at the given time.
func (f *Fixtures) CreateTask(assignee uuid.UUID, due time.Time) Task {
	f.t.Helper()
	task, err := f.testDB.Store.CreateTask(f.ctx, CreateTaskParams{
		OrganisationID: uuid.New(),
		Title:          "Call back",
		DueDate:        &due,
		AssigneeID:     &assignee,
		CreatedBy:      uuid.New(),
	})
	require.NoError(f.t, err, "failed to create test task")
	return task
}
