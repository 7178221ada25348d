package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/mock"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/validators"
	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func backendEngineer() models.Notification {
	return models.Notification{
		Title:        "Backend Engineer",
		Seniority:    models.SeniorityMid,
		Country:      "IL",
		Location:     "Tel Aviv",
		Dist:         10,
		JobScope:     models.JobScopeFullTime,
		Frequency:    models.FrequencyDaily,
		EmailEnabled: true,
	}
}

func TestNotificationForm_Defaults(t *testing.T) {
	f := NewNotificationForm(nil, fixedID("x"), nil, 0)

	v := f.Values()
	assert.False(t, f.Editing())
	assert.Equal(t, models.SeniorityJunior, v.Seniority)
	assert.Equal(t, models.JobScopeFullTime, v.JobScope)
	assert.Equal(t, models.FrequencyDaily, v.Frequency)
	assert.True(t, v.EmailEnabled)
	assert.Zero(t, v.Dist)
}

func TestNotificationForm_CreateThenEditPrefills(t *testing.T) {
	ctx := context.Background()
	repo := service.NewMemoryNotificationRepository(fixedID("unused"))

	create := NewNotificationForm(repo, fixedID("client-1"), nil, 500*time.Millisecond)
	saved, err := create.Submit(ctx, backendEngineer())
	require.NoError(t, err)
	assert.Equal(t, "client-1", saved.ID)
	assert.Equal(t, app.MsgNotificationCreated, create.Message())
	assert.Equal(t, 500*time.Millisecond, create.RedirectDelay())

	listed, ok := repo.Get("client-1")
	require.True(t, ok)

	edit := NewNotificationForm(repo, fixedID("unused"), &listed, 0)
	want := backendEngineer()
	want.ID = "client-1"
	assert.Equal(t, want, edit.Values())

	changed := edit.Values()
	changed.Frequency = models.FrequencyWeekly
	updated, err := edit.Submit(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, "client-1", updated.ID)
	assert.Equal(t, app.MsgNotificationUpdated, edit.Message())
	assert.Len(t, repo.Items(), 1)
}

func TestNotificationForm_ValidationBlocksSave(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockClientNotificationRepository(gomock.NewController(t))
	f := NewNotificationForm(repo, fixedID("id"), nil, 0)

	n := backendEngineer()
	n.Country = ""
	n.Location = " "

	_, err := f.Submit(ctx, n)
	require.ErrorIs(t, err, validators.ErrRequiredFieldsMissing)
	assert.Equal(t, "please fill in Title, Country, and Location.", err.Error())
	assert.Equal(t, StatusFailed, f.Status())
}

func TestNotificationForm_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockClientNotificationRepository(gomock.NewController(t))
	initial := backendEngineer()
	initial.ID = "n1"
	f := NewNotificationForm(repo, fixedID("unused"), &initial, 0)

	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Notification) (models.Notification, error) {
			assert.Equal(t, "n1", n.ID)
			return models.Notification{}, errors.New("Notification not found")
		})

	in := f.Values()
	in.ID = "tampered"
	_, err := f.Submit(ctx, in)
	assert.EqualError(t, err, "Notification not found")
	assert.Equal(t, StatusFailed, f.Status())
}

func TestNotificationForm_FromLegacy(t *testing.T) {
	ctx := context.Background()
	f := NewNotificationForm(nil, fixedID("id"), nil, 0)

	_, err := f.FromLegacy(ctx, models.LegacyNotification{})
	require.ErrorIs(t, err, validators.ErrLegacyTitleRequired)
	assert.Equal(t, "job title or search keyword required.", err.Error())

	n, err := f.FromLegacy(ctx, models.LegacyNotification{
		Keywords: " golang , kubernetes", Level: "Senior", Location: "Berlin", EmploymentType: "parttime", Frequency: "once_week",
	})
	require.NoError(t, err)
	assert.Equal(t, "golang", n.Title)
	assert.Equal(t, models.SenioritySenior, n.Seniority)
	assert.Equal(t, models.JobScopePartTime, n.JobScope)
	assert.Equal(t, models.FrequencyWeekly, n.Frequency)

	_, err = f.Submit(ctx, n)
	assert.ErrorIs(t, err, validators.ErrRequiredFieldsMissing, "country is not part of v1 records")
}
