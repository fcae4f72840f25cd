package notificationhandler

import (
	"testing"

	"connect-skills-backend/models"
	notificationapimodels "connect-skills-backend/models/api/notification"
	dbmodels "connect-skills-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestMarkRead(t *testing.T) {
	t.Run("video read flag only", func(t *testing.T) {
		b := dbmodels.Breakdown{
			Video:    &dbmodels.NotificationState{Status: string(models.VideoStatusRequested)},
			Feedback: &dbmodels.NotificationState{Status: string(models.FeedbackApproved)},
		}
		markRead(&b, notificationapimodels.KindVideoRequest)
		require.True(t, b.Video.Read)
		require.Equal(t, string(models.VideoStatusRequested), b.Video.Status)
		require.False(t, b.Video.Deleted)
		require.False(t, b.Feedback.Read)
	})
	t.Run("feedback read on empty blob", func(t *testing.T) {
		b := dbmodels.Breakdown{}
		markRead(&b, notificationapimodels.KindFeedback)
		require.NotNil(t, b.Feedback)
		require.True(t, b.Feedback.Read)
		require.Nil(t, b.Video)
	})
	t.Run("idempotent", func(t *testing.T) {
		b := dbmodels.Breakdown{}
		markRead(&b, notificationapimodels.KindVideoRequest)
		markRead(&b, notificationapimodels.KindVideoRequest)
		require.True(t, b.Video.Read)
	})
	t.Run("company keys preserved", func(t *testing.T) {
		b := dbmodels.Breakdown{
			CompanyNotifications: &dbmodels.CompanyNotifications{
				NewCandidate: &dbmodels.DismissFlag{Deleted: true},
			},
		}
		markRead(&b, notificationapimodels.KindFeedback)
		require.NotNil(t, b.CompanyNotifications)
		require.True(t, b.CompanyNotifications.NewCandidate.Deleted)
	})
}

func TestClearCandidate(t *testing.T) {
	t.Run("dismisses active notifications", func(t *testing.T) {
		b := dbmodels.Breakdown{
			Video:    &dbmodels.NotificationState{Status: string(models.VideoStatusRequested), Read: true},
			Feedback: &dbmodels.NotificationState{Status: string(models.FeedbackRejected)},
		}
		changed := clearCandidate(&b)
		require.True(t, changed)
		require.True(t, b.Video.Deleted)
		require.True(t, b.Feedback.Deleted)
		require.True(t, b.Video.Read)
	})
	t.Run("no change without derivable notifications", func(t *testing.T) {
		b := dbmodels.Breakdown{}
		require.False(t, clearCandidate(&b))
		require.Nil(t, b.Video)
		require.Nil(t, b.Feedback)

		b = dbmodels.Breakdown{
			Video: &dbmodels.NotificationState{Status: string(models.VideoStatusReceived)},
		}
		require.False(t, clearCandidate(&b))
		require.False(t, b.Video.Deleted)
	})
	t.Run("no change when already dismissed", func(t *testing.T) {
		b := dbmodels.Breakdown{
			Video: &dbmodels.NotificationState{Status: string(models.VideoStatusRequested), Deleted: true},
		}
		require.False(t, clearCandidate(&b))
	})
	t.Run("partial dismiss still reports change", func(t *testing.T) {
		b := dbmodels.Breakdown{
			Video:    &dbmodels.NotificationState{Status: string(models.VideoStatusRequested), Deleted: true},
			Feedback: &dbmodels.NotificationState{Status: string(models.FeedbackApproved)},
		}
		require.True(t, clearCandidate(&b))
		require.True(t, b.Feedback.Deleted)
	})
}

func TestClearCompany(t *testing.T) {
	t.Run("initializes nested records", func(t *testing.T) {
		b := dbmodels.Breakdown{}
		clearCompany(&b)
		require.NotNil(t, b.CompanyNotifications)
		require.True(t, b.CompanyNotifications.NewCandidate.Deleted)
		require.True(t, b.CompanyNotifications.VideoReceived.Deleted)
	})
	t.Run("candidate keys preserved", func(t *testing.T) {
		b := dbmodels.Breakdown{
			Video: &dbmodels.NotificationState{Status: string(models.VideoStatusRequested), Read: true},
		}
		clearCompany(&b)
		require.Equal(t, string(models.VideoStatusRequested), b.Video.Status)
		require.True(t, b.Video.Read)
		require.False(t, b.Video.Deleted)
	})
}

func TestNotificationLifecycle(t *testing.T) {
	b := dbmodels.Breakdown{}

	// company requests a video
	b.EnsureVideo().Status = string(models.VideoStatusRequested)
	require.True(t, b.VideoRequested())

	// candidate reads, then dismisses
	markRead(&b, notificationapimodels.KindVideoRequest)
	require.True(t, clearCandidate(&b))
	require.True(t, b.Video.Deleted)

	// dismissing does not change the video status
	require.True(t, b.VideoRequested())

	// feedback arrives later and is a fresh notification
	b.EnsureFeedback().Status = string(models.FeedbackApproved)
	require.False(t, b.Feedback.Deleted)
	require.True(t, clearCandidate(&b))
	require.True(t, b.Feedback.Deleted)

	// a second clear is a no-op
	require.False(t, clearCandidate(&b))
}
