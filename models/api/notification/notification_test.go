package notificationapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNotificationID(t *testing.T) {
	t.Run("video request id", func(t *testing.T) {
		kind, vacancyID, err := ParseNotificationID("video_request_vac-42")
		require.NoError(t, err)
		require.Equal(t, KindVideoRequest, kind)
		require.Equal(t, "vac-42", vacancyID)
	})
	t.Run("feedback id", func(t *testing.T) {
		kind, vacancyID, err := ParseNotificationID("feedback_vac-42")
		require.NoError(t, err)
		require.Equal(t, KindFeedback, kind)
		require.Equal(t, "vac-42", vacancyID)
	})
	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := ParseNotificationID("new_candidate_vac-42")
		require.Error(t, err)
	})
	t.Run("missing suffix", func(t *testing.T) {
		_, _, err := ParseNotificationID("feedback_")
		require.Error(t, err)
	})
}

func TestMarkReadRequestValidate(t *testing.T) {
	require.Error(t, MarkReadRequest{}.Validate())
	require.Error(t, MarkReadRequest{NotificationID: "garbage"}.Validate())
	require.NoError(t, MarkReadRequest{NotificationID: "video_request_vac-1"}.Validate())
}
