package dbmodels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBreakdownScan(t *testing.T) {
	t.Run("valid blob", func(t *testing.T) {
		var b Breakdown
		err := b.Scan([]byte(`{"video":{"status":"requested","read":true},"company_notifications":{"new_candidate":{"deleted":true}}}`))
		require.NoError(t, err)
		require.True(t, b.VideoRequested())
		require.True(t, b.Video.Read)
		require.True(t, b.CompanyNotifications.NewCandidate.Deleted)
	})
	t.Run("string input", func(t *testing.T) {
		var b Breakdown
		err := b.Scan(`{"feedback":{"status":"APPROVED"}}`)
		require.NoError(t, err)
		require.True(t, b.FeedbackFinal())
	})
	t.Run("malformed blob reads as empty", func(t *testing.T) {
		b := Breakdown{Video: &NotificationState{Status: "requested"}}
		err := b.Scan([]byte(`{"video":`))
		require.NoError(t, err)
		require.Equal(t, Breakdown{}, b)
	})
	t.Run("nil and unknown types read as empty", func(t *testing.T) {
		b := Breakdown{Feedback: &NotificationState{Status: "APPROVED"}}
		require.NoError(t, b.Scan(nil))
		require.Equal(t, Breakdown{}, b)

		require.NoError(t, b.Scan(42))
		require.Equal(t, Breakdown{}, b)
	})
}

func TestBreakdownValue(t *testing.T) {
	t.Run("empty keys omitted", func(t *testing.T) {
		v, err := Breakdown{}.Value()
		require.NoError(t, err)
		require.Equal(t, "{}", v)
	})
	t.Run("nested state survives a round trip", func(t *testing.T) {
		src := Breakdown{
			Video: &NotificationState{Status: "requested", Deleted: true, Read: true},
			CompanyNotifications: &CompanyNotifications{
				VideoReceived: &DismissFlag{Deleted: true},
			},
		}
		v, err := src.Value()
		require.NoError(t, err)

		var dst Breakdown
		require.NoError(t, dst.Scan(v.(string)))
		require.Equal(t, src, dst)
	})
}

func TestBreakdownKeepsUnknownKeys(t *testing.T) {
	blob := `{
		"video": {"status": "requested", "requested_at": "2026-01-01"},
		"feedback": {"status": "APPROVED"},
		"company_notifications": {"new_candidate": {"deleted": true, "seen_by": "hr-1"}},
		"future_section": {"flag": true}
	}`

	var b Breakdown
	require.NoError(t, b.Scan([]byte(blob)))
	b.EnsureFeedback().Read = true

	v, err := b.Value()
	require.NoError(t, err)

	out := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(v.(string)), &out))
	require.Contains(t, out, "future_section")
	require.JSONEq(t, `{"flag": true}`, string(out["future_section"]))
	require.JSONEq(t, `{"status": "requested", "requested_at": "2026-01-01"}`, string(out["video"]))
	require.JSONEq(t, `{"status": "APPROVED", "read": true}`, string(out["feedback"]))
	require.JSONEq(t, `{"new_candidate": {"deleted": true, "seen_by": "hr-1"}}`, string(out["company_notifications"]))
}
