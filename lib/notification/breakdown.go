package notificationhandler

import (
	notificationapimodels "connect-skills-backend/models/api/notification"
	dbmodels "connect-skills-backend/models/db"
)

// markRead flips the read flag of the targeted sub-record only, existing
// sibling keys stay untouched.
func markRead(b *dbmodels.Breakdown, kind string) {
	switch kind {
	case notificationapimodels.KindVideoRequest:
		b.EnsureVideo().Read = true
	case notificationapimodels.KindFeedback:
		b.EnsureFeedback().Read = true
	}
}

// clearCandidate soft-dismisses the candidate-facing notifications that are
// currently derivable from the blob. Returns whether anything changed so the
// caller can skip the write.
func clearCandidate(b *dbmodels.Breakdown) (changed bool) {
	if b.VideoRequested() && !b.Video.Deleted {
		b.Video.Deleted = true
		changed = true
	}
	if b.FeedbackFinal() && !b.Feedback.Deleted {
		b.Feedback.Deleted = true
		changed = true
	}
	return changed
}

// clearCompany unconditionally soft-dismisses both company-facing
// notifications, initializing the nested records when absent.
func clearCompany(b *dbmodels.Breakdown) {
	cn := b.EnsureCompanyNotifications()
	cn.EnsureNewCandidate().Deleted = true
	cn.EnsureVideoReceived().Deleted = true
}
