package notificationapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	KindVideoRequest = "video_request"
	KindFeedback     = "feedback"

	videoRequestPrefix = "video_request_"
	feedbackPrefix     = "feedback_"
)

type NotificationView struct {
	ID        string `json:"id"` // "<kind>_<vacancy id>"
	Kind      string `json:"kind"`
	VacancyID string `json:"vacancy_id"`
	Title     string `json:"title"`
	Read      bool   `json:"read"`
}

type CompanyNotificationView struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"` // new_candidate/video_received
	VacancyID    string `json:"vacancy_id"`
	EvaluationID string `json:"evaluation_id"`
	Title        string `json:"title"`
}

type MarkReadRequest struct {
	NotificationID string `json:"notificationId"`
}

func (r MarkReadRequest) Validate() error {
	if r.NotificationID == "" {
		return errors.New("notification id is required")
	}
	_, _, err := ParseNotificationID(r.NotificationID)
	return err
}

// ParseNotificationID splits "<kind prefix><vacancy id>" identifiers used by
// candidate notifications.
func ParseNotificationID(id string) (kind string, vacancyID string, err error) {
	switch {
	case strings.HasPrefix(id, videoRequestPrefix):
		kind = KindVideoRequest
		vacancyID = strings.TrimPrefix(id, videoRequestPrefix)
	case strings.HasPrefix(id, feedbackPrefix):
		kind = KindFeedback
		vacancyID = strings.TrimPrefix(id, feedbackPrefix)
	default:
		return "", "", errors.New("unknown notification kind")
	}
	if vacancyID == "" {
		return "", "", errors.New("notification id has no vacancy id suffix")
	}
	return kind, vacancyID, nil
}

type ClearResponse struct {
	Success bool `json:"success"`
}
