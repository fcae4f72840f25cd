package applicationapimodels

import (
	"time"

	"connect-skills-backend/models"

	"github.com/pkg/errors"
)

type ApplicationView struct {
	ID             string    `json:"id"`
	CandidateID    string    `json:"candidate_id"`
	CandidateName  string    `json:"candidate_name,omitempty"`
	VacancyID      string    `json:"vacancy_id"`
	VacancyTitle   string    `json:"vacancy_title,omitempty"`
	CompanyName    string    `json:"company_name,omitempty"`
	Score          int       `json:"score"`
	VideoStatus    string    `json:"video_status,omitempty"`
	FeedbackStatus string    `json:"feedback_status,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ApplyRequest struct {
	VacancyID string `json:"vacancy_id"`
}

func (r ApplyRequest) Validate() error {
	if r.VacancyID == "" {
		return errors.New("vacancy id is required")
	}
	return nil
}

type ScoreRequest struct {
	Score int `json:"score"`
}

func (r ScoreRequest) Validate() error {
	if r.Score < 0 || r.Score > 100 {
		return errors.New("score must be between 0 and 100")
	}
	return nil
}

type FeedbackRequest struct {
	Status models.FeedbackStatus `json:"status"` // APPROVED/REJECTED
}

func (r FeedbackRequest) Validate() error {
	if !r.Status.IsFinal() {
		return errors.New("feedback status must be APPROVED or REJECTED")
	}
	return nil
}
