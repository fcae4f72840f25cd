package notificationhandler

import (
	"fmt"

	"connect-skills-backend/db"
	candidatestore "connect-skills-backend/lib/candidate/store"
	companystore "connect-skills-backend/lib/company/store"
	evaluationstore "connect-skills-backend/lib/evaluation/store"
	"connect-skills-backend/models"
	notificationapimodels "connect-skills-backend/models/api/notification"
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	ListCandidate(userID string) ([]notificationapimodels.NotificationView, error)
	ListCompany(userID string) ([]notificationapimodels.CompanyNotificationView, error)
	MarkRead(userID, notificationID string) error
	ClearCandidate(userID string) error
	ClearCompany(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		candidateStore:  candidatestore.NewInstance(db.DB),
		companyStore:    companystore.NewInstance(db.DB),
		evaluationStore: evaluationstore.NewInstance(db.DB),
	}
}

type impl struct {
	candidateStore  candidatestore.Provider
	companyStore    companystore.Provider
	evaluationStore evaluationstore.Provider
}

func (i impl) ListCandidate(userID string) ([]notificationapimodels.NotificationView, error) {
	candidate, err := i.resolveCandidate(userID)
	if err != nil {
		return nil, err
	}
	list, err := i.evaluationStore.ListByCandidate(candidate.ID)
	if err != nil {
		return nil, err
	}
	result := []notificationapimodels.NotificationView{}
	for _, eval := range list {
		title := ""
		if eval.Vacancy != nil {
			title = eval.Vacancy.Title
		}
		b := eval.Breakdown
		if b.VideoRequested() && !b.Video.Deleted {
			result = append(result, notificationapimodels.NotificationView{
				ID:        fmt.Sprintf("video_request_%s", eval.VacancyID),
				Kind:      notificationapimodels.KindVideoRequest,
				VacancyID: eval.VacancyID,
				Title:     fmt.Sprintf("Video requested for %s", title),
				Read:      b.Video.Read,
			})
		}
		if b.FeedbackFinal() && !b.Feedback.Deleted {
			result = append(result, notificationapimodels.NotificationView{
				ID:        fmt.Sprintf("feedback_%s", eval.VacancyID),
				Kind:      notificationapimodels.KindFeedback,
				VacancyID: eval.VacancyID,
				Title:     fmt.Sprintf("Feedback received for %s", title),
				Read:      b.Feedback.Read,
			})
		}
	}
	return result, nil
}

func (i impl) ListCompany(userID string) ([]notificationapimodels.CompanyNotificationView, error) {
	company, err := i.resolveCompany(userID)
	if err != nil {
		return nil, err
	}
	list, err := i.evaluationStore.ListByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	result := []notificationapimodels.CompanyNotificationView{}
	for _, eval := range list {
		name := ""
		if eval.Candidate != nil {
			name = eval.Candidate.FirstName + " " + eval.Candidate.LastName
		}
		cn := eval.Breakdown.CompanyNotifications
		newCandidateDismissed := cn != nil && cn.NewCandidate != nil && cn.NewCandidate.Deleted
		if !newCandidateDismissed {
			result = append(result, notificationapimodels.CompanyNotificationView{
				ID:           fmt.Sprintf("new_candidate_%s", eval.ID),
				Kind:         "new_candidate",
				VacancyID:    eval.VacancyID,
				EvaluationID: eval.ID,
				Title:        fmt.Sprintf("New candidate: %s", name),
			})
		}
		videoReceived := eval.Breakdown.Video != nil && eval.Breakdown.Video.Status == string(models.VideoStatusReceived)
		videoDismissed := cn != nil && cn.VideoReceived != nil && cn.VideoReceived.Deleted
		if videoReceived && !videoDismissed {
			result = append(result, notificationapimodels.CompanyNotificationView{
				ID:           fmt.Sprintf("video_received_%s", eval.ID),
				Kind:         "video_received",
				VacancyID:    eval.VacancyID,
				EvaluationID: eval.ID,
				Title:        fmt.Sprintf("Video received from %s", name),
			})
		}
	}
	return result, nil
}

func (i impl) MarkRead(userID, notificationID string) error {
	candidate, err := i.resolveCandidate(userID)
	if err != nil {
		return err
	}
	kind, vacancyID, err := notificationapimodels.ParseNotificationID(notificationID)
	if err != nil {
		return errors.Wrap(models.ErrInvalidInput, err.Error())
	}
	eval, err := i.evaluationStore.GetByPair(candidate.ID, vacancyID)
	if err != nil {
		return err
	}
	if eval == nil {
		return errors.Wrap(models.ErrNotFound, "application not found")
	}
	breakdown := eval.Breakdown
	markRead(&breakdown, kind)
	return i.evaluationStore.UpdateBreakdown(eval.ID, breakdown)
}

func (i impl) ClearCandidate(userID string) error {
	candidate, err := i.resolveCandidate(userID)
	if err != nil {
		return err
	}
	list, err := i.evaluationStore.ListByCandidate(candidate.ID)
	if err != nil {
		return err
	}
	for _, eval := range list {
		breakdown := eval.Breakdown
		if !clearCandidate(&breakdown) {
			continue
		}
		if err := i.evaluationStore.UpdateBreakdown(eval.ID, breakdown); err != nil {
			return err
		}
	}
	return nil
}

func (i impl) ClearCompany(userID string) error {
	company, err := i.resolveCompany(userID)
	if err != nil {
		return err
	}
	list, err := i.evaluationStore.ListByCompany(company.ID)
	if err != nil {
		return err
	}
	for _, eval := range list {
		breakdown := eval.Breakdown
		// every row is written here, the candidate path skips unchanged rows
		clearCompany(&breakdown)
		if err := i.evaluationStore.UpdateBreakdown(eval.ID, breakdown); err != nil {
			return err
		}
	}
	if len(list) == 0 {
		log.WithField("company_id", company.ID).Debug("no applications to clear")
	}
	return nil
}

func (i impl) resolveCandidate(userID string) (*dbmodels.Candidate, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	candidate, err := i.candidateStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, errors.Wrap(models.ErrNotFound, "candidate profile not found")
	}
	return candidate, nil
}

func (i impl) resolveCompany(userID string) (*dbmodels.Company, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	company, err := i.companyStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.Wrap(models.ErrNotFound, "company profile not found")
	}
	return company, nil
}
