package evaluationhandler

import (
	"bytes"
	"context"
	"time"

	"connect-skills-backend/db"
	candidatestore "connect-skills-backend/lib/candidate/store"
	companystore "connect-skills-backend/lib/company/store"
	evaluationstore "connect-skills-backend/lib/evaluation/store"
	xlsexport "connect-skills-backend/lib/export/xls"
	filestorage "connect-skills-backend/lib/file-storage"
	vacancystore "connect-skills-backend/lib/vacancy/store"
	connectionhub "connect-skills-backend/lib/ws/hub/connection-hub"
	"connect-skills-backend/models"
	applicationapimodels "connect-skills-backend/models/api/application"
	dbmodels "connect-skills-backend/models/db"
	wsmodels "connect-skills-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Apply(userID, vacancyID string) (string, error)
	ListOwn(userID string) ([]applicationapimodels.ApplicationView, error)
	ListByVacancy(userID, vacancyID string) ([]applicationapimodels.ApplicationView, error)
	ExportByVacancy(userID, vacancyID string) (*bytes.Buffer, error)
	SetScore(userID, evaluationID string, score int) error
	RequestVideo(userID, evaluationID string) error
	LeaveFeedback(userID, evaluationID string, status models.FeedbackStatus) error
	SubmitVideo(ctx context.Context, userID, vacancyID string, file []byte, fileName, contentType string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		candidateStore:  candidatestore.NewInstance(db.DB),
		companyStore:    companystore.NewInstance(db.DB),
		vacancyStore:    vacancystore.NewInstance(db.DB),
		evaluationStore: evaluationstore.NewInstance(db.DB),
	}
}

type impl struct {
	candidateStore  candidatestore.Provider
	companyStore    companystore.Provider
	vacancyStore    vacancystore.Provider
	evaluationStore evaluationstore.Provider
}

func (i impl) Apply(userID, vacancyID string) (string, error) {
	candidate, err := i.resolveCandidate(userID)
	if err != nil {
		return "", err
	}
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return "", err
	}
	if vacancy == nil || !vacancy.Published {
		return "", errors.Wrap(models.ErrNotFound, "vacancy not found")
	}
	exist, err := i.evaluationStore.GetByPair(candidate.ID, vacancyID)
	if err != nil {
		return "", err
	}
	if exist != nil {
		return "", errors.Wrap(models.ErrAlreadyExists, "already applied to this vacancy")
	}
	rec := dbmodels.Evaluation{
		CandidateID: candidate.ID,
		VacancyID:   vacancyID,
	}
	id, err := i.evaluationStore.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create application")
	}
	log.WithField("evaluation_id", id).WithField("vacancy_id", vacancyID).Info("candidate applied")
	return id, nil
}

func (i impl) ListOwn(userID string) ([]applicationapimodels.ApplicationView, error) {
	candidate, err := i.resolveCandidate(userID)
	if err != nil {
		return nil, err
	}
	list, err := i.evaluationStore.ListByCandidate(candidate.ID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) ListByVacancy(userID, vacancyID string) ([]applicationapimodels.ApplicationView, error) {
	company, err := i.resolveCompany(userID)
	if err != nil {
		return nil, err
	}
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil || vacancy.CompanyID != company.ID {
		return nil, errors.Wrap(models.ErrNotFound, "vacancy not found")
	}
	list, err := i.evaluationStore.ListByVacancy(vacancyID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) ExportByVacancy(userID, vacancyID string) (*bytes.Buffer, error) {
	company, err := i.resolveCompany(userID)
	if err != nil {
		return nil, err
	}
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil || vacancy.CompanyID != company.ID {
		return nil, errors.Wrap(models.ErrNotFound, "vacancy not found")
	}
	list, err := i.evaluationStore.ListByVacancy(vacancyID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportApplicationList(list)
}

func (i impl) SetScore(userID, evaluationID string, score int) error {
	eval, err := i.resolveCompanyOwned(userID, evaluationID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"score": score,
	}
	return i.evaluationStore.Update(eval.ID, updMap)
}

func (i impl) RequestVideo(userID, evaluationID string) error {
	eval, err := i.resolveCompanyOwned(userID, evaluationID)
	if err != nil {
		return err
	}
	breakdown := eval.Breakdown
	breakdown.EnsureVideo().Status = string(models.VideoStatusRequested)
	err = i.evaluationStore.UpdateBreakdown(eval.ID, breakdown)
	if err != nil {
		return err
	}
	i.notifyCandidate(eval, "video_request", "The company requested a video answer")
	return nil
}

func (i impl) LeaveFeedback(userID, evaluationID string, status models.FeedbackStatus) error {
	eval, err := i.resolveCompanyOwned(userID, evaluationID)
	if err != nil {
		return err
	}
	breakdown := eval.Breakdown
	breakdown.EnsureFeedback().Status = string(status)
	err = i.evaluationStore.UpdateBreakdown(eval.ID, breakdown)
	if err != nil {
		return err
	}
	i.notifyCandidate(eval, "feedback", "The company left feedback on your application")
	return nil
}

func (i impl) SubmitVideo(ctx context.Context, userID, vacancyID string, file []byte, fileName, contentType string) error {
	candidate, err := i.resolveCandidate(userID)
	if err != nil {
		return err
	}
	eval, err := i.evaluationStore.GetByPair(candidate.ID, vacancyID)
	if err != nil {
		return err
	}
	if eval == nil {
		return errors.Wrap(models.ErrNotFound, "application not found")
	}
	if !eval.Breakdown.VideoRequested() {
		return errors.Wrap(models.ErrInvalidInput, "video was not requested")
	}
	err = filestorage.Instance.UploadAnswerVideo(ctx, candidate.ID, vacancyID, file, fileName, contentType)
	if err != nil {
		return errors.Wrap(err, "failed to store video")
	}
	breakdown := eval.Breakdown
	breakdown.EnsureVideo().Status = string(models.VideoStatusReceived)
	// a fresh video makes the company-side notification visible again
	breakdown.EnsureCompanyNotifications().EnsureVideoReceived().Deleted = false
	return i.evaluationStore.UpdateBreakdown(eval.ID, breakdown)
}

func (i impl) notifyCandidate(eval *dbmodels.Evaluation, code, msg string) {
	if eval.Candidate == nil {
		return
	}
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		ToUserID: eval.Candidate.UserID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
		Code:     code,
		Msg:      msg,
	})
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

func (i impl) resolveCompanyOwned(userID, evaluationID string) (*dbmodels.Evaluation, error) {
	company, err := i.resolveCompany(userID)
	if err != nil {
		return nil, err
	}
	eval, err := i.evaluationStore.GetByID(evaluationID)
	if err != nil {
		return nil, err
	}
	if eval == nil || eval.Vacancy == nil || eval.Vacancy.CompanyID != company.ID {
		return nil, errors.Wrap(models.ErrNotFound, "application not found")
	}
	return eval, nil
}
