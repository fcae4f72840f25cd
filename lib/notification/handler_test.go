package notificationhandler

import (
	"testing"

	candidatestore "connect-skills-backend/lib/candidate/store"
	companystore "connect-skills-backend/lib/company/store"
	evaluationstore "connect-skills-backend/lib/evaluation/store"
	"connect-skills-backend/models"
	dbmodels "connect-skills-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeCandidateStore struct {
	candidatestore.Provider
}

func (f fakeCandidateStore) GetByUserID(userID string) (*dbmodels.Candidate, error) {
	return &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "cand-1"}}, nil
}

type fakeCompanyStore struct {
	companystore.Provider
}

func (f fakeCompanyStore) GetByUserID(userID string) (*dbmodels.Company, error) {
	return &dbmodels.Company{BaseModel: dbmodels.BaseModel{ID: "comp-1"}}, nil
}

type fakeEvaluationStore struct {
	evaluationstore.Provider
	list    []dbmodels.Evaluation
	updated map[string]dbmodels.Breakdown
}

func (f *fakeEvaluationStore) ListByCandidate(candidateID string) ([]dbmodels.Evaluation, error) {
	return f.list, nil
}

func (f *fakeEvaluationStore) ListByCompany(companyID string) ([]dbmodels.Evaluation, error) {
	return f.list, nil
}

func (f *fakeEvaluationStore) GetByPair(candidateID, vacancyID string) (*dbmodels.Evaluation, error) {
	for idx := range f.list {
		if f.list[idx].VacancyID == vacancyID {
			return &f.list[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeEvaluationStore) UpdateBreakdown(evaluationID string, breakdown dbmodels.Breakdown) error {
	f.updated[evaluationID] = breakdown
	return nil
}

func newTestHandler(list []dbmodels.Evaluation) (impl, *fakeEvaluationStore) {
	evals := &fakeEvaluationStore{list: list, updated: map[string]dbmodels.Breakdown{}}
	h := impl{
		candidateStore:  fakeCandidateStore{},
		companyStore:    fakeCompanyStore{},
		evaluationStore: evals,
	}
	return h, evals
}

func evalRow(id, vacancyID string, b dbmodels.Breakdown) dbmodels.Evaluation {
	return dbmodels.Evaluation{
		BaseModel:   dbmodels.BaseModel{ID: id},
		CandidateID: "cand-1",
		VacancyID:   vacancyID,
		Breakdown:   b,
	}
}

func TestClearCandidateSkipsUnchangedRows(t *testing.T) {
	h, evals := newTestHandler([]dbmodels.Evaluation{
		evalRow("ev-1", "vac-1", dbmodels.Breakdown{
			Video: &dbmodels.NotificationState{Status: string(models.VideoStatusRequested)},
		}),
		evalRow("ev-2", "vac-2", dbmodels.Breakdown{}),
		evalRow("ev-3", "vac-3", dbmodels.Breakdown{
			Feedback: &dbmodels.NotificationState{Status: string(models.FeedbackApproved), Deleted: true},
		}),
	})
	require.NoError(t, h.ClearCandidate("user-1"))
	require.Len(t, evals.updated, 1)
	require.True(t, evals.updated["ev-1"].Video.Deleted)
}

func TestClearCompanyWritesEveryRow(t *testing.T) {
	h, evals := newTestHandler([]dbmodels.Evaluation{
		evalRow("ev-1", "vac-1", dbmodels.Breakdown{}),
		evalRow("ev-2", "vac-2", dbmodels.Breakdown{
			CompanyNotifications: &dbmodels.CompanyNotifications{
				NewCandidate: &dbmodels.DismissFlag{Deleted: true},
			},
		}),
	})
	require.NoError(t, h.ClearCompany("user-1"))
	require.Len(t, evals.updated, 2)
	for _, b := range evals.updated {
		require.True(t, b.CompanyNotifications.NewCandidate.Deleted)
		require.True(t, b.CompanyNotifications.VideoReceived.Deleted)
	}
}

func TestMarkReadHandler(t *testing.T) {
	t.Run("unknown id format", func(t *testing.T) {
		h, _ := newTestHandler(nil)
		err := h.MarkRead("user-1", "garbage")
		require.ErrorIs(t, err, models.ErrInvalidInput)
	})
	t.Run("missing application", func(t *testing.T) {
		h, _ := newTestHandler(nil)
		err := h.MarkRead("user-1", "feedback_vac-404")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
	t.Run("sets the read flag", func(t *testing.T) {
		h, evals := newTestHandler([]dbmodels.Evaluation{
			evalRow("ev-1", "vac-1", dbmodels.Breakdown{
				Video: &dbmodels.NotificationState{Status: string(models.VideoStatusRequested)},
			}),
		})
		require.NoError(t, h.MarkRead("user-1", "video_request_vac-1"))
		require.True(t, evals.updated["ev-1"].Video.Read)
		require.False(t, evals.updated["ev-1"].Video.Deleted)
	})
}

func TestListCandidateSkipsDismissed(t *testing.T) {
	h, _ := newTestHandler([]dbmodels.Evaluation{
		evalRow("ev-1", "vac-1", dbmodels.Breakdown{
			Video:    &dbmodels.NotificationState{Status: string(models.VideoStatusRequested)},
			Feedback: &dbmodels.NotificationState{Status: string(models.FeedbackApproved), Deleted: true},
		}),
	})
	list, err := h.ListCandidate("user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "video_request_vac-1", list[0].ID)
}
