package accounthandler

import (
	"testing"

	candidatestore "connect-skills-backend/lib/candidate/store"
	companystore "connect-skills-backend/lib/company/store"
	evaluationstore "connect-skills-backend/lib/evaluation/store"
	favoritestore "connect-skills-backend/lib/favorite/store"
	filestore "connect-skills-backend/lib/file-storage/store"
	usersstore "connect-skills-backend/lib/users/store"
	vacancystore "connect-skills-backend/lib/vacancy/store"
	"connect-skills-backend/models"
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type callLog struct {
	calls []string
}

func (l *callLog) add(name string) {
	l.calls = append(l.calls, name)
}

type fakeUsers struct {
	usersstore.Provider
	log  *callLog
	user *dbmodels.User
}

func (f fakeUsers) GetByID(userID string) (*dbmodels.User, error) {
	return f.user, nil
}

func (f fakeUsers) Delete(userID string) error {
	f.log.add("users.Delete")
	return nil
}

type fakeCandidates struct {
	candidatestore.Provider
	log       *callLog
	candidate *dbmodels.Candidate
}

func (f fakeCandidates) GetByUserID(userID string) (*dbmodels.Candidate, error) {
	return f.candidate, nil
}

func (f fakeCandidates) DeleteInterestAreas(candidateID string) error {
	f.log.add("candidates.DeleteInterestAreas")
	return nil
}

func (f fakeCandidates) DeleteLinks(candidateID string) error {
	f.log.add("candidates.DeleteLinks")
	return nil
}

func (f fakeCandidates) Delete(candidateID string) error {
	f.log.add("candidates.Delete")
	return nil
}

type fakeCompanies struct {
	companystore.Provider
	log     *callLog
	company *dbmodels.Company
}

func (f fakeCompanies) GetByUserID(userID string) (*dbmodels.Company, error) {
	return f.company, nil
}

func (f fakeCompanies) DeleteLinks(companyID string) error {
	f.log.add("companies.DeleteLinks")
	return nil
}

func (f fakeCompanies) Delete(companyID string) error {
	f.log.add("companies.Delete")
	return nil
}

type fakeVacancies struct {
	vacancystore.Provider
	log        *callLog
	vacancyIDs []string
}

func (f fakeVacancies) ListIDsByCompany(companyID string) ([]string, error) {
	return f.vacancyIDs, nil
}

func (f fakeVacancies) DeleteByCompany(companyID string) error {
	f.log.add("vacancies.DeleteByCompany")
	return nil
}

type fakeEvaluations struct {
	evaluationstore.Provider
	log *callLog
	err error
}

func (f fakeEvaluations) DeleteByCandidate(candidateID string) error {
	f.log.add("evaluations.DeleteByCandidate")
	return f.err
}

func (f fakeEvaluations) DeleteByVacancyIDs(vacancyIDs []string) error {
	f.log.add("evaluations.DeleteByVacancyIDs")
	return f.err
}

type fakeFavorites struct {
	favoritestore.Provider
	log *callLog
}

func (f fakeFavorites) DeleteByCandidate(candidateID string) error {
	f.log.add("favorites.DeleteByCandidate")
	return nil
}

func (f fakeFavorites) DeleteByVacancyIDs(vacancyIDs []string) error {
	f.log.add("favorites.DeleteByVacancyIDs")
	return nil
}

type fakeFiles struct {
	filestore.Provider
	log *callLog
}

func (f fakeFiles) ListByCandidate(candidateID string) ([]dbmodels.FileStorage, error) {
	return []dbmodels.FileStorage{{BaseModel: dbmodels.BaseModel{ID: "file-1"}}}, nil
}

func (f fakeFiles) ListByCompany(companyID string) ([]dbmodels.FileStorage, error) {
	return []dbmodels.FileStorage{{BaseModel: dbmodels.BaseModel{ID: "file-2"}}}, nil
}

func (f fakeFiles) DeleteByCandidate(candidateID string) error {
	f.log.add("files.DeleteByCandidate")
	return nil
}

func (f fakeFiles) DeleteByCompany(companyID string) error {
	f.log.add("files.DeleteByCompany")
	return nil
}

func newFakeStores(l *callLog, user *dbmodels.User) cascadeStores {
	return cascadeStores{
		users:       fakeUsers{log: l, user: user},
		candidates:  fakeCandidates{log: l, candidate: &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "cand-1"}}},
		companies:   fakeCompanies{log: l, company: &dbmodels.Company{BaseModel: dbmodels.BaseModel{ID: "comp-1"}}},
		vacancies:   fakeVacancies{log: l, vacancyIDs: []string{"vac-1", "vac-2"}},
		evaluations: fakeEvaluations{log: l},
		favorites:   fakeFavorites{log: l},
		files:       fakeFiles{log: l},
		deleteTokens: func(userID string) error {
			l.add("verify.DeleteByUser")
			return nil
		},
	}
}

func TestRunCascade(t *testing.T) {
	t.Run("candidate cascade order", func(t *testing.T) {
		l := &callLog{}
		user := &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: "user-1"}, Role: models.CandidateRole}
		fileIDs, err := runCascade(newFakeStores(l, user), "user-1")
		require.NoError(t, err)
		require.Equal(t, []string{"file-1"}, fileIDs)
		require.Equal(t, []string{
			"candidates.DeleteInterestAreas",
			"files.DeleteByCandidate",
			"candidates.DeleteLinks",
			"favorites.DeleteByCandidate",
			"evaluations.DeleteByCandidate",
			"candidates.Delete",
			"verify.DeleteByUser",
			"users.Delete",
		}, l.calls)
	})

	t.Run("company cascade order", func(t *testing.T) {
		l := &callLog{}
		user := &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: "user-2"}, Role: models.CompanyRole}
		fileIDs, err := runCascade(newFakeStores(l, user), "user-2")
		require.NoError(t, err)
		require.Equal(t, []string{"file-2"}, fileIDs)
		require.Equal(t, []string{
			"evaluations.DeleteByVacancyIDs",
			"favorites.DeleteByVacancyIDs",
			"vacancies.DeleteByCompany",
			"files.DeleteByCompany",
			"companies.DeleteLinks",
			"companies.Delete",
			"verify.DeleteByUser",
			"users.Delete",
		}, l.calls)
	})

	t.Run("unknown user", func(t *testing.T) {
		l := &callLog{}
		_, err := runCascade(newFakeStores(l, nil), "missing")
		require.ErrorIs(t, err, models.ErrNotFound)
		require.Empty(t, l.calls)
	})

	t.Run("child delete failure aborts before user delete", func(t *testing.T) {
		l := &callLog{}
		user := &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: "user-3"}, Role: models.CandidateRole}
		s := newFakeStores(l, user)
		s.evaluations = fakeEvaluations{log: l, err: errors.New("db down")}
		_, err := runCascade(s, "user-3")
		require.Error(t, err)
		require.NotContains(t, l.calls, "users.Delete")
	})

	t.Run("verification token failure is ignored", func(t *testing.T) {
		l := &callLog{}
		user := &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: "user-4"}, Role: models.CandidateRole}
		s := newFakeStores(l, user)
		s.deleteTokens = func(userID string) error {
			l.add("verify.DeleteByUser")
			return errors.New("table missing")
		}
		_, err := runCascade(s, "user-4")
		require.NoError(t, err)
		require.Contains(t, l.calls, "users.Delete")
	})
}
