package accounthandler

import (
	"context"

	"connect-skills-backend/db"
	candidatestore "connect-skills-backend/lib/candidate/store"
	companystore "connect-skills-backend/lib/company/store"
	emailverifystore "connect-skills-backend/lib/email-verify/store"
	evaluationstore "connect-skills-backend/lib/evaluation/store"
	favoritestore "connect-skills-backend/lib/favorite/store"
	filestorage "connect-skills-backend/lib/file-storage"
	filestore "connect-skills-backend/lib/file-storage/store"
	usersstore "connect-skills-backend/lib/users/store"
	vacancystore "connect-skills-backend/lib/vacancy/store"
	"connect-skills-backend/models"
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	DeleteAccount(ctx context.Context, userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// cascadeStores bundles every store touched by the cascade, all bound to the
// same transaction.
type cascadeStores struct {
	users       usersstore.Provider
	candidates  candidatestore.Provider
	companies   companystore.Provider
	vacancies   vacancystore.Provider
	evaluations evaluationstore.Provider
	favorites   favoritestore.Provider
	files       filestore.Provider

	// deleteTokens runs in its own savepoint: a SQL failure in there must
	// not abort the surrounding transaction.
	deleteTokens func(userID string) error
}

func newCascadeStores(tx *gorm.DB) cascadeStores {
	return cascadeStores{
		users:       usersstore.NewInstance(tx),
		candidates:  candidatestore.NewInstance(tx),
		companies:   companystore.NewInstance(tx),
		vacancies:   vacancystore.NewInstance(tx),
		evaluations: evaluationstore.NewInstance(tx),
		favorites:   favoritestore.NewInstance(tx),
		files:       filestore.NewInstance(tx),
		deleteTokens: func(userID string) error {
			return tx.Transaction(func(nested *gorm.DB) error {
				return emailverifystore.NewInstance(nested).DeleteByUser(userID)
			})
		},
	}
}

// DeleteAccount irreversibly removes the user and everything the user owns.
// All required steps run in one transaction, any failure rolls the whole
// cascade back.
func (i impl) DeleteAccount(ctx context.Context, userID string) error {
	if userID == "" {
		return models.ErrUnauthenticated
	}
	var fileIDs []string
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		fileIDs, err = runCascade(newCascadeStores(tx), userID)
		return err
	})
	if err != nil {
		return err
	}
	// object storage has no rollback, media objects are removed only once the
	// cascade is committed
	filestorage.Instance.RemoveObjects(ctx, fileIDs)
	return nil
}

// runCascade deletes everything the user owns and reports the ids of stored
// media objects so the caller can clean them up after commit.
func runCascade(s cascadeStores, userID string) (fileIDs []string, err error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return nil, errors.Wrap(models.ErrNotFound, "user not found")
	}
	logger := log.WithField("user_id", userID)

	switch user.Role {
	case models.CandidateRole:
		if fileIDs, err = deleteCandidateData(s, userID); err != nil {
			return nil, err
		}
	case models.CompanyRole:
		if fileIDs, err = deleteCompanyData(s, userID); err != nil {
			return nil, err
		}
	}

	// token cleanup is optional, absence of the verification facility must
	// not block account removal
	if err := s.deleteTokens(userID); err != nil {
		logger.WithError(err).Warn("failed to delete verification tokens")
	}

	if err := s.users.Delete(userID); err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}
	logger.Info("account deleted")
	return fileIDs, nil
}

// deleteCandidateData removes candidate-owned rows, children before the
// candidate row itself.
func deleteCandidateData(s cascadeStores, userID string) ([]string, error) {
	candidate, err := s.candidates.GetByUserID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate profile")
	}
	if candidate == nil {
		return nil, nil
	}
	fileIDs, err := listFileIDs(s.files.ListByCandidate(candidate.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidate files")
	}
	if err := s.candidates.DeleteInterestAreas(candidate.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete interest areas")
	}
	if err := s.files.DeleteByCandidate(candidate.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete candidate files")
	}
	if err := s.candidates.DeleteLinks(candidate.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete candidate links")
	}
	if err := s.favorites.DeleteByCandidate(candidate.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete favorites")
	}
	if err := s.evaluations.DeleteByCandidate(candidate.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete applications")
	}
	if err := s.candidates.Delete(candidate.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete candidate profile")
	}
	return fileIDs, nil
}

// deleteCompanyData removes all vacancies the company owns together with
// their dependents, then the company row.
func deleteCompanyData(s cascadeStores, userID string) ([]string, error) {
	company, err := s.companies.GetByUserID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load company profile")
	}
	if company == nil {
		return nil, nil
	}
	fileIDs, err := listFileIDs(s.files.ListByCompany(company.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list company files")
	}
	vacancyIDs, err := s.vacancies.ListIDsByCompany(company.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list company vacancies")
	}
	if err := s.evaluations.DeleteByVacancyIDs(vacancyIDs); err != nil {
		return nil, errors.Wrap(err, "failed to delete vacancy applications")
	}
	if err := s.favorites.DeleteByVacancyIDs(vacancyIDs); err != nil {
		return nil, errors.Wrap(err, "failed to delete vacancy favorites")
	}
	if err := s.vacancies.DeleteByCompany(company.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete vacancies")
	}
	if err := s.files.DeleteByCompany(company.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete company files")
	}
	if err := s.companies.DeleteLinks(company.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete company links")
	}
	if err := s.companies.Delete(company.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete company profile")
	}
	return fileIDs, nil
}

func listFileIDs(list []dbmodels.FileStorage, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	fileIDs := make([]string, 0, len(list))
	for _, rec := range list {
		fileIDs = append(fileIDs, rec.ID)
	}
	return fileIDs, nil
}
