package favoritehandler

import (
	"connect-skills-backend/db"
	candidatestore "connect-skills-backend/lib/candidate/store"
	favoritestore "connect-skills-backend/lib/favorite/store"
	vacancystore "connect-skills-backend/lib/vacancy/store"
	"connect-skills-backend/models"
	vacancyapimodels "connect-skills-backend/models/api/vacancy"
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Toggle(userID, vacancyID string) (selected bool, err error)
	List(userID string) ([]vacancyapimodels.VacancyView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		candidateStore: candidatestore.NewInstance(db.DB),
		favoriteStore:  favoritestore.NewInstance(db.DB),
		vacancyStore:   vacancystore.NewInstance(db.DB),
	}
}

type impl struct {
	candidateStore candidatestore.Provider
	favoriteStore  favoritestore.Provider
	vacancyStore   vacancystore.Provider
}

// Toggle adds the vacancy to favorites, a repeated call removes it.
func (i impl) Toggle(userID, vacancyID string) (bool, error) {
	candidate, err := i.resolveCandidate(userID)
	if err != nil {
		return false, err
	}
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return false, err
	}
	if vacancy == nil {
		return false, errors.Wrap(models.ErrNotFound, "vacancy not found")
	}
	exist, err := i.favoriteStore.GetByPair(candidate.ID, vacancyID)
	if err != nil {
		return false, err
	}
	if exist != nil {
		err = i.favoriteStore.Delete(candidate.ID, vacancyID)
		if err != nil {
			return false, err
		}
		return false, nil
	}
	_, err = i.favoriteStore.Create(dbmodels.Favorite{
		CandidateID: candidate.ID,
		VacancyID:   vacancyID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (i impl) List(userID string) ([]vacancyapimodels.VacancyView, error) {
	candidate, err := i.resolveCandidate(userID)
	if err != nil {
		return nil, err
	}
	favorites, err := i.favoriteStore.ListByCandidate(candidate.ID)
	if err != nil {
		return nil, err
	}
	result := make([]vacancyapimodels.VacancyView, 0, len(favorites))
	for _, fav := range favorites {
		vacancy, err := i.vacancyStore.GetByID(fav.VacancyID)
		if err != nil {
			return nil, err
		}
		if vacancy == nil {
			continue
		}
		result = append(result, vacancy.ToModel())
	}
	return result, nil
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
