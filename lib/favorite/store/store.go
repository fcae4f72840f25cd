package favoritestore

import (
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Favorite) (string, error)
	Delete(candidateID, vacancyID string) error
	DeleteByCandidate(candidateID string) error
	DeleteByVacancyIDs(vacancyIDs []string) error
	GetByPair(candidateID, vacancyID string) (rec *dbmodels.Favorite, err error)
	ListByCandidate(candidateID string) ([]dbmodels.Favorite, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Favorite) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(candidateID, vacancyID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Where("vacancy_id = ?", vacancyID).
		Delete(&dbmodels.Favorite{}).
		Error
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.Favorite{}).
		Error
}

func (i impl) DeleteByVacancyIDs(vacancyIDs []string) error {
	if len(vacancyIDs) == 0 {
		return nil
	}
	return i.db.
		Where("vacancy_id in ?", vacancyIDs).
		Delete(&dbmodels.Favorite{}).
		Error
}

func (i impl) GetByPair(candidateID, vacancyID string) (rec *dbmodels.Favorite, err error) {
	err = i.db.Model(dbmodels.Favorite{}).
		Where("candidate_id = ?", candidateID).
		Where("vacancy_id = ?", vacancyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.Favorite, err error) {
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
