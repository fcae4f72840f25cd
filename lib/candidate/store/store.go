package candidatestore

import (
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (string, error)
	Update(candidateID string, updMap map[string]interface{}) error
	Delete(candidateID string) error
	GetByID(candidateID string) (rec *dbmodels.Candidate, err error)
	GetByUserID(userID string) (rec *dbmodels.Candidate, err error)
	ListInterestAreas(candidateID string) ([]dbmodels.InterestArea, error)
	ListLinks(candidateID string) ([]dbmodels.CandidateLink, error)
	ReplaceInterestAreas(candidateID string, areas []string) error
	ReplaceLinks(candidateID string, links []dbmodels.CandidateLink) error
	DeleteInterestAreas(candidateID string) error
	DeleteLinks(candidateID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(candidateID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", candidateID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(candidateID string) error {
	return i.db.
		Where("id = ?", candidateID).
		Delete(&dbmodels.Candidate{}).
		Error
}

func (i impl) GetByID(candidateID string) (rec *dbmodels.Candidate, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
		Where("id = ?", candidateID).
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

func (i impl) GetByUserID(userID string) (rec *dbmodels.Candidate, err error) {
	err = i.db.Model(dbmodels.Candidate{}).
		Where("user_id = ?", userID).
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

func (i impl) ListInterestAreas(candidateID string) (list []dbmodels.InterestArea, err error) {
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListLinks(candidateID string) (list []dbmodels.CandidateLink, err error) {
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ReplaceInterestAreas(candidateID string, areas []string) error {
	err := i.DeleteInterestAreas(candidateID)
	if err != nil {
		return err
	}
	for _, area := range areas {
		rec := dbmodels.InterestArea{
			CandidateID: candidateID,
			Area:        area,
		}
		if err := i.db.Save(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func (i impl) ReplaceLinks(candidateID string, links []dbmodels.CandidateLink) error {
	err := i.DeleteLinks(candidateID)
	if err != nil {
		return err
	}
	for _, link := range links {
		link.CandidateID = candidateID
		if err := i.db.Save(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (i impl) DeleteInterestAreas(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.InterestArea{}).
		Error
}

func (i impl) DeleteLinks(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.CandidateLink{}).
		Error
}
