package filestore

import (
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.FileStorage) (string, error)
	GetByID(fileID string) (*dbmodels.FileStorage, error)
	Find(info dbmodels.UploadFileInfo) (*dbmodels.FileStorage, error)
	ListByCandidate(candidateID string) ([]dbmodels.FileStorage, error)
	ListByCompany(companyID string) ([]dbmodels.FileStorage, error)
	DeleteByCandidate(candidateID string) error
	DeleteByCompany(companyID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FileStorage) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(fileID string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("id = ?", fileID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Find(info dbmodels.UploadFileInfo) (*dbmodels.FileStorage, error) {
	tx := i.db.
		Where("type = ?", info.FileType)
	if info.CandidateID != "" {
		tx = tx.Where("candidate_id = ?", info.CandidateID)
	}
	if info.CompanyID != "" {
		tx = tx.Where("company_id = ?", info.CompanyID)
	}
	if info.VacancyID != "" {
		tx = tx.Where("vacancy_id = ?", info.VacancyID)
	}
	rec := dbmodels.FileStorage{}
	err := tx.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.FileStorage, err error) {
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCompany(companyID string) (list []dbmodels.FileStorage, err error) {
	err = i.db.
		Where("company_id = ?", companyID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.FileStorage{}).
		Error
}

func (i impl) DeleteByCompany(companyID string) error {
	return i.db.
		Where("company_id = ?", companyID).
		Delete(&dbmodels.FileStorage{}).
		Error
}
