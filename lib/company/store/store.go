package companystore

import (
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Company) (string, error)
	Update(companyID string, updMap map[string]interface{}) error
	Delete(companyID string) error
	GetByID(companyID string) (rec *dbmodels.Company, err error)
	GetByUserID(userID string) (rec *dbmodels.Company, err error)
	ListLinks(companyID string) ([]dbmodels.CompanyLink, error)
	ReplaceLinks(companyID string, links []dbmodels.CompanyLink) error
	DeleteLinks(companyID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Company) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(companyID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Company{}).
		Where("id = ?", companyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(companyID string) error {
	return i.db.
		Where("id = ?", companyID).
		Delete(&dbmodels.Company{}).
		Error
}

func (i impl) GetByID(companyID string) (rec *dbmodels.Company, err error) {
	err = i.db.Model(dbmodels.Company{}).
		Where("id = ?", companyID).
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

func (i impl) GetByUserID(userID string) (rec *dbmodels.Company, err error) {
	err = i.db.Model(dbmodels.Company{}).
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

func (i impl) ListLinks(companyID string) (list []dbmodels.CompanyLink, err error) {
	err = i.db.
		Where("company_id = ?", companyID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ReplaceLinks(companyID string, links []dbmodels.CompanyLink) error {
	err := i.DeleteLinks(companyID)
	if err != nil {
		return err
	}
	for _, link := range links {
		link.CompanyID = companyID
		if err := i.db.Save(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (i impl) DeleteLinks(companyID string) error {
	return i.db.
		Where("company_id = ?", companyID).
		Delete(&dbmodels.CompanyLink{}).
		Error
}
