package vacancystore

import (
	vacancyapimodels "connect-skills-backend/models/api/vacancy"
	dbmodels "connect-skills-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (string, error)
	Update(vacancyID string, updMap map[string]interface{}) error
	Delete(vacancyID string) error
	DeleteByCompany(companyID string) error
	GetByID(vacancyID string) (rec *dbmodels.Vacancy, err error)
	ListByCompany(companyID string) ([]dbmodels.Vacancy, error)
	ListIDsByCompany(companyID string) ([]string, error)
	ListPublished(filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(vacancyID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", vacancyID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(vacancyID string) error {
	return i.db.
		Where("id = ?", vacancyID).
		Delete(&dbmodels.Vacancy{}).
		Error
}

func (i impl) DeleteByCompany(companyID string) error {
	return i.db.
		Where("company_id = ?", companyID).
		Delete(&dbmodels.Vacancy{}).
		Error
}

func (i impl) GetByID(vacancyID string) (rec *dbmodels.Vacancy, err error) {
	err = i.db.Model(dbmodels.Vacancy{}).
		Where("id = ?", vacancyID).
		Preload(clause.Associations).
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

func (i impl) ListByCompany(companyID string) (list []dbmodels.Vacancy, err error) {
	err = i.db.
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListIDsByCompany(companyID string) (ids []string, err error) {
	err = i.db.Model(dbmodels.Vacancy{}).
		Where("company_id = ?", companyID).
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) ListPublished(filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Vacancy{}).
		Where("published = ?", true)
	if filter.Area != "" {
		tx = tx.Where("area = ?", filter.Area)
	}
	if filter.Modality != "" {
		tx = tx.Where("modality = ?", filter.Modality)
	}
	if filter.Search != "" {
		tx = tx.Where("LOWER(title || ' ' || description) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.
		Preload(clause.Associations).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
