package evaluationstore

import (
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Evaluation) (string, error)
	Update(evaluationID string, updMap map[string]interface{}) error
	UpdateBreakdown(evaluationID string, breakdown dbmodels.Breakdown) error
	Delete(evaluationID string) error
	DeleteByCandidate(candidateID string) error
	DeleteByVacancyIDs(vacancyIDs []string) error
	GetByID(evaluationID string) (rec *dbmodels.Evaluation, err error)
	GetByPair(candidateID, vacancyID string) (rec *dbmodels.Evaluation, err error)
	ListByCandidate(candidateID string) ([]dbmodels.Evaluation, error)
	ListByVacancy(vacancyID string) ([]dbmodels.Evaluation, error)
	ListByCompany(companyID string) ([]dbmodels.Evaluation, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Evaluation) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(evaluationID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Evaluation{}).
		Where("id = ?", evaluationID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) UpdateBreakdown(evaluationID string, breakdown dbmodels.Breakdown) error {
	return i.db.
		Model(&dbmodels.Evaluation{}).
		Where("id = ?", evaluationID).
		Update("breakdown", breakdown).
		Error
}

func (i impl) Delete(evaluationID string) error {
	return i.db.
		Where("id = ?", evaluationID).
		Delete(&dbmodels.Evaluation{}).
		Error
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.Evaluation{}).
		Error
}

func (i impl) DeleteByVacancyIDs(vacancyIDs []string) error {
	if len(vacancyIDs) == 0 {
		return nil
	}
	return i.db.
		Where("vacancy_id in ?", vacancyIDs).
		Delete(&dbmodels.Evaluation{}).
		Error
}

func (i impl) GetByID(evaluationID string) (rec *dbmodels.Evaluation, err error) {
	err = i.db.Model(dbmodels.Evaluation{}).
		Where("id = ?", evaluationID).
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

func (i impl) GetByPair(candidateID, vacancyID string) (rec *dbmodels.Evaluation, err error) {
	err = i.db.Model(dbmodels.Evaluation{}).
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

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.Evaluation, err error) {
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Preload("Vacancy").
		Preload("Vacancy.Company").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByVacancy(vacancyID string) (list []dbmodels.Evaluation, err error) {
	err = i.db.
		Where("vacancy_id = ?", vacancyID).
		Preload("Candidate").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCompany(companyID string) (list []dbmodels.Evaluation, err error) {
	err = i.db.
		Where("vacancy_id in (select id from vacancies where company_id = ?)", companyID).
		Preload("Candidate").
		Preload("Vacancy").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
