package vacancyhandler

import (
	"connect-skills-backend/db"
	companystore "connect-skills-backend/lib/company/store"
	vacancystore "connect-skills-backend/lib/vacancy/store"
	"connect-skills-backend/models"
	vacancyapimodels "connect-skills-backend/models/api/vacancy"
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(userID string, data vacancyapimodels.VacancyData) (string, error)
	Update(userID, vacancyID string, data vacancyapimodels.VacancyData) error
	SetPublished(userID, vacancyID string, published bool) error
	Delete(userID, vacancyID string) error
	GetByID(vacancyID string) (*vacancyapimodels.VacancyView, error)
	ListOwn(userID string) ([]vacancyapimodels.VacancyView, error)
	ListPublished(filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		vacancyStore: vacancystore.NewInstance(db.DB),
		companyStore: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	vacancyStore vacancystore.Provider
	companyStore companystore.Provider
}

func (i impl) Create(userID string, data vacancyapimodels.VacancyData) (string, error) {
	company, err := i.resolveCompany(userID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Vacancy{
		CompanyID:    company.ID,
		Title:        data.Title,
		Description:  data.Description,
		Area:         data.Area,
		Modality:     data.Modality,
		Requirements: data.Requirements,
	}
	id, err := i.vacancyStore.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create vacancy")
	}
	log.WithField("vacancy_id", id).WithField("company_id", company.ID).Info("vacancy created")
	return id, nil
}

func (i impl) Update(userID, vacancyID string, data vacancyapimodels.VacancyData) error {
	if _, err := i.resolveOwned(userID, vacancyID); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":        data.Title,
		"description":  data.Description,
		"area":         data.Area,
		"modality":     data.Modality,
		"requirements": data.Requirements,
	}
	return i.vacancyStore.Update(vacancyID, updMap)
}

func (i impl) SetPublished(userID, vacancyID string, published bool) error {
	if _, err := i.resolveOwned(userID, vacancyID); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"published": published,
	}
	return i.vacancyStore.Update(vacancyID, updMap)
}

func (i impl) Delete(userID, vacancyID string) error {
	if _, err := i.resolveOwned(userID, vacancyID); err != nil {
		return err
	}
	return i.vacancyStore.Delete(vacancyID)
}

func (i impl) GetByID(vacancyID string) (*vacancyapimodels.VacancyView, error) {
	rec, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "vacancy not found")
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) ListOwn(userID string) ([]vacancyapimodels.VacancyView, error) {
	company, err := i.resolveCompany(userID)
	if err != nil {
		return nil, err
	}
	list, err := i.vacancyStore.ListByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, nil
}

func (i impl) ListPublished(filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error) {
	list, rowCount, err := i.vacancyStore.ListPublished(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}

func (i impl) resolveCompany(userID string) (*dbmodels.Company, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	company, err := i.companyStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.Wrap(models.ErrNotFound, "company profile not found")
	}
	return company, nil
}

func (i impl) resolveOwned(userID, vacancyID string) (*dbmodels.Vacancy, error) {
	company, err := i.resolveCompany(userID)
	if err != nil {
		return nil, err
	}
	rec, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CompanyID != company.ID {
		return nil, errors.Wrap(models.ErrNotFound, "vacancy not found")
	}
	return rec, nil
}
