package companyhandler

import (
	"connect-skills-backend/db"
	companystore "connect-skills-backend/lib/company/store"
	"connect-skills-backend/models"
	companyapimodels "connect-skills-backend/models/api/company"
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByUserID(userID string) (*companyapimodels.CompanyView, error)
	GetByID(companyID string) (*companyapimodels.CompanyView, error)
	Update(userID string, data companyapimodels.CompanyData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		companyStore: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	companyStore companystore.Provider
}

func (i impl) GetByUserID(userID string) (*companyapimodels.CompanyView, error) {
	company, err := i.companyStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.Wrap(models.ErrNotFound, "company profile not found")
	}
	return i.toView(company)
}

func (i impl) GetByID(companyID string) (*companyapimodels.CompanyView, error) {
	company, err := i.companyStore.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.Wrap(models.ErrNotFound, "company not found")
	}
	return i.toView(company)
}

func (i impl) toView(company *dbmodels.Company) (*companyapimodels.CompanyView, error) {
	links, err := i.companyStore.ListLinks(company.ID)
	if err != nil {
		return nil, err
	}
	view := company.ToModel(links)
	return &view, nil
}

func (i impl) Update(userID string, data companyapimodels.CompanyData) error {
	company, err := i.companyStore.GetByUserID(userID)
	if err != nil {
		return err
	}
	if company == nil {
		return errors.Wrap(models.ErrNotFound, "company profile not found")
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		companyStore := companystore.NewInstance(tx)
		updMap := map[string]interface{}{
			"name":        data.Name,
			"description": data.Description,
			"site":        data.Site,
		}
		if err := companyStore.Update(company.ID, updMap); err != nil {
			return errors.Wrap(err, "failed to update company profile")
		}
		links := make([]dbmodels.CompanyLink, 0, len(data.Links))
		for _, link := range data.Links {
			links = append(links, dbmodels.CompanyLink{
				Name: link.Name,
				Url:  link.Url,
			})
		}
		if err := companyStore.ReplaceLinks(company.ID, links); err != nil {
			return errors.Wrap(err, "failed to update links")
		}
		return nil
	})
}
