package dbmodels

import (
	companyapimodels "connect-skills-backend/models/api/company"
)

type Company struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);uniqueIndex"`
	Name        string `gorm:"type:varchar(255)"`
	Description string
	Site        string `gorm:"type:varchar(1024)"`
}

func (c Company) ToModel(links []CompanyLink) companyapimodels.CompanyView {
	view := companyapimodels.CompanyView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Site:        c.Site,
	}
	for _, link := range links {
		view.Links = append(view.Links, companyapimodels.LinkView{
			ID:   link.ID,
			Name: link.Name,
			Url:  link.Url,
		})
	}
	return view
}

type CompanyLink struct {
	BaseModel
	CompanyID string `gorm:"type:varchar(36);index"`
	Name      string `gorm:"type:varchar(255)"`
	Url       string `gorm:"type:varchar(1024)"`
}
