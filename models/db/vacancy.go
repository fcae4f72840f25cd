package dbmodels

import (
	vacancyapimodels "connect-skills-backend/models/api/vacancy"
)

type Vacancy struct {
	BaseModel
	CompanyID    string   `gorm:"type:varchar(36);index"`
	Company      *Company `gorm:"foreignKey:CompanyID"`
	Title        string   `gorm:"type:varchar(255)"`
	Description  string
	Area         string `gorm:"type:varchar(255);index"`
	Modality     string `gorm:"type:varchar(100)"` // on_site/remote/hybrid
	Requirements string
	Published    bool `gorm:"index"`
}

func (v Vacancy) ToModel() vacancyapimodels.VacancyView {
	view := vacancyapimodels.VacancyView{
		ID:           v.ID,
		CompanyID:    v.CompanyID,
		Title:        v.Title,
		Description:  v.Description,
		Area:         v.Area,
		Modality:     v.Modality,
		Requirements: v.Requirements,
		Published:    v.Published,
		CreatedAt:    v.CreatedAt,
	}
	if v.Company != nil {
		view.CompanyName = v.Company.Name
	}
	return view
}
