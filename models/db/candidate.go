package dbmodels

import (
	"time"

	candidateapimodels "connect-skills-backend/models/api/candidate"
)

type Candidate struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);uniqueIndex"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(255)"`
	City      string `gorm:"type:varchar(255)"`
	About     string
	BirthDate time.Time
}

func (c Candidate) ToModel(areas []InterestArea, links []CandidateLink) candidateapimodels.CandidateView {
	view := candidateapimodels.CandidateView{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		City:      c.City,
		About:     c.About,
		BirthDate: c.BirthDate,
	}
	for _, area := range areas {
		view.InterestAreas = append(view.InterestAreas, area.Area)
	}
	for _, link := range links {
		view.Links = append(view.Links, candidateapimodels.LinkView{
			ID:   link.ID,
			Name: link.Name,
			Url:  link.Url,
		})
	}
	return view
}

type InterestArea struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`
	Area        string `gorm:"type:varchar(255)"`
}

type CandidateLink struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`
	Name        string `gorm:"type:varchar(255)"`
	Url         string `gorm:"type:varchar(1024)"`
}
