package vacancyapimodels

import (
	"time"

	apimodels "connect-skills-backend/models/api"

	"github.com/pkg/errors"
)

type VacancyView struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	CompanyName  string    `json:"company_name,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Area         string    `json:"area"`
	Modality     string    `json:"modality"`
	Requirements string    `json:"requirements"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
}

type VacancyData struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Area         string `json:"area"`
	Modality     string `json:"modality"`
	Requirements string `json:"requirements"`
}

func (d VacancyData) Validate() error {
	if d.Title == "" {
		return errors.New("vacancy title is required")
	}
	if d.Area == "" {
		return errors.New("vacancy area is required")
	}
	return nil
}

type VacancyFilter struct {
	apimodels.Pagination
	Search   string `json:"search"`
	Area     string `json:"area"`
	Modality string `json:"modality"`
}

func (f VacancyFilter) Validate() error {
	return nil
}
