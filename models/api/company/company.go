package companyapimodels

import (
	"github.com/pkg/errors"
)

type CompanyView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Site        string     `json:"site"`
	Links       []LinkView `json:"links"`
}

type LinkView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Url  string `json:"url"`
}

type CompanyData struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Site        string     `json:"site"`
	Links       []LinkData `json:"links"`
}

type LinkData struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

func (d CompanyData) Validate() error {
	if d.Name == "" {
		return errors.New("company name is required")
	}
	return nil
}
