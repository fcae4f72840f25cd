package candidateapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type CandidateView struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         string     `json:"phone"`
	City          string     `json:"city"`
	About         string     `json:"about"`
	BirthDate     time.Time  `json:"birth_date"`
	InterestAreas []string   `json:"interest_areas"`
	Links         []LinkView `json:"links"`
}

type LinkView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Url  string `json:"url"`
}

type CandidateData struct {
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         string     `json:"phone"`
	City          string     `json:"city"`
	About         string     `json:"about"`
	BirthDate     time.Time  `json:"birth_date"`
	InterestAreas []string   `json:"interest_areas"`
	Links         []LinkData `json:"links"`
}

type LinkData struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

func (d CandidateData) Validate() error {
	if d.FirstName == "" {
		return errors.New("first name is required")
	}
	for _, link := range d.Links {
		if link.Url == "" {
			return errors.New("link url is required")
		}
	}
	return nil
}
