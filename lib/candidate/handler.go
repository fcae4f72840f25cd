package candidatehandler

import (
	"connect-skills-backend/db"
	candidatestore "connect-skills-backend/lib/candidate/store"
	"connect-skills-backend/models"
	candidateapimodels "connect-skills-backend/models/api/candidate"
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByUserID(userID string) (*candidateapimodels.CandidateView, error)
	Update(userID string, data candidateapimodels.CandidateData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	candidateStore candidatestore.Provider
}

func (i impl) GetByUserID(userID string) (*candidateapimodels.CandidateView, error) {
	candidate, err := i.candidateStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, errors.Wrap(models.ErrNotFound, "candidate profile not found")
	}
	areas, err := i.candidateStore.ListInterestAreas(candidate.ID)
	if err != nil {
		return nil, err
	}
	links, err := i.candidateStore.ListLinks(candidate.ID)
	if err != nil {
		return nil, err
	}
	view := candidate.ToModel(areas, links)
	return &view, nil
}

func (i impl) Update(userID string, data candidateapimodels.CandidateData) error {
	candidate, err := i.candidateStore.GetByUserID(userID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return errors.Wrap(models.ErrNotFound, "candidate profile not found")
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		candidateStore := candidatestore.NewInstance(tx)
		updMap := map[string]interface{}{
			"first_name": data.FirstName,
			"last_name":  data.LastName,
			"phone":      data.Phone,
			"city":       data.City,
			"about":      data.About,
			"birth_date": data.BirthDate,
		}
		if err := candidateStore.Update(candidate.ID, updMap); err != nil {
			return errors.Wrap(err, "failed to update candidate profile")
		}
		if err := candidateStore.ReplaceInterestAreas(candidate.ID, data.InterestAreas); err != nil {
			return errors.Wrap(err, "failed to update interest areas")
		}
		links := make([]dbmodels.CandidateLink, 0, len(data.Links))
		for _, link := range data.Links {
			links = append(links, dbmodels.CandidateLink{
				Name: link.Name,
				Url:  link.Url,
			})
		}
		if err := candidateStore.ReplaceLinks(candidate.ID, links); err != nil {
			return errors.Wrap(err, "failed to update links")
		}
		return nil
	})
}
