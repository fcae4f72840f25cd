package db

import (
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration failed for User")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailVerify{}); err != nil {
		return errors.Wrap(err, "migration failed for EmailVerify")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration failed for Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.InterestArea{}); err != nil {
		return errors.Wrap(err, "migration failed for InterestArea")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateLink{}); err != nil {
		return errors.Wrap(err, "migration failed for CandidateLink")
	}
	if err := DB.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "migration failed for Company")
	}
	if err := DB.AutoMigrate(&dbmodels.CompanyLink{}); err != nil {
		return errors.Wrap(err, "migration failed for CompanyLink")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "migration failed for FileStorage")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "migration failed for Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.Evaluation{}); err != nil {
		return errors.Wrap(err, "migration failed for Evaluation")
	}
	if err := DB.AutoMigrate(&dbmodels.Favorite{}); err != nil {
		return errors.Wrap(err, "migration failed for Favorite")
	}
	log.Info("migrations finished")
	return nil
}
