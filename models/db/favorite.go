package dbmodels

type Favorite struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);uniqueIndex:idx_candidate_vacancy_fav"`
	VacancyID   string `gorm:"type:varchar(36);uniqueIndex:idx_candidate_vacancy_fav"`
}
