package dbmodels

import filesapimodels "connect-skills-backend/models/api/files"

type FileStorage struct {
	BaseModel
	Name        string
	CandidateID string `gorm:"type:varchar(36);index"`
	CompanyID   string `gorm:"type:varchar(36);index"`
	VacancyID   string `gorm:"type:varchar(36);index"`
	Type        FileType
	ContentType string
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		CandidateID: f.CandidateID,
		CompanyID:   f.CompanyID,
		ContentType: f.ContentType,
	}
}

type FileType string

const (
	CandidateResume      FileType = "candidate_resume"
	CandidatePhoto       FileType = "candidate_photo"
	CandidateAnswerVideo FileType = "candidate_answer_video"
	CompanyLogo          FileType = "company_logo"
)

type UploadFileInfo struct {
	CandidateID string
	CompanyID   string
	VacancyID   string
	FileName    string
	FileType    FileType
	ContentType string
}
