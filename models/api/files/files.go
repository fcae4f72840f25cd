package filesapimodels

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CandidateID string `json:"candidate_id,omitempty"`
	CompanyID   string `json:"company_id,omitempty"`
	ContentType string `json:"content_type"`
}
