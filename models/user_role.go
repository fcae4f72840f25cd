package models

type UserRole string

const (
	CandidateRole UserRole = "CANDIDATE"
	CompanyRole   UserRole = "COMPANY"
)

var roleHumanName = map[UserRole]string{
	CandidateRole: "Candidate",
	CompanyRole:   "Company",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsCandidate() bool {
	return r == CandidateRole
}

func (r UserRole) IsCompany() bool {
	return r == CompanyRole
}
