package authapimodels

import (
	"strings"

	"connect-skills-backend/models"

	"github.com/pkg/errors"
)

type SignupRequest struct {
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Role      models.UserRole `json:"role"` // CANDIDATE/COMPANY
	FirstName string          `json:"first_name,omitempty"`
	LastName  string          `json:"last_name,omitempty"`
	Company   string          `json:"company,omitempty"`
}

func (r SignupRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return errors.New("invalid email")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	switch r.Role {
	case models.CandidateRole:
		if r.FirstName == "" {
			return errors.New("first name is required")
		}
	case models.CompanyRole:
		if r.Company == "" {
			return errors.New("company name is required")
		}
	default:
		return errors.New("unknown role")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type SessionResponse struct {
	UserID          string          `json:"user_id"`
	Email           string          `json:"email"`
	Role            models.UserRole `json:"role"`
	IsEmailVerified bool            `json:"is_email_verified"`
}
