package authhandler

import (
	"connect-skills-backend/config"
	"connect-skills-backend/db"
	candidatestore "connect-skills-backend/lib/candidate/store"
	companystore "connect-skills-backend/lib/company/store"
	emailverify "connect-skills-backend/lib/email-verify"
	usersstore "connect-skills-backend/lib/users/store"
	authutils "connect-skills-backend/lib/utils/auth-utils"
	"connect-skills-backend/models"
	authapimodels "connect-skills-backend/models/api/auth"
	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Provider interface {
	Signup(data authapimodels.SignupRequest) error
	Login(email, password string) (token string, err error)
	Me(userID string) (*authapimodels.SessionResponse, error)
	VerifyEmail(code string) error
	ResendVerification(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore:  usersstore.NewInstance(db.DB),
		emailVerify: emailverify.NewInstance(config.Conf.Smtp.EmailSendVerification),
	}
}

type impl struct {
	usersStore  usersstore.Provider
	emailVerify emailverify.Provider
}

func (i impl) Signup(data authapimodels.SignupRequest) error {
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return err
	}
	if exist {
		return errors.Wrap(models.ErrAlreadyExists, "email is already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "password hashing failed")
	}
	userID := ""
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		userStore := usersstore.NewInstance(tx)
		rec := dbmodels.User{
			Email:        data.Email,
			PasswordHash: string(hash),
			Role:         data.Role,
		}
		userID, err = userStore.Create(rec)
		if err != nil {
			return err
		}
		switch data.Role {
		case models.CandidateRole:
			candidateStore := candidatestore.NewInstance(tx)
			_, err = candidateStore.Create(dbmodels.Candidate{
				UserID:    userID,
				FirstName: data.FirstName,
				LastName:  data.LastName,
			})
			return err
		case models.CompanyRole:
			companyStore := companystore.NewInstance(tx)
			_, err = companyStore.Create(dbmodels.Company{
				UserID: userID,
				Name:   data.Company,
			})
			return err
		}
		return errors.Wrap(models.ErrInvalidInput, "unknown role")
	})
	if err != nil {
		return err
	}
	err = i.emailVerify.SendVerifyCode(userID, data.Email)
	if err != nil {
		// the account exists, verification can be re-sent later
		log.WithError(err).WithField("user_id", userID).Error("failed to send verification email")
	}
	return nil
}

func (i impl) Login(email, password string) (string, error) {
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.Wrap(models.ErrUnauthenticated, "unknown email")
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return "", errors.Wrap(models.ErrUnauthenticated, "wrong password")
	}
	return authutils.GetToken(user.ID, user.Email, user.Role)
}

func (i impl) Me(userID string) (*authapimodels.SessionResponse, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Wrap(models.ErrNotFound, "user not found")
	}
	return &authapimodels.SessionResponse{
		UserID:          user.ID,
		Email:           user.Email,
		Role:            user.Role,
		IsEmailVerified: user.IsEmailVerified,
	}, nil
}

func (i impl) VerifyEmail(code string) error {
	return i.emailVerify.VerifyCode(code)
}

func (i impl) ResendVerification(userID string) error {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.Wrap(models.ErrNotFound, "user not found")
	}
	if user.IsEmailVerified {
		return errors.Wrap(models.ErrInvalidInput, "email is already verified")
	}
	return i.emailVerify.SendVerifyCode(user.ID, user.Email)
}
