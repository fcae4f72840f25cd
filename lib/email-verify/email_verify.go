package emailverify

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"connect-skills-backend/config"
	"connect-skills-backend/db"
	emailverifystore "connect-skills-backend/lib/email-verify/store"
	"connect-skills-backend/lib/smtp"
	usersstore "connect-skills-backend/lib/users/store"
	dbmodels "connect-skills-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pkg/errors"
)

const daysToExpires = 14
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

type Provider interface {
	SendVerifyCode(userID, email string) error
	VerifyCode(code string) error
}

var Instance Provider

func NewInstance(emailFrom string) Provider {
	return &impl{
		emailFrom: emailFrom,
	}
}

type impl struct {
	emailFrom string
}

// SendVerifyCode issues a fresh one-time code. Prior codes for the user are
// dropped in the same transaction so at most one active code survives a
// resend.
func (i impl) SendVerifyCode(userID, email string) error {
	verifyData := dbmodels.EmailVerify{
		UserID:        userID,
		Email:         email,
		Code:          i.generateCode(),
		DateGenerated: time.Now(),
		DateExpires:   time.Now().Add(time.Hour * 24 * daysToExpires),
	}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		verifyStore := emailverifystore.NewInstance(tx)
		if err := verifyStore.DeleteByUser(userID); err != nil {
			return err
		}
		return verifyStore.Create(verifyData)
	})
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Confirm your email: %s/api/v1/reg/verify/%s", config.Conf.Smtp.DomainForVerifyLink, verifyData.Code)
	err = smtp.Instance.SendEMail(i.emailFrom, email, message, "EMail Confirm")
	if err != nil {
		return err
	}
	return nil
}

func (i impl) VerifyCode(code string) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		verifyStore := emailverifystore.NewInstance(tx)
		userStore := usersstore.NewInstance(tx)

		userID, err := applyCode(code, verifyStore)
		if err != nil {
			return err
		}
		return markVerified(userID, userStore)
	})
	return err
}

func applyCode(code string, verifyStore emailverifystore.Provider) (userID string, err error) {
	verifyData, err := verifyStore.GetByCode(code)
	if err != nil {
		return "", err
	}
	if verifyData == nil {
		return "", errors.New("verification code not found")
	}
	if !verifyData.DateUsed.IsZero() {
		return "", errors.New("verification code already used")
	}
	if verifyData.DateExpires.Before(time.Now()) {
		return "", errors.New("verification code expired")
	}
	logger := log.WithField("email", verifyData.Email)

	updMap := map[string]interface{}{
		"date_used": time.Now(),
	}
	err = verifyStore.UpdateByCode(code, updMap)
	if err != nil {
		logger.WithError(err).Error("email not verified, failed to update EmailVerify record")
		return "", errors.New("failed to apply verification code")
	}
	return verifyData.UserID, nil
}

func markVerified(userID string, userStore usersstore.Provider) error {
	logger := log.WithField("user_id", userID)

	user, err := userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("email not verified, failed to load user")
		return errors.New("failed to load user")
	}
	if user == nil {
		logger.Error("email not verified, user not found")
		return errors.New("user not found")
	}
	updMap := map[string]interface{}{
		"is_email_verified": true,
	}
	err = userStore.Update(user.ID, updMap)
	if err != nil {
		log.
			WithError(err).
			Error("failed to update user verification flag")
		return err
	}
	return nil
}

func (i impl) generateCode() string {
	sb := strings.Builder{}
	sb.Grow(24)
	for i := 0; i < 24; i++ {
		idx := rand.Int63() % int64(len(letterBytes))
		sb.WriteByte(letterBytes[idx])
	}
	return sb.String()
}
