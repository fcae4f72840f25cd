package authutils

import (
	"time"

	"connect-skills-backend/config"
	"connect-skills-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func GetToken(userID, email string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  string(role),
		"exp":   time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := GetClaims(ctx)
	userID, _ := claims["sub"].(string)
	return userID
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := GetClaims(ctx)
	role, _ := claims["role"].(string)
	return models.UserRole(role)
}

// SetSessionCookie attaches the signed session token to the response.
func SetSessionCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     config.Conf.Auth.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearSessionCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     config.Conf.Auth.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
