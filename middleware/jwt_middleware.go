package middleware

import (
	"connect-skills-backend/config"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthorizationRequired reads the session token from the session cookie.
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: "cookie:" + config.Conf.Auth.SessionCookie,
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}
