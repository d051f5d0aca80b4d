package api

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alexmorgan-dev/portfolio-site-backend/errs"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// The admin gate is a single shared secret for a one-operator site, not a
// general auth system: plaintext equality against a configured value, no
// expiry, no rate limiting, no user accounts.

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	password  string
	secret    []byte
}

func newAuthHandler(password string, secret []byte) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		password:  password,
		secret:    secret,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// login compares the submitted password against the configured secret and,
// on a match, issues the session token the client keeps as its durable
// authenticated flag. A failed attempt changes nothing server-side.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if !passwordsMatch(req.Password, h.password) {
			h.logger.Warn().Msg("failed admin login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		token, err := issueAdminToken(h.secret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue session token"))
			return
		}

		h.responder.WriteData(w, loginResponse{Token: token})
	}
}

// logout exists for client symmetry; the session is stateless, so logging
// out is the client discarding its token.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteData(w, map[string]string{
			"message": "logged out",
		})
	}
}

// passwordsMatch compares hashes so the comparison is constant-time even
// for inputs of different lengths.
func passwordsMatch(submitted, configured string) bool {
	submittedSum := sha256.Sum256([]byte(submitted))
	configuredSum := sha256.Sum256([]byte(configured))
	return subtle.ConstantTimeCompare(submittedSum[:], configuredSum[:]) == 1
}

func issueAdminToken(secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin": true,
		"iat":   jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString(secret)
}

func verifyAdminToken(secret []byte, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errs.ErrUnauthorized
	}
	if admin, ok := claims["admin"].(bool); !ok || !admin {
		return errs.ErrUnauthorized
	}
	return nil
}
