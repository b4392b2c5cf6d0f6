// Package auth implements the admin capability check for the catalog.
//
// The check is an injected predicate: handlers ask an Authorizer whether
// a request may perform admin operations and never compare secrets
// themselves, so the mechanism (bare token, hashed token, session) can
// be swapped without touching the handler layer.
package auth

import (
	"crypto/subtle"
	"log"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/openshelf/catalog/internal/config"
)

// AdminQueryParam is the query parameter carrying the shared admin secret.
const AdminQueryParam = "admin"

// Authorizer decides whether a request may perform admin operations.
type Authorizer interface {
	Authorize(c *gin.Context) bool
}

// TokenAuthorizer authorizes requests whose admin query parameter
// matches the configured shared secret.
type TokenAuthorizer struct {
	token  string
	hashed bool
}

// NewTokenAuthorizer creates the query-parameter token check.
func NewTokenAuthorizer(cfg config.Auth) *TokenAuthorizer {
	return &TokenAuthorizer{
		token:  cfg.AdminToken,
		hashed: cfg.AdminTokenHashed,
	}
}

func (a *TokenAuthorizer) Authorize(c *gin.Context) bool {
	return a.Verify(c.Query(AdminQueryParam))
}

// Verify checks a presented token against the configured secret.
// An unconfigured secret never authorizes anyone, not even a caller
// presenting an empty value.
func (a *TokenAuthorizer) Verify(presented string) bool {
	if a.token == "" || presented == "" {
		return false
	}
	if a.hashed {
		return bcrypt.CompareHashAndPassword([]byte(a.token), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.token), []byte(presented)) == 1
}

// HashAdminToken produces a bcrypt hash suitable for ADMIN_TOKEN when
// ADMIN_TOKEN_HASHED is enabled.
func HashAdminToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SessionAuthorizer layers a server-side session over the token check:
// a request that authorizes via the query parameter marks its session as
// admin, so later requests from the same browser keep admin access
// without carrying the secret in every URL.
type SessionAuthorizer struct {
	tokens   *TokenAuthorizer
	sessions *SessionManager
}

// NewSessionAuthorizer wraps a token authorizer with session persistence.
func NewSessionAuthorizer(tokens *TokenAuthorizer, sessions *SessionManager) *SessionAuthorizer {
	return &SessionAuthorizer{tokens: tokens, sessions: sessions}
}

func (a *SessionAuthorizer) Authorize(c *gin.Context) bool {
	if a.tokens.Authorize(c) {
		if err := a.sessions.MarkAdmin(c.Request); err != nil {
			log.Printf("Failed to persist admin session: %v", err)
		}
		return true
	}
	return a.sessions.IsAdmin(c.Request)
}
