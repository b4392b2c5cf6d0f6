package auth

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"

	"github.com/openshelf/catalog/internal/config"
	"github.com/openshelf/catalog/internal/database"
)

// SessionKeyAdmin marks a session as having passed the admin check.
const SessionKeyAdmin = "admin"

// SessionManager wraps scs.SessionManager with catalog-specific methods.
type SessionManager struct {
	*scs.SessionManager
}

// NewSessionManager creates a configured session manager. Sessions are
// persisted in the catalog's SQLite database when that is the store in
// use; otherwise scs's in-memory store backs them.
func NewSessionManager(sqlDB *sql.DB, driver string, cfg config.Auth) (*SessionManager, error) {
	sm := scs.New()

	if driver == database.DriverSQLite && sqlDB != nil {
		_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
		if err != nil {
			return nil, err
		}
		sm.Store = sqlite3store.New(sqlDB)
	} else {
		sm.Store = memstore.New()
	}

	sm.Lifetime = cfg.SessionLifetime
	sm.IdleTimeout = cfg.SessionLifetime / 2

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &SessionManager{SessionManager: sm}, nil
}

// MarkAdmin records a passed admin check in the session. The token is
// renewed to prevent session fixation.
func (sm *SessionManager) MarkAdmin(r *http.Request) error {
	if err := sm.RenewToken(r.Context()); err != nil {
		return err
	}
	sm.Put(r.Context(), SessionKeyAdmin, true)
	return nil
}

// IsAdmin reports whether the request carries an admin session.
func (sm *SessionManager) IsAdmin(r *http.Request) bool {
	return sm.GetBool(r.Context(), SessionKeyAdmin)
}
