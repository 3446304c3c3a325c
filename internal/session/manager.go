package session

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "msw_session"

// Manager ties a browser to a stored API token. The cookie carries only a
// signed session id (HS256); the bearer token itself stays in the store and
// is re-read on every request.
type Manager struct {
	store  TokenStore
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(store TokenStore, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// Establish stores the API token under a fresh session id and sets the
// signed cookie. Called after a successful login.
func (m *Manager) Establish(c *gin.Context, token string) error {
	sid := uuid.NewString()

	if err := m.store.Save(c.Request.Context(), sid, token, m.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	signed, err := m.sign(sid)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	c.SetCookie(CookieName, signed, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// Token resolves the current request to its stored bearer token. Any
// failure (no cookie, bad signature, expired, unknown sid) is ErrNoSession
// territory; callers treat them all as "not signed in".
func (m *Manager) Token(c *gin.Context) (string, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return "", ErrNoSession
	}

	sid, err := m.parse(raw)
	if err != nil {
		return "", ErrNoSession
	}

	return m.store.Token(c.Request.Context(), sid)
}

// Destroy clears the stored token and the cookie. It never fails the
// request: logout is fire-and-forget.
func (m *Manager) Destroy(c *gin.Context) {
	if raw, err := c.Cookie(CookieName); err == nil {
		if sid, err := m.parse(raw); err == nil {
			_ = m.store.Delete(c.Request.Context(), sid)
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// --------- Cookie signing ---------

func (m *Manager) sign(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(m.ttl).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) parse(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}
