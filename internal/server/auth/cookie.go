package auth

import (
	"net/http"
	"strings"
	"time"
)

// CookieManager writes and clears the session cookie. All cookies it
// writes share path and security attributes, so a clear always replaces
// whatever Set wrote before.
type CookieManager struct {
	secure   bool
	sameSite http.SameSite
	maxAge   time.Duration
	path     string
	now      func() time.Time
}

// NewCookieManager builds a manager. secure should be true only behind
// HTTPS (production); maxAge should equal the token validity.
func NewCookieManager(secure bool, maxAge time.Duration) *CookieManager {
	return &CookieManager{
		secure:   secure,
		sameSite: http.SameSiteStrictMode,
		maxAge:   maxAge,
		path:     "/",
		now:      time.Now,
	}
}

// Set stores token in the cookie called name.
func (m *CookieManager) Set(w http.ResponseWriter, name, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     m.path,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
		MaxAge:   int(m.maxAge.Seconds()),
		Expires:  m.now().Add(m.maxAge),
	})
}

// Clear overwrites the cookie called name with an empty, already expired
// value. Clearing a cookie that was never set is fine.
func (m *CookieManager) Clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.path,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// Read returns the trimmed cookie value when present and non-empty.
func (m *CookieManager) Read(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(c.Value)
	if value == "" {
		return "", false
	}
	return value, true
}
