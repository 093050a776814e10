package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/teologia"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionCookieName is the cookie holding the session ID.
const SessionCookieName = "teologia_session"

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 30 * time.Minute

// sessionEntry guards one user's query state.
type sessionEntry struct {
	mu    sync.Mutex
	state *teologia.Session
}

// SessionStore keeps query state per browser session in memory.
// Idle sessions expire after the TTL.
type SessionStore struct {
	cache *cache.Cache
}

// NewSessionStore creates a store whose entries expire after ttl of inactivity.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{cache: cache.New(ttl, ttl/2)}
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	return s.cache.ItemCount()
}

// lookup returns the entry for the request's session, creating a new
// session and setting its cookie when the request has none or it expired.
func (s *SessionStore) lookup(w http.ResponseWriter, r *http.Request) *sessionEntry {
	if c, err := r.Cookie(SessionCookieName); err == nil {
		if x, found := s.cache.Get(c.Value); found {
			entry := x.(*sessionEntry)
			// Refresh expiration on every use.
			s.cache.SetDefault(c.Value, entry)
			return entry
		}
	}

	id := uuid.NewString()
	entry := &sessionEntry{state: teologia.NewSession()}
	s.cache.SetDefault(id, entry)

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return entry
}
