package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/folio/internal/store"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStore is a store.Store over the cookies of a single request. Values
// set during the request are visible to later reads of the same request.
type CookieStore struct {
	c      *gin.Context
	values map[string]string
}

var _ store.Store = (*CookieStore)(nil)

// NewCookieStore wraps the request and response cookies of c.
func NewCookieStore(c *gin.Context) *CookieStore {
	return &CookieStore{c: c, values: make(map[string]string)}
}

// Get implements store.Store.
func (s *CookieStore) Get(key string) (string, bool, error) {
	if v, ok := s.values[key]; ok {
		return v, true, nil
	}
	v, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", false, nil
	}
	if err != nil {
		return "", false, folioerrors.NewStorageError("cookie", "get", key, err)
	}
	return v, true, nil
}

// Set implements store.Store. The response carries at most one cookie per
// key: a later Set replaces the header written by an earlier one.
func (s *CookieStore) Set(key, value string) error {
	s.values[key] = value
	dropSetCookie(s.c.Writer.Header(), key)
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", false, true)
	return nil
}

func dropSetCookie(h http.Header, key string) {
	prefix := key + "="
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
}
