package theme

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStorage persists values as cookies on the current request/response.
type CookieStorage struct {
	c *gin.Context
}

// NewCookieStorage binds a storage to one request.
func NewCookieStorage(c *gin.Context) CookieStorage {
	return CookieStorage{c: c}
}

func (s CookieStorage) Get(key string) (string, error) {
	if s.c == nil {
		return "", ErrUnavailable
	}
	v, err := s.c.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return "", nil
	}
	return v, err
}

func (s CookieStorage) Set(key, value string) error {
	if s.c == nil {
		return ErrUnavailable
	}
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, cookieMaxAge, "/", "", false, false)
	return nil
}
