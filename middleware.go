package sitemeta

import "github.com/labstack/echo/v4"

const contextKey = "sitemeta"

// Middleware makes s available to downstream Echo handlers via FromContext.
func Middleware(s *Site) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(contextKey, s)
			return next(c)
		}
	}
}

// FromContext returns the Site stored by Middleware.
func FromContext(c echo.Context) (*Site, bool) {
	s, ok := c.Get(contextKey).(*Site)
	return s, ok && s != nil
}
