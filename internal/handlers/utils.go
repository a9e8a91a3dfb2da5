package handlers

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// getActor returns the acting user recorded in audit entries. The upstream
// proxy authenticates treasurers and forwards the identity in X-Actor.
func getActor(c echo.Context) string {
	actor := strings.TrimSpace(c.Request().Header.Get("X-Actor"))
	if actor == "" {
		return "anonymous"
	}
	return actor
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getPagination reads offset/limit query parameters with bounds applied
func getPagination(c echo.Context) (int, int) {
	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	limit := getIntParam(c, "limit", defaultPageSize)
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return offset, limit
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
