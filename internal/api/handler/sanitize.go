package handler

import (
	"html"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag; it is safe for concurrent use.
var strictPolicy = bluemonday.StrictPolicy()

const maxSanitizePasses = 8

// plainText removes markup from user supplied text. Entities are decoded
// between passes so markup smuggled in as "&lt;b&gt;" is stripped too, and
// plain entities such as "Tom &amp; Jerry" come back as "Tom & Jerry".
func plainText(s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(strictPolicy.Sanitize(s))
		if next == s {
			return strings.TrimSpace(next)
		}
		s = next
	}
	// still changing: keep the escaped form, which carries no live markup
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

func plainTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := plainText(*s)
	return &v
}

// errBlankName is returned when a name holds nothing but markup or spaces.
var errBlankName = echo.NewHTTPError(http.StatusUnprocessableEntity, "name must not be blank")

// cleanName sanitizes an optional name and rejects one left empty.
func cleanName(s *string) (*string, error) {
	v := plainTextPtr(s)
	if v != nil && *v == "" {
		return nil, errBlankName
	}
	return v, nil
}
