package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/petlink/petlink-api/internal/errors"
)

// parseIDParam extracts a numeric :id path parameter. On failure it writes a
// 400 response and returns ok=false.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// parseDateQuery reads an optional date query parameter, accepting RFC 3339
// timestamps or bare dates.
func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
