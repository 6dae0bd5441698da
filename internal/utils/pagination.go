package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petlink/petlink-api/internal/constants"
)

// PaginationParams holds the skip/limit window applied after filtering and sorting.
type PaginationParams struct {
	Skip  int
	Limit int
}

// GetPaginationParams extracts and clamps skip/limit query parameters.
func GetPaginationParams(c *gin.Context) PaginationParams {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Skip:  skip,
		Limit: limit,
	}
}
