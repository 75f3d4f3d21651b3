package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"brickbase-api-io/api/pkg/util"
)

// GetPaginationArgs extracts pagination parameters from HTTP request
func GetPaginationArgs(c *gin.Context) util.PaginationArgs {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	sort := c.DefaultQuery("sort", "created_at_desc")

	return util.PaginationArgs{
		Limit: limit,
		Skip:  skip,
		Sort:  sort,
	}
}

// GetLimitArg extracts a bare numeric limit query value.
func GetLimitArg(c *gin.Context, fallback int64) int64 {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", ""), 10, 64)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
