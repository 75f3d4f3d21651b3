package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestGetPaginationArgsDefaults(t *testing.T) {
	args := GetPaginationArgs(newTestContext(""))

	assert.Equal(t, 10, args.Limit)
	assert.Equal(t, 0, args.Skip)
	assert.Equal(t, "created_at_desc", args.Sort)
}

func TestGetPaginationArgsFromQuery(t *testing.T) {
	args := GetPaginationArgs(newTestContext("limit=25&skip=50&sort=created_at_asc"))

	assert.Equal(t, 25, args.Limit)
	assert.Equal(t, 50, args.Skip)
	assert.Equal(t, "created_at_asc", args.Sort)
}

func TestGetLimitArg(t *testing.T) {
	assert.Equal(t, int64(3), GetLimitArg(newTestContext(""), 3))
	assert.Equal(t, int64(7), GetLimitArg(newTestContext("limit=7"), 3))
	assert.Equal(t, int64(3), GetLimitArg(newTestContext("limit=-2"), 3))
	assert.Equal(t, int64(3), GetLimitArg(newTestContext("limit=abc"), 3))
}
