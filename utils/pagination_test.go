package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(query string) *Pagination {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/items?"+query, nil)
	return NewPagination(c)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		query       string
		page, limit int
		offset      int
	}{
		{"", 1, 10, 0},
		{"page=3&limit=20", 3, 20, 40},
		{"page=0&limit=-1", 1, 10, 0},
		{"page=x&limit=y", 1, 10, 0},
		{"page=2&limit=1000", 2, MaxPageLimit, MaxPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p := paginationFor(tt.query)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.offset, p.Offset)
		})
	}
}

func TestPaginationSetTotal(t *testing.T) {
	p := paginationFor("limit=10")
	p.SetTotal(0)
	assert.Equal(t, 0, p.LastPage)
	p.SetTotal(10)
	assert.Equal(t, 1, p.LastPage)
	p.SetTotal(11)
	assert.Equal(t, 2, p.LastPage)
}
