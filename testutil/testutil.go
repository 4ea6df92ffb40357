// Package testutil holds helpers shared by the package tests
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Govind-619/CorpSite/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with every table migrated
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

// TestRequest represents a test HTTP request
type TestRequest struct {
	Method string
	Path   string
	// Body is JSON encoded unless it is already a []byte or string
	Body    interface{}
	Headers map[string]string
}

// TestResponse represents a test HTTP response
type TestResponse struct {
	StatusCode int
	Headers    http.Header
	Raw        []byte
	// Body is set when the response is JSON
	Body map[string]interface{}
}

// MakeTestRequest runs req against router
func MakeTestRequest(t *testing.T, router http.Handler, req TestRequest) TestResponse {
	t.Helper()

	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case []byte:
		body = b
	case string:
		body = []byte(b)
	default:
		var err error
		body, err = json.Marshal(b)
		require.NoError(t, err, "marshal request body")
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	resp := TestResponse{
		StatusCode: w.Code,
		Headers:    w.Header(),
		Raw:        w.Body.Bytes(),
	}
	if w.Body.Len() > 0 && json.Valid(resp.Raw) {
		require.NoError(t, json.Unmarshal(resp.Raw, &resp.Body))
	}
	return resp
}

// AssertResponse checks the status code and, when given, the subset of top level fields
func AssertResponse(t *testing.T, response TestResponse, expectedStatusCode int, expectedFields map[string]interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatusCode, response.StatusCode, string(response.Raw))
	for key, want := range expectedFields {
		assert.Equal(t, want, response.Body[key], "field %q", key)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
}
