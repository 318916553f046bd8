package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-finder/backend/config"
	"github.com/pageza/recipe-finder/backend/internal/testhelpers"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:         "127.0.0.1",
		ServerPort:         "0",
		ShutdownTimeout:    5 * time.Second,
		CORSAllowedOrigins: []string{"*"},
		RecipeAPIURL:       "http://127.0.0.1:0",
		RecipeAPIPageSize:  10,
	}
}

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := New(testConfig(), testhelpers.SetupSQLiteDB(t))
	require.NotNil(t, server)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := New(testConfig(), testhelpers.SetupSQLiteDB(t))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunFailsOnBadAddress(t *testing.T) {
	cfg := testConfig()
	cfg.ServerPort = "not-a-port"
	server := New(cfg, testhelpers.SetupSQLiteDB(t))

	err := server.Run(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}
