package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerRecoversFromHandlerPanic(t *testing.T) {
	server := NewServer()
	server.app.Get("/boom", func(c *fiber.Ctx) error {
		panic("gallery index out of range")
	})

	resp, err := server.app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = server.app.Test(httptest.NewRequest(http.MethodGet, "/api/views/missing", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
