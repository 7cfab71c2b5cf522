package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Check_Healthy(t *testing.T) {
	app := fiber.New()
	h := NewHealthHandler(&mockPinger{})
	app.Get("/health", h.Check)

	status, body := doRequest(t, app, http.MethodGet, "/health", "", nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"healthy"}`, string(body))
}

func TestHealthHandler_Check_Unhealthy(t *testing.T) {
	app := fiber.New()
	h := NewHealthHandler(&mockPinger{pingErr: errors.New("connection refused")})
	app.Get("/health", h.Check)

	status, body := doRequest(t, app, http.MethodGet, "/health", "", nil)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.JSONEq(t, `{"status":"unhealthy","error":"storage unreachable"}`, string(body))
}
