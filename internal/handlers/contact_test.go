package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRequestNormalizeTrimsAndLowercases(t *testing.T) {
	req := contactRequest{
		Name:    "  Ada Obi  ",
		Email:   "  ADA@Example.com ",
		Phone:   " +234 801 000 0000 ",
		Subject: " Wholesale enquiry ",
		Message: " Do you ship to Abuja? ",
	}

	assert.True(t, req.normalize())
	assert.Equal(t, "Ada Obi", req.Name)
	assert.Equal(t, "ada@example.com", req.Email)
	assert.Equal(t, "+234 801 000 0000", req.Phone)
	assert.Equal(t, "Wholesale enquiry", req.Subject)
	assert.Equal(t, "Do you ship to Abuja?", req.Message)
}

func TestContactRequestNormalizeRejectsWhitespaceOnlyFields(t *testing.T) {
	base := contactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Hi there",
	}
	assert.True(t, base.normalize())

	for _, mutate := range []func(*contactRequest){
		func(r *contactRequest) { r.Name = "   " },
		func(r *contactRequest) { r.Email = "\t\n" },
		func(r *contactRequest) { r.Subject = " " },
		func(r *contactRequest) { r.Message = "   " },
	} {
		req := base
		mutate(&req)
		assert.False(t, req.normalize())
	}
}

func TestSubmitContactRejectsWhitespaceOnlySubject(t *testing.T) {
	app := fiber.New()
	app.Post("/contact", NewContactHandler(nil, nil).SubmitContact)

	body := `{"name":"Ada","email":"ada@example.com","subject":"   ","message":"Hi"}`
	req := httptestContactRequest(body)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func httptestContactRequest(body string) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
