package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyContactSendsOperatorAndConfirmation(t *testing.T) {
	var sent []resendEmail
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		var email resendEmail
		require.NoError(t, json.NewDecoder(r.Body).Decode(&email))
		sent = append(sent, email)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewResendService("re_test_key", "BSG Contact <contact@experiencebsg.com>", "ops@example.com")
	svc.sendURL = server.URL

	svc.NotifyContact(ContactNotification{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Availability",
		Message: "Is Sovereign Oud back in stock?",
	})

	require.Len(t, sent, 2)
	assert.Equal(t, []string{"ops@example.com"}, sent[0].To)
	assert.Equal(t, "ada@example.com", sent[0].ReplyTo)
	assert.Contains(t, sent[0].HTML, "Sovereign Oud")
	assert.Equal(t, []string{"ada@example.com"}, sent[1].To)
	assert.Contains(t, sent[1].Subject, "We received your message")
}

func TestNotifyContactWithoutKeyIsNoop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected when unconfigured")
	}))
	defer server.Close()

	svc := NewResendService("", "from", "to")
	svc.sendURL = server.URL

	svc.NotifyContact(ContactNotification{Name: "Ada", Email: "ada@example.com"})
}

func TestOperatorEmailEscapesHTML(t *testing.T) {
	html := operatorEmailHTML(ContactNotification{
		Name:    "<script>",
		Email:   "a@b.com",
		Subject: "hi",
		Message: "line1\nline2",
	})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "line1<br />line2")
}
