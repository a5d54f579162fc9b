package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdashik24x7/portfolio/internal/contact"
	"github.com/mdashik24x7/portfolio/internal/content"
)

type fakeMailer struct {
	sent []contact.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg contact.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newContactServer(t *testing.T, m contact.Mailer) *Server {
	t.Helper()
	tables, err := content.Load()
	require.NoError(t, err)
	s, err := New(Options{Config: testConfig(), Tables: tables, Mailer: m, Logger: testLogger})
	require.NoError(t, err)
	return s
}

func postContact(s *Server, form url.Values) string {
	rec := do(s, http.MethodPost, "/contact", strings.NewReader(form.Encode()),
		withHeader("Content-Type", "application/x-www-form-urlencoded"))
	return rec.Body.String()
}

func TestContact_Form(t *testing.T) {
	s := newContactServer(t, &fakeMailer{})
	assert.Contains(t, do(s, http.MethodGet, "/", nil).Body.String(), `hx-get="/contact-form"`)

	rec := do(s, http.MethodGet, "/contact-form", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="fullName"`)
}

func TestContact_Submit(t *testing.T) {
	m := &fakeMailer{}
	s := newContactServer(t, m)

	body := postContact(s, url.Values{"fullName": {" Rahim "}, "email": {"rahim@example.com"}, "message": {"Hello"}})
	assert.Contains(t, body, "Thank you for your message")
	require.Len(t, m.sent, 1)
	assert.Equal(t, "Rahim", m.sent[0].Name)
}

func TestContact_ValidationKeepsInput(t *testing.T) {
	m := &fakeMailer{}
	s := newContactServer(t, m)

	body := postContact(s, url.Values{"fullName": {"Rahim"}, "email": {"nope"}, "message": {"Hello"}})
	assert.Contains(t, body, "Email not a valid address")
	assert.Contains(t, body, `value="Rahim"`)
	assert.Empty(t, m.sent)
}

func TestContact_SendFailure(t *testing.T) {
	s := newContactServer(t, &fakeMailer{err: errors.New("relay down")})
	body := postContact(s, url.Values{"fullName": {"Rahim"}, "email": {"rahim@example.com"}, "message": {"Hello"}})
	assert.Contains(t, body, "error sending your message")
}

func TestContact_DisabledWithoutMailer(t *testing.T) {
	s, _ := newTestServer(t, false)
	assert.NotContains(t, do(s, http.MethodGet, "/", nil).Body.String(), "/contact-form")
	assert.Equal(t, http.StatusNotFound, do(s, http.MethodGet, "/contact-form", nil).Code)
}
