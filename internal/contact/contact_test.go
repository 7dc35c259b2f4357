package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = Submission{FullName: "Ada Lovelace", Email: "ada@example.com", Message: "Hello there"}

func TestNormalize(t *testing.T) {
	s := Submission{FullName: "  Ada ", Email: " ada@example.com\n", Message: "\thi "}.Normalize()
	assert.Equal(t, Submission{FullName: "Ada", Email: "ada@example.com", Message: "hi"}, s)
}

func TestUnconfigured(t *testing.T) {
	err := Unconfigured{}.Send(context.Background(), sample)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFormRelay_Posts(t *testing.T) {
	var got http.Header
	var fields map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		require.NoError(t, r.ParseForm())
		fields = map[string]string{
			"fullName": r.PostForm.Get("fullName"),
			"email":    r.PostForm.Get("email"),
			"message":  r.PostForm.Get("message"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewFormRelay(srv.URL, srv.Client()).Send(context.Background(), sample)
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", got.Get("Content-Type"))
	assert.Equal(t, map[string]string{
		"fullName": "Ada Lovelace",
		"email":    "ada@example.com",
		"message":  "Hello there",
	}, fields)
}

func TestFormRelay_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewFormRelay(srv.URL, nil).Send(context.Background(), sample)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFormRelay_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewFormRelay(srv.URL, nil).Send(ctx, sample)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSMTPRelay_NotConfigured(t *testing.T) {
	r := NewSMTPRelay(SMTPConfig{Host: "smtp.example.com", Port: "587"})
	assert.ErrorIs(t, r.Send(context.Background(), sample), ErrNotConfigured)
}

func TestSMTPRelay_Message(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.example.com", Port: "587", User: "me@example.com", Password: "pw", To: "inbox@example.com"}
	r := NewSMTPRelay(cfg)

	var addr string
	var to []string
	var msg string
	r.send = func(a string, _ smtp.Auth, from string, rcpt []string, m []byte) error {
		addr, to, msg = a, rcpt, string(m)
		assert.Equal(t, cfg.User, from)
		return nil
	}

	s := sample
	s.FullName = "Ada\r\nBcc: victim@example.com"
	require.NoError(t, r.Send(context.Background(), s))

	assert.Equal(t, "smtp.example.com:587", addr)
	assert.Equal(t, []string{"inbox@example.com"}, to)
	assert.Contains(t, msg, "Subject: Portfolio Contact: Ada  Bcc: victim@example.com\r\n")
	assert.Contains(t, msg, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, msg, "Message:\nHello there")
	headers, _, _ := strings.Cut(msg, "\r\n\r\n")
	assert.NotContains(t, headers, "\r\nBcc:")
}

func TestSMTPRelay_SendError(t *testing.T) {
	r := NewSMTPRelay(SMTPConfig{Host: "h", Port: "25", User: "u", Password: "p", To: "t"})
	boom := errors.New("connection refused")
	r.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	assert.ErrorIs(t, r.Send(context.Background(), sample), boom)
}
