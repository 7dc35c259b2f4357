package contact

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPConfig holds mail server settings.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

// Configured reports whether credentials and a recipient are present.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Password != "" && c.To != ""
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPRelay mails submissions to the site owner.
type SMTPRelay struct {
	cfg  SMTPConfig
	send SendFunc
}

func NewSMTPRelay(cfg SMTPConfig) *SMTPRelay {
	return &SMTPRelay{cfg: cfg, send: smtp.SendMail}
}

func (r *SMTPRelay) Send(ctx context.Context, s Submission) error {
	if !r.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", r.cfg.User, r.cfg.Password, r.cfg.Host)
	addr := net.JoinHostPort(r.cfg.Host, r.cfg.Port)
	if err := r.send(addr, auth, r.cfg.User, []string{r.cfg.To}, r.message(s)); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func (r *SMTPRelay) message(s Submission) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, s.FullName, s.Email, s.Message)

	var b strings.Builder
	b.WriteString("To: " + r.cfg.To + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + headerSafe(s.FullName) + "\r\n")
	b.WriteString("From: " + r.cfg.User + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(s.Email) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// headerSafe strips line breaks so user input cannot add headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
