// Package contact delivers contact form submissions.
package contact

import (
	"context"
	"errors"
	"strings"
)

// ErrNotConfigured is returned when no delivery channel is set up.
var ErrNotConfigured = errors.New("contact delivery not configured")

// Submission is one contact form post.
type Submission struct {
	FullName string `form:"fullName" json:"fullName" binding:"required,max=200"`
	Email    string `form:"email" json:"email" binding:"required,email,max=254"`
	Message  string `form:"message" json:"message" binding:"required,max=5000"`
}

// Normalize trims surrounding whitespace from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		FullName: strings.TrimSpace(s.FullName),
		Email:    strings.TrimSpace(s.Email),
		Message:  strings.TrimSpace(s.Message),
	}
}

// Relay hands a submission to whatever delivers it.
type Relay interface {
	Send(ctx context.Context, s Submission) error
}

// Unconfigured rejects every submission with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Send(context.Context, Submission) error {
	return ErrNotConfigured
}
