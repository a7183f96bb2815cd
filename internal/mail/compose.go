// Package mail composes RFC 2822 messages for the Gmail API raw field.
package mail

import (
	"encoding/base64"
	"fmt"

	"github.com/jordan-wright/email"
)

// Message describes an outgoing email. From may stay empty; Gmail fills
// in the authenticated sender.
type Message struct {
	From       string
	To         []string
	Cc         []string
	Bcc        []string
	Subject    string
	Text       string
	HTML       string
	InReplyTo  string
	References string
}

// Raw renders the message and encodes it the way Gmail's raw field
// expects (base64url over the full RFC 2822 payload).
func (m Message) Raw() (string, error) {
	e := email.NewEmail()
	e.From = m.From
	e.To = m.To
	e.Cc = m.Cc
	e.Bcc = m.Bcc
	e.Subject = m.Subject

	if m.Text != "" {
		e.Text = []byte(m.Text)
	}
	if m.HTML != "" {
		e.HTML = []byte(m.HTML)
	}
	if m.InReplyTo != "" {
		e.Headers.Set("In-Reply-To", m.InReplyTo)
	}
	if m.References != "" {
		e.Headers.Set("References", m.References)
	}

	payload, err := e.Bytes()
	if err != nil {
		return "", fmt.Errorf("email.Bytes failed: %w", err)
	}

	return base64.URLEncoding.EncodeToString(payload), nil
}
