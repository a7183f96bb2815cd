package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/mail"
)

// SendEmailRequest describes an outgoing email.
type SendEmailRequest struct {
	To       string `json:"to" jsonschema:"comma-separated recipient addresses"`
	Subject  string `json:"subject" jsonschema:"email subject"`
	BodyText string `json:"body_text,omitempty" jsonschema:"plain text body"`
	BodyHTML string `json:"body_html,omitempty" jsonschema:"HTML body"`
	CC       string `json:"cc,omitempty" jsonschema:"comma-separated CC addresses"`
	BCC      string `json:"bcc,omitempty" jsonschema:"comma-separated BCC addresses"`
}

type sendEmailSvc interface {
	SendMessage(ctx context.Context, raw, threadID string) (*gmail.Message, error)
}

func NewSendEmail(svc sendEmailSvc) *SendEmail {
	return &SendEmail{svc: svc}
}

type SendEmail struct {
	svc sendEmailSvc
}

// SendEmail composes and sends an email. Unlike the other tools, an
// upstream send failure surfaces as a hard tool fault rather than an
// error envelope.
func (t *SendEmail) SendEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendEmailRequest,
) (*mcp.CallToolResult, any, error) {
	if input.BodyText == "" && input.BodyHTML == "" {
		return failure("send_email", errMissingBody)
	}

	to := splitCSV(input.To)
	if len(to) == 0 {
		return failure("send_email", errMissingRecipient)
	}

	raw, err := mail.Message{
		To:      to,
		Cc:      splitCSV(input.CC),
		Bcc:     splitCSV(input.BCC),
		Subject: input.Subject,
		Text:    input.BodyText,
		HTML:    input.BodyHTML,
	}.Raw()
	if err != nil {
		return nil, nil, fmt.Errorf("mail.Raw failed: %w", err)
	}

	sent, err := t.svc.SendMessage(ctx, raw, "")
	if err != nil {
		return nil, nil, fmt.Errorf("svc.SendMessage failed: %w", err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: sent.Id,
		ThreadID:  sent.ThreadId,
		Message:   fmt.Sprintf("Email sent successfully to %s", strings.Join(to, ", ")),
	})
}
