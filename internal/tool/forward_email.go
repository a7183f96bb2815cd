package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/format"
	"github.com/inboxkit/gmail-mcp/internal/mail"
)

// ForwardEmailRequest describes forwarding an existing message.
type ForwardEmailRequest struct {
	MessageID      string `json:"message_id" jsonschema:"ID of the message to forward"`
	To             string `json:"to" jsonschema:"comma-separated recipient addresses"`
	AdditionalText string `json:"additional_text,omitempty" jsonschema:"note prepended above the forwarded content"`
	CC             string `json:"cc,omitempty" jsonschema:"comma-separated CC addresses"`
}

type forwardEmailSvc interface {
	GetMessage(ctx context.Context, msgID, format string) (*gmail.Message, error)
	SendMessage(ctx context.Context, raw, threadID string) (*gmail.Message, error)
}

func NewForwardEmail(svc forwardEmailSvc) *ForwardEmail {
	return &ForwardEmail{svc: svc}
}

type ForwardEmail struct {
	svc forwardEmailSvc
}

// ForwardEmail sends an existing message to new recipients with the usual
// forwarded-message block above the original body.
func (t *ForwardEmail) ForwardEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ForwardEmailRequest,
) (*mcp.CallToolResult, any, error) {
	to := splitCSV(input.To)
	if len(to) == 0 {
		return failure("forward_email", errMissingRecipient)
	}

	orig, err := t.svc.GetMessage(ctx, input.MessageID, "full")
	if err != nil {
		return failure("forward_email", err)
	}

	raw, err := mail.Message{
		To:      to,
		Cc:      splitCSV(input.CC),
		Subject: forwardSubject(headerValue(orig, "Subject")),
		Text:    forwardBody(orig, input.AdditionalText),
	}.Raw()
	if err != nil {
		return nil, nil, fmt.Errorf("mail.Raw failed: %w", err)
	}

	sent, err := t.svc.SendMessage(ctx, raw, "")
	if err != nil {
		return failure("forward_email", err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: sent.Id,
		ThreadID:  sent.ThreadId,
		Message:   fmt.Sprintf("Email forwarded successfully to %s", strings.Join(to, ", ")),
	})
}

func forwardSubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "fwd:") {
		return subject
	}
	return "Fwd: " + subject
}

func forwardBody(orig *gmail.Message, additionalText string) string {
	var body string
	if orig.Payload != nil {
		textBody, htmlBody := extractMessageBodies(orig.Payload)
		body = textBody
		if body == "" && htmlBody != "" {
			body = format.HTML2Text([]byte(htmlBody))
		}
	}

	var b strings.Builder
	if additionalText != "" {
		b.WriteString(additionalText)
		b.WriteString("\n\n")
	}
	b.WriteString("---------- Forwarded message ---------\n")
	fmt.Fprintf(&b, "From: %s\n", headerValue(orig, "From"))
	fmt.Fprintf(&b, "Date: %s\n", headerValue(orig, "Date"))
	fmt.Fprintf(&b, "Subject: %s\n", headerValue(orig, "Subject"))
	fmt.Fprintf(&b, "To: %s\n\n", headerValue(orig, "To"))
	b.WriteString(body)

	return b.String()
}
