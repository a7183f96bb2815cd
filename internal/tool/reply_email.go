package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/mail"
)

// ReplyToEmailRequest describes a reply to an existing message.
type ReplyToEmailRequest struct {
	MessageID string `json:"message_id" jsonschema:"ID of the message being replied to"`
	BodyText  string `json:"body_text,omitempty" jsonschema:"plain text body"`
	BodyHTML  string `json:"body_html,omitempty" jsonschema:"HTML body"`
	ReplyAll  bool   `json:"reply_all,omitempty" jsonschema:"also reply to the original To and Cc recipients"`
	CC        string `json:"cc,omitempty" jsonschema:"comma-separated extra CC addresses"`
}

type replyToEmailSvc interface {
	GetMessage(ctx context.Context, msgID, format string) (*gmail.Message, error)
	SendMessage(ctx context.Context, raw, threadID string) (*gmail.Message, error)
}

func NewReplyToEmail(svc replyToEmailSvc) *ReplyToEmail {
	return &ReplyToEmail{svc: svc}
}

type ReplyToEmail struct {
	svc replyToEmailSvc
}

// ReplyToEmail sends a reply on the original message's thread. Recipient,
// subject and threading headers are derived from the original.
func (t *ReplyToEmail) ReplyToEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReplyToEmailRequest,
) (*mcp.CallToolResult, any, error) {
	if input.BodyText == "" && input.BodyHTML == "" {
		return failure("reply_to_email", errMissingBody)
	}

	orig, err := t.svc.GetMessage(ctx, input.MessageID, "full")
	if err != nil {
		return failure("reply_to_email", err)
	}

	to := []string{headerValue(orig, "From")}
	var cc []string
	if input.ReplyAll {
		to = append(to, splitCSV(headerValue(orig, "To"))...)
		cc = splitCSV(headerValue(orig, "Cc"))
	}
	cc = append(cc, splitCSV(input.CC)...)

	raw, err := mail.Message{
		To:         to,
		Cc:         cc,
		Subject:    replySubject(headerValue(orig, "Subject")),
		Text:       input.BodyText,
		HTML:       input.BodyHTML,
		InReplyTo:  orig.Id,
		References: orig.ThreadId,
	}.Raw()
	if err != nil {
		return nil, nil, fmt.Errorf("mail.Raw failed: %w", err)
	}

	sent, err := t.svc.SendMessage(ctx, raw, orig.ThreadId)
	if err != nil {
		return failure("reply_to_email", err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: sent.Id,
		ThreadID:  sent.ThreadId,
		Message:   "Reply sent successfully",
	})
}

func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}
