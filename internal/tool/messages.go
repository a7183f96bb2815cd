package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/format"
)

// EmailView is a single message rendered for the requested format. compact
// and metadata fill the summary; full adds the decoded body and attachment
// metadata; raw carries the RFC 2822 payload.
type EmailView struct {
	MessageSummary
	BodyText    string       `json:"body_text,omitempty" jsonschema:"decoded text body (full format)"`
	Attachments []Attachment `json:"attachments,omitempty" jsonschema:"attachment metadata (full format)"`
	Raw         string       `json:"raw,omitempty" jsonschema:"base64url RFC 2822 payload (raw format)"`
}

// GetEmailsRequest lists messages with optional filters.
type GetEmailsRequest struct {
	LabelIDs   string `json:"label_ids,omitempty" jsonschema:"comma-separated label IDs to filter by"`
	Query      string `json:"query,omitempty" jsonschema:"Gmail search query"`
	After      string `json:"after,omitempty" jsonschema:"only messages after this date (YYYY/MM/DD)"`
	Before     string `json:"before,omitempty" jsonschema:"only messages before this date (YYYY/MM/DD)"`
	MaxResults       int64  `json:"max_results,omitempty" jsonschema:"max results per page"`
	PageToken        string `json:"page_token,omitempty" jsonschema:"token for pagination"`
	Format           string `json:"format,omitempty" jsonschema:"minimal, compact, full, metadata or raw, default compact"`
	IncludeSpamTrash bool   `json:"include_spam_trash,omitempty" jsonschema:"also search SPAM and TRASH"`
}

// GetEmailsResponse contains one page of messages.
type GetEmailsResponse struct {
	Success            bool        `json:"success"`
	Emails             []EmailView `json:"emails"`
	NextPageToken      string      `json:"next_page_token,omitempty"`
	ResultSizeEstimate int64       `json:"result_size_estimate,omitempty"`
	Message            string      `json:"message"`
}

// SearchEmailsRequest searches messages with Gmail query syntax.
type SearchEmailsRequest struct {
	Query            string `json:"query" jsonschema:"Gmail search query"`
	After            string `json:"after,omitempty" jsonschema:"only messages after this date (YYYY/MM/DD)"`
	Before           string `json:"before,omitempty" jsonschema:"only messages before this date (YYYY/MM/DD)"`
	MaxResults       int64  `json:"max_results,omitempty" jsonschema:"max results per page"`
	PageToken        string `json:"page_token,omitempty" jsonschema:"token for pagination"`
	Format           string `json:"format,omitempty" jsonschema:"minimal, compact, full, metadata or raw, default compact"`
	IncludeSpamTrash bool   `json:"include_spam_trash,omitempty" jsonschema:"also search SPAM and TRASH"`
}

// GetEmailRequest fetches a single message.
type GetEmailRequest struct {
	MessageID string `json:"message_id" jsonschema:"ID of the message"`
	Format    string `json:"format,omitempty" jsonschema:"minimal, compact, full, metadata or raw, default compact"`
}

// GetEmailResponse contains a single message view.
type GetEmailResponse struct {
	Success bool      `json:"success"`
	Email   EmailView `json:"email"`
	Message string    `json:"message"`
}

type messagesSvc interface {
	ListMessages(ctx context.Context, q, pageToken string, maxResults int64, labelIDs []string, includeSpamTrash bool) (*gmail.ListMessagesResponse, error)
	GetMessage(ctx context.Context, msgID, format string) (*gmail.Message, error)
}

func NewMessages(svc messagesSvc) *Messages {
	return &Messages{svc: svc}
}

type Messages struct {
	svc messagesSvc
}

func (t *Messages) GetEmails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetEmailsRequest,
) (*mcp.CallToolResult, any, error) {
	return t.listEmails(
		ctx,
		"get_emails",
		buildQuery(input.Query, input.After, input.Before),
		input.PageToken,
		input.MaxResults,
		splitCSV(input.LabelIDs),
		input.IncludeSpamTrash,
		input.Format,
		"Found %d emails",
	)
}

func (t *Messages) SearchEmails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchEmailsRequest,
) (*mcp.CallToolResult, any, error) {
	if input.Query == "" {
		return failure("search_emails", errors.New("query is required"))
	}

	return t.listEmails(
		ctx,
		"search_emails",
		buildQuery(input.Query, input.After, input.Before),
		input.PageToken,
		input.MaxResults,
		nil,
		input.IncludeSpamTrash,
		input.Format,
		"Found %d emails matching query",
	)
}

func (t *Messages) GetEmailByID(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetEmailRequest,
) (*mcp.CallToolResult, any, error) {
	apiFormat, _, err := resolveFormat(input.Format, "compact")
	if err != nil {
		return failure("get_email_by_id", err)
	}

	msg, err := t.svc.GetMessage(ctx, input.MessageID, apiFormat)
	if err != nil {
		return failure("get_email_by_id", err)
	}

	return jsonResult(GetEmailResponse{
		Success: true,
		Email:   messageView(msg, apiFormat),
		Message: fmt.Sprintf("Email %s retrieved successfully", msg.Id),
	})
}

func (t *Messages) listEmails(
	ctx context.Context,
	op, q, pageToken string,
	maxResults int64,
	labelIDs []string,
	includeSpamTrash bool,
	formatParam, messageFmt string,
) (*mcp.CallToolResult, any, error) {
	apiFormat, _, err := resolveFormat(formatParam, "compact")
	if err != nil {
		return failure(op, err)
	}

	result, err := t.svc.ListMessages(ctx, q, pageToken, normalizeMaxResults(maxResults), labelIDs, includeSpamTrash)
	if err != nil {
		return failure(op, err)
	}

	emails := make([]EmailView, 0, len(result.Messages))
	for _, m := range result.Messages {
		msg, err := t.svc.GetMessage(ctx, m.Id, apiFormat)
		if err != nil {
			return failure(op, fmt.Errorf("get message %s failed: %w", m.Id, err))
		}
		emails = append(emails, messageView(msg, apiFormat))
	}

	return jsonResult(GetEmailsResponse{
		Success:            true,
		Emails:             emails,
		NextPageToken:      result.NextPageToken,
		ResultSizeEstimate: result.ResultSizeEstimate,
		Message:            fmt.Sprintf(messageFmt, len(emails)),
	})
}

func messageView(msg *gmail.Message, apiFormat string) EmailView {
	view := EmailView{MessageSummary: extractMessageSummary(msg)}

	switch apiFormat {
	case "full":
		if msg.Payload != nil {
			view.Attachments = extractAttachments(msg.Payload)

			textBody, htmlBody := extractMessageBodies(msg.Payload)
			view.BodyText = textBody
			if view.BodyText == "" && htmlBody != "" {
				view.BodyText = format.HTML2Text([]byte(htmlBody))
			}
		}
	case "raw":
		view.Raw = msg.Raw
	}

	return view
}
