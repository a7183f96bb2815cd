package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/mail"
)

// CreateDraftRequest describes a draft email.
type CreateDraftRequest struct {
	To       string `json:"to" jsonschema:"comma-separated recipient addresses"`
	Subject  string `json:"subject" jsonschema:"email subject"`
	BodyText string `json:"body_text,omitempty" jsonschema:"plain text body"`
	BodyHTML string `json:"body_html,omitempty" jsonschema:"HTML body"`
	CC       string `json:"cc,omitempty" jsonschema:"comma-separated CC addresses"`
	BCC      string `json:"bcc,omitempty" jsonschema:"comma-separated BCC addresses"`
}

// CreateDraftResponse reports the created draft.
type CreateDraftResponse struct {
	Success   bool   `json:"success"`
	DraftID   string `json:"draft_id"`
	MessageID string `json:"message_id,omitempty"`
	Message   string `json:"message"`
}

// GetDraftsRequest lists drafts.
type GetDraftsRequest struct {
	Query      string `json:"query,omitempty" jsonschema:"Gmail search query"`
	After      string `json:"after,omitempty" jsonschema:"only drafts after this date (YYYY/MM/DD)"`
	Before     string `json:"before,omitempty" jsonschema:"only drafts before this date (YYYY/MM/DD)"`
	MaxResults int64  `json:"max_results,omitempty" jsonschema:"max results per page"`
	PageToken  string `json:"page_token,omitempty" jsonschema:"token for pagination"`
}

// GetDraftsResponse contains one page of drafts.
type GetDraftsResponse struct {
	Success            bool           `json:"success"`
	Drafts             []*gmail.Draft `json:"drafts"`
	NextPageToken      string         `json:"next_page_token,omitempty"`
	ResultSizeEstimate int64          `json:"result_size_estimate,omitempty"`
	Message            string         `json:"message"`
}

// GetDraftRequest fetches a single draft.
type GetDraftRequest struct {
	DraftID string `json:"draft_id" jsonschema:"ID of the draft"`
	Format  string `json:"format,omitempty" jsonschema:"minimal, compact, full, metadata or raw, default compact"`
}

// GetDraftResponse contains a draft, with a summary projection for the
// compact format.
type GetDraftResponse struct {
	Success bool            `json:"success"`
	DraftID string          `json:"draft_id"`
	Draft   *gmail.Draft    `json:"draft,omitempty"`
	Summary *MessageSummary `json:"summary,omitempty"`
	Message string          `json:"message"`
}

// SendDraftRequest sends an existing draft.
type SendDraftRequest struct {
	DraftID string `json:"draft_id" jsonschema:"ID of the draft to send"`
}

type draftsSvc interface {
	CreateDraft(ctx context.Context, raw string) (*gmail.Draft, error)
	ListDrafts(ctx context.Context, q, pageToken string, maxResults int64) (*gmail.ListDraftsResponse, error)
	GetDraft(ctx context.Context, draftID, format string) (*gmail.Draft, error)
	SendDraft(ctx context.Context, draftID string) (*gmail.Message, error)
}

func NewDrafts(svc draftsSvc) *Drafts {
	return &Drafts{svc: svc}
}

type Drafts struct {
	svc draftsSvc
}

func (t *Drafts) CreateDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateDraftRequest,
) (*mcp.CallToolResult, any, error) {
	if input.BodyText == "" && input.BodyHTML == "" {
		return failure("create_draft", errMissingBody)
	}

	to := splitCSV(input.To)
	if len(to) == 0 {
		return failure("create_draft", errMissingRecipient)
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

	draft, err := t.svc.CreateDraft(ctx, raw)
	if err != nil {
		return failure("create_draft", err)
	}

	resp := CreateDraftResponse{
		Success: true,
		DraftID: draft.Id,
		Message: fmt.Sprintf("Draft created successfully for %s", strings.Join(to, ", ")),
	}
	if draft.Message != nil {
		resp.MessageID = draft.Message.Id
	}

	return jsonResult(resp)
}

func (t *Drafts) GetDrafts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDraftsRequest,
) (*mcp.CallToolResult, any, error) {
	result, err := t.svc.ListDrafts(
		ctx,
		buildQuery(input.Query, input.After, input.Before),
		input.PageToken,
		normalizeMaxResults(input.MaxResults),
	)
	if err != nil {
		return failure("get_drafts", err)
	}

	drafts := result.Drafts
	if drafts == nil {
		drafts = []*gmail.Draft{}
	}

	return jsonResult(GetDraftsResponse{
		Success:            true,
		Drafts:             drafts,
		NextPageToken:      result.NextPageToken,
		ResultSizeEstimate: result.ResultSizeEstimate,
		Message:            fmt.Sprintf("Found %d drafts", len(drafts)),
	})
}

func (t *Drafts) GetDraftByID(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDraftRequest,
) (*mcp.CallToolResult, any, error) {
	apiFormat, compact, err := resolveFormat(input.Format, "compact")
	if err != nil {
		return failure("get_draft_by_id", err)
	}

	draft, err := t.svc.GetDraft(ctx, input.DraftID, apiFormat)
	if err != nil {
		return failure("get_draft_by_id", err)
	}

	resp := GetDraftResponse{
		Success: true,
		DraftID: draft.Id,
		Message: fmt.Sprintf("Draft %s retrieved successfully", draft.Id),
	}

	if compact && draft.Message != nil {
		summary := extractMessageSummary(draft.Message)
		resp.Summary = &summary
	} else {
		resp.Draft = draft
	}

	return jsonResult(resp)
}

func (t *Drafts) SendDraft(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SendDraftRequest,
) (*mcp.CallToolResult, any, error) {
	sent, err := t.svc.SendDraft(ctx, input.DraftID)
	if err != nil {
		return failure("send_draft", err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: sent.Id,
		ThreadID:  sent.ThreadId,
		Message:   "Draft sent successfully",
	})
}
