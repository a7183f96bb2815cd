package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// GetAttachmentsRequest lists a message's attachments, or downloads one
// when attachment_id is set.
type GetAttachmentsRequest struct {
	MessageID    string `json:"message_id" jsonschema:"ID of the message"`
	AttachmentID string `json:"attachment_id,omitempty" jsonschema:"attachment to download; omit to list all"`
}

// AttachmentListResponse reports attachment metadata on a message.
type AttachmentListResponse struct {
	Success     bool         `json:"success"`
	MessageID   string       `json:"message_id"`
	Attachments []Attachment `json:"attachments"`
	Message     string       `json:"message"`
}

// AttachmentDataResponse carries one downloaded attachment.
type AttachmentDataResponse struct {
	Success      bool   `json:"success"`
	MessageID    string `json:"message_id"`
	AttachmentID string `json:"attachment_id"`
	Size         int64  `json:"size"`
	Data         string `json:"data" jsonschema:"base64url-encoded attachment bytes"`
	Message      string `json:"message"`
}

type attachmentsSvc interface {
	GetMessage(ctx context.Context, msgID, format string) (*gmail.Message, error)
	GetAttachment(ctx context.Context, msgID, attachmentID string) (*gmail.MessagePartBody, error)
}

func NewAttachments(svc attachmentsSvc) *Attachments {
	return &Attachments{svc: svc}
}

type Attachments struct {
	svc attachmentsSvc
}

func (t *Attachments) GetAttachments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetAttachmentsRequest,
) (*mcp.CallToolResult, any, error) {
	if input.AttachmentID == "" {
		return t.list(ctx, input.MessageID)
	}
	return t.download(ctx, input.MessageID, input.AttachmentID)
}

func (t *Attachments) list(ctx context.Context, msgID string) (*mcp.CallToolResult, any, error) {
	msg, err := t.svc.GetMessage(ctx, msgID, "full")
	if err != nil {
		return failure("get_attachments", err)
	}

	attachments := []Attachment{}
	if msg.Payload != nil {
		attachments = append(attachments, extractAttachments(msg.Payload)...)
	}

	return jsonResult(AttachmentListResponse{
		Success:     true,
		MessageID:   msg.Id,
		Attachments: attachments,
		Message:     fmt.Sprintf("Found %d attachments", len(attachments)),
	})
}

func (t *Attachments) download(ctx context.Context, msgID, attachmentID string) (*mcp.CallToolResult, any, error) {
	body, err := t.svc.GetAttachment(ctx, msgID, attachmentID)
	if err != nil {
		return failure("get_attachments", err)
	}

	return jsonResult(AttachmentDataResponse{
		Success:      true,
		MessageID:    msgID,
		AttachmentID: attachmentID,
		Size:         body.Size,
		Data:         body.Data,
		Message:      fmt.Sprintf("Attachment %s downloaded successfully", attachmentID),
	})
}
