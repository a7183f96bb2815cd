package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// MessageRequest identifies a single message.
type MessageRequest struct {
	MessageID string `json:"message_id" jsonschema:"ID of the message"`
}

type messageFlagsSvc interface {
	ModifyMessage(ctx context.Context, msgID string, addLabelIDs, removeLabelIDs []string) (*gmail.Message, error)
}

// NewMessageFlags creates the read/unread and archive/unarchive tools,
// which are all UNREAD/INBOX label flips.
func NewMessageFlags(svc messageFlagsSvc) *MessageFlags {
	return &MessageFlags{svc: svc}
}

type MessageFlags struct {
	svc messageFlagsSvc
}

func (t *MessageFlags) MarkAsRead(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MessageRequest,
) (*mcp.CallToolResult, any, error) {
	return t.flip(ctx, "mark_as_read", input.MessageID, nil, []string{"UNREAD"}, "Email marked as read")
}

func (t *MessageFlags) MarkAsUnread(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MessageRequest,
) (*mcp.CallToolResult, any, error) {
	return t.flip(ctx, "mark_as_unread", input.MessageID, []string{"UNREAD"}, nil, "Email marked as unread")
}

func (t *MessageFlags) ArchiveEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MessageRequest,
) (*mcp.CallToolResult, any, error) {
	return t.flip(ctx, "archive_email", input.MessageID, nil, []string{"INBOX"}, "Email archived successfully")
}

func (t *MessageFlags) UnarchiveEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MessageRequest,
) (*mcp.CallToolResult, any, error) {
	return t.flip(ctx, "unarchive_email", input.MessageID, []string{"INBOX"}, nil, "Email unarchived successfully")
}

func (t *MessageFlags) flip(
	ctx context.Context,
	op, msgID string,
	addLabels, removeLabels []string,
	statusMsg string,
) (*mcp.CallToolResult, any, error) {
	msg, err := t.svc.ModifyMessage(ctx, msgID, addLabels, removeLabels)
	if err != nil {
		return failure(op, err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: msg.Id,
		Message:   statusMsg,
	})
}
