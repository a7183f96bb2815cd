package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// MoveToFolderRequest moves a message into a folder-like label.
type MoveToFolderRequest struct {
	MessageID     string `json:"message_id" jsonschema:"ID of the message to move"`
	FolderLabelID string `json:"folder_label_id" jsonschema:"label ID of the destination folder"`
	RemoveInbox   *bool  `json:"remove_inbox,omitempty" jsonschema:"remove the INBOX label, default true"`
}

type moveToFolderSvc interface {
	ModifyMessage(ctx context.Context, msgID string, addLabelIDs, removeLabelIDs []string) (*gmail.Message, error)
}

func NewMoveToFolder(svc moveToFolderSvc) *MoveToFolder {
	return &MoveToFolder{svc: svc}
}

type MoveToFolder struct {
	svc moveToFolderSvc
}

// MoveToFolder adds the destination label and, unless disabled or the
// destination is INBOX itself, removes INBOX.
func (t *MoveToFolder) MoveToFolder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MoveToFolderRequest,
) (*mcp.CallToolResult, any, error) {
	removeInbox := input.RemoveInbox == nil || *input.RemoveInbox

	var removeLabels []string
	if removeInbox && input.FolderLabelID != "INBOX" {
		removeLabels = []string{"INBOX"}
	}

	msg, err := t.svc.ModifyMessage(ctx, input.MessageID, []string{input.FolderLabelID}, removeLabels)
	if err != nil {
		return failure("move_to_folder", err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: msg.Id,
		Message:   fmt.Sprintf("Email moved to %s", input.FolderLabelID),
	})
}
