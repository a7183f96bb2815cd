package tool

import (
	"context"
	"errors"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/googleapi"
)

type deleteEmailSvc interface {
	DeleteMessage(ctx context.Context, msgID string) error
}

func NewDeleteEmail(svc deleteEmailSvc) *DeleteEmail {
	return &DeleteEmail{svc: svc}
}

type DeleteEmail struct {
	svc deleteEmailSvc
}

// DeleteEmail permanently deletes a message. A refused delete (the API
// answering 4xx) is reported as an unsuccessful status; anything else is
// an error like in every other tool.
func (t *DeleteEmail) DeleteEmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MessageRequest,
) (*mcp.CallToolResult, any, error) {
	if err := t.svc.DeleteMessage(ctx, input.MessageID); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 {
			log.Printf("delete_email refused: %v", err)

			return jsonResult(StatusResponse{
				Success:   false,
				MessageID: input.MessageID,
				Message:   "Failed to delete email",
			})
		}

		return failure("delete_email", err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: input.MessageID,
		Message:   "Email deleted successfully",
	})
}
