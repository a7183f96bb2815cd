package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// ModifyLabelsRequest adds or removes labels on a message.
type ModifyLabelsRequest struct {
	MessageID string `json:"message_id" jsonschema:"ID of the message"`
	LabelIDs  string `json:"label_ids" jsonschema:"comma-separated label IDs"`
}

// CreateLabelRequest creates a user label.
type CreateLabelRequest struct {
	Name                  string `json:"name" jsonschema:"display name of the label"`
	LabelListVisibility   string `json:"label_list_visibility,omitempty" jsonschema:"labelShow, labelShowIfUnread or labelHide, default labelShow"`
	MessageListVisibility string `json:"message_list_visibility,omitempty" jsonschema:"show or hide, default show"`
}

// CreateLabelResponse reports the created label.
type CreateLabelResponse struct {
	Success bool         `json:"success"`
	LabelID string       `json:"label_id"`
	Label   *gmail.Label `json:"label"`
	Message string       `json:"message"`
}

// GetLabelsResponse lists all labels in the mailbox.
type GetLabelsResponse struct {
	Success bool           `json:"success"`
	Labels  []*gmail.Label `json:"labels"`
	Message string         `json:"message"`
}

type labelsSvc interface {
	ModifyMessage(ctx context.Context, msgID string, addLabelIDs, removeLabelIDs []string) (*gmail.Message, error)
	ListLabels(ctx context.Context) (*gmail.ListLabelsResponse, error)
	CreateLabel(ctx context.Context, name, labelListVisibility, messageListVisibility string) (*gmail.Label, error)
}

func NewLabels(svc labelsSvc) *Labels {
	return &Labels{svc: svc}
}

type Labels struct {
	svc labelsSvc
}

func (t *Labels) AddLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ModifyLabelsRequest,
) (*mcp.CallToolResult, any, error) {
	ids := splitCSV(input.LabelIDs)
	if len(ids) == 0 {
		return failure("add_label", errors.New("at least one label ID is required"))
	}

	msg, err := t.svc.ModifyMessage(ctx, input.MessageID, ids, nil)
	if err != nil {
		return failure("add_label", err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: msg.Id,
		Message:   fmt.Sprintf("Labels %s added successfully", strings.Join(ids, ", ")),
	})
}

func (t *Labels) RemoveLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ModifyLabelsRequest,
) (*mcp.CallToolResult, any, error) {
	ids := splitCSV(input.LabelIDs)
	if len(ids) == 0 {
		return failure("remove_label", errors.New("at least one label ID is required"))
	}

	msg, err := t.svc.ModifyMessage(ctx, input.MessageID, nil, ids)
	if err != nil {
		return failure("remove_label", err)
	}

	return jsonResult(StatusResponse{
		Success:   true,
		MessageID: msg.Id,
		Message:   fmt.Sprintf("Labels %s removed successfully", strings.Join(ids, ", ")),
	})
}

func (t *Labels) CreateLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateLabelRequest,
) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.Name) == "" {
		return failure("create_label", errors.New("label name is required"))
	}

	labelVis := input.LabelListVisibility
	if labelVis == "" {
		labelVis = "labelShow"
	}
	messageVis := input.MessageListVisibility
	if messageVis == "" {
		messageVis = "show"
	}

	label, err := t.svc.CreateLabel(ctx, input.Name, labelVis, messageVis)
	if err != nil {
		return failure("create_label", err)
	}

	return jsonResult(CreateLabelResponse{
		Success: true,
		LabelID: label.Id,
		Label:   label,
		Message: fmt.Sprintf("Label '%s' created successfully", label.Name),
	})
}

func (t *Labels) GetLabels(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, any, error) {
	result, err := t.svc.ListLabels(ctx)
	if err != nil {
		return failure("get_labels", err)
	}

	return jsonResult(GetLabelsResponse{
		Success: true,
		Labels:  result.Labels,
		Message: fmt.Sprintf("Found %d labels", len(result.Labels)),
	})
}
