package gservice

import (
	"context"
	"fmt"

	"google.golang.org/api/gmail/v1"
)

func (m *GMail) ListLabels(ctx context.Context) (*gmail.ListLabelsResponse, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	result, err := svc.Users.Labels.List(gmailUserID).Do()
	if err != nil {
		return nil, fmt.Errorf("labels.List failed: %w", err)
	}

	return result, nil
}

func (m *GMail) CreateLabel(ctx context.Context, name, labelListVisibility, messageListVisibility string) (*gmail.Label, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	label, err := svc.Users.Labels.Create(gmailUserID, &gmail.Label{
		Name:                  name,
		LabelListVisibility:   labelListVisibility,
		MessageListVisibility: messageListVisibility,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("labels.Create failed: %w", err)
	}

	return label, nil
}
