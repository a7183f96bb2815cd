package gservice

import (
	"context"
	"fmt"

	"google.golang.org/api/gmail/v1"
)

func (m *GMail) CreateDraft(ctx context.Context, raw string) (*gmail.Draft, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	draft, err := svc.Users.Drafts.Create(gmailUserID, &gmail.Draft{
		Message: &gmail.Message{Raw: raw},
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.Create failed: %w", err)
	}

	return draft, nil
}

func (m *GMail) ListDrafts(ctx context.Context, q, pageToken string, maxResults int64) (*gmail.ListDraftsResponse, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	result, err := svc.Users.Drafts.List(gmailUserID).
		Q(q).
		PageToken(pageToken).
		MaxResults(maxResults).
		Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.List failed: %w", err)
	}

	return result, nil
}

func (m *GMail) GetDraft(ctx context.Context, draftID, format string) (*gmail.Draft, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	call := svc.Users.Drafts.Get(gmailUserID, draftID)
	if format != "" {
		call = call.Format(format)
	}

	draft, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.Get failed: %w", err)
	}

	return draft, nil
}

func (m *GMail) SendDraft(ctx context.Context, draftID string) (*gmail.Message, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	msg, err := svc.Users.Drafts.Send(gmailUserID, &gmail.Draft{Id: draftID}).Do()
	if err != nil {
		return nil, fmt.Errorf("drafts.Send failed: %w", err)
	}

	return msg, nil
}
