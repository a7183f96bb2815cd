// Package gservice wraps the Gmail REST API, one method per call.
package gservice

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/inboxkit/gmail-mcp/internal/auth"
)

const gmailUserID = "me"

// NewGmail creates a Gmail wrapper bound to a single access token.
// The token is whatever the caller presented; an empty token makes every
// call fail with auth.ErrNoToken before touching the network.
func NewGmail(accessToken string) *GMail {
	return &GMail{token: accessToken}
}

type GMail struct {
	token string
}

func (m *GMail) ListMessages(ctx context.Context, q, pageToken string, maxResults int64, labelIDs []string, includeSpamTrash bool) (*gmail.ListMessagesResponse, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	call := svc.Users.Messages.List(gmailUserID).
		Q(q).
		PageToken(pageToken).
		MaxResults(maxResults)
	if len(labelIDs) > 0 {
		call = call.LabelIds(labelIDs...)
	}
	if includeSpamTrash {
		call = call.IncludeSpamTrash(true)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("messages.List failed: %w", err)
	}

	return result, nil
}

// GetMessage fetches a single message. format is one of the Gmail API
// values (minimal, metadata, full, raw); metadata requests are trimmed to
// the headers the summary projection needs.
func (m *GMail) GetMessage(ctx context.Context, msgID, format string) (*gmail.Message, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	call := svc.Users.Messages.Get(gmailUserID, msgID)
	if format != "" {
		call = call.Format(format)
	}
	if format == "metadata" {
		call = call.MetadataHeaders("From", "To", "Cc", "Subject", "Date")
	}

	msg, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("messages.Get failed: %w", err)
	}

	return msg, nil
}

// SendMessage sends a raw RFC 2822 message. threadID, when set, places the
// message on an existing thread (used by replies).
func (m *GMail) SendMessage(ctx context.Context, raw, threadID string) (*gmail.Message, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	msg, err := svc.Users.Messages.Send(gmailUserID, &gmail.Message{
		Raw:      raw,
		ThreadId: threadID,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("messages.Send failed: %w", err)
	}

	return msg, nil
}

func (m *GMail) ModifyMessage(ctx context.Context, msgID string, addLabelIDs, removeLabelIDs []string) (*gmail.Message, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	msg, err := svc.Users.Messages.Modify(gmailUserID, msgID, &gmail.ModifyMessageRequest{
		AddLabelIds:    addLabelIDs,
		RemoveLabelIds: removeLabelIDs,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("messages.Modify failed: %w", err)
	}

	return msg, nil
}

func (m *GMail) DeleteMessage(ctx context.Context, msgID string) error {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return fmt.Errorf("newSvc failed: %w", err)
	}

	if err := svc.Users.Messages.Delete(gmailUserID, msgID).Do(); err != nil {
		return fmt.Errorf("messages.Delete failed: %w", err)
	}

	return nil
}

func (m *GMail) GetAttachment(ctx context.Context, msgID, attachmentID string) (*gmail.MessagePartBody, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	attachment, err := svc.Users.Messages.Attachments.Get(gmailUserID, msgID, attachmentID).Do()
	if err != nil {
		return nil, fmt.Errorf("attachments.Get failed: %w", err)
	}

	return attachment, nil
}

func (m *GMail) GetProfile(ctx context.Context) (*gmail.Profile, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	profile, err := svc.Users.GetProfile(gmailUserID).Do()
	if err != nil {
		return nil, fmt.Errorf("users.GetProfile failed: %w", err)
	}

	return profile, nil
}

func (m *GMail) newSvc(ctx context.Context) (*gmail.Service, error) {
	if m.token == "" {
		return nil, auth.ErrNoToken
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: m.token})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, fmt.Errorf("gmail.NewService failed: %w", err)
	}

	return svc, nil
}
