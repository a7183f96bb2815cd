package gservice

import (
	"context"
	"fmt"

	"google.golang.org/api/gmail/v1"
)

func (m *GMail) ListThreads(ctx context.Context, q, pageToken string, maxResults int64, labelIDs []string, includeSpamTrash bool) (*gmail.ListThreadsResponse, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	call := svc.Users.Threads.List(gmailUserID).
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
		return nil, fmt.Errorf("threads.List failed: %w", err)
	}

	return result, nil
}

func (m *GMail) GetThread(ctx context.Context, threadID, format string) (*gmail.Thread, error) {
	svc, err := m.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	call := svc.Users.Threads.Get(gmailUserID, threadID)
	if format != "" {
		call = call.Format(format)
	}
	if format == "metadata" {
		call = call.MetadataHeaders("From", "To", "Cc", "Subject", "Date")
	}

	thread, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("threads.Get failed: %w", err)
	}

	return thread, nil
}
