package tool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/tool"
)

func TestCreateDraft(t *testing.T) {
	var gotRaw string

	svc := &gmailSvcMock{
		CreateDraftFunc: func(_ context.Context, raw string) (*gmail.Draft, error) {
			gotRaw = raw
			return &gmail.Draft{Id: "d-1", Message: &gmail.Message{Id: "m-1"}}, nil
		},
	}
	session := newTestSession(t, svc)

	result := callTool(t, session, "gmail_create_draft", tool.CreateDraftRequest{
		To:       "alice@example.com",
		Subject:  "WIP",
		BodyText: "Draft body",
	})

	var resp tool.CreateDraftResponse
	unmarshalResult(t, result, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "d-1", resp.DraftID)
	assert.Equal(t, "m-1", resp.MessageID)
	assert.Equal(t, "Draft created successfully for alice@example.com", resp.Message)

	payload := decodeRawPayload(t, gotRaw)
	assert.Contains(t, payload, "Subject: WIP")
	assert.Contains(t, payload, "Draft body")
}

func TestCreateDraftMissingBody(t *testing.T) {
	session := newTestSession(t, &gmailSvcMock{})

	result := callTool(t, session, "gmail_create_draft", tool.CreateDraftRequest{To: "alice@example.com"})
	require.False(t, result.IsError)

	var envelope errEnvelope
	unmarshalResult(t, result, &envelope)
	assert.Equal(t, "Either body_text or body_html must be provided", envelope.Error)
}

func TestGetDrafts(t *testing.T) {
	svc := &gmailSvcMock{
		ListDraftsFunc: func(_ context.Context, q, pageToken string, maxResults int64) (*gmail.ListDraftsResponse, error) {
			assert.Equal(t, "subject:wip after:2026/01/01 before:2026/02/01", q)
			assert.Equal(t, int64(10), maxResults)
			return &gmail.ListDraftsResponse{
				Drafts:        []*gmail.Draft{{Id: "d-1"}, {Id: "d-2"}},
				NextPageToken: "page-2",
			}, nil
		},
	}
	session := newTestSession(t, svc)

	result := callTool(t, session, "gmail_get_drafts", tool.GetDraftsRequest{
		Query:  "subject:wip",
		After:  "2026/01/01",
		Before: "2026/02/01",
	})

	var resp tool.GetDraftsResponse
	unmarshalResult(t, result, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Drafts, 2)
	assert.Equal(t, "page-2", resp.NextPageToken)
	assert.Equal(t, "Found 2 drafts", resp.Message)
}

func TestGetDraftByID(t *testing.T) {
	draft := &gmail.Draft{
		Id: "d-1",
		Message: &gmail.Message{
			Id:       "m-1",
			ThreadId: "t-1",
			Payload: &gmail.MessagePart{
				Headers: []*gmail.MessagePartHeader{
					{Name: "Subject", Value: "WIP"},
				},
			},
		},
	}

	svc := &gmailSvcMock{
		GetDraftFunc: func(_ context.Context, draftID, format string) (*gmail.Draft, error) {
			assert.Equal(t, "d-1", draftID)
			return draft, nil
		},
	}
	session := newTestSession(t, svc)

	t.Run("full", func(t *testing.T) {
		result := callTool(t, session, "gmail_get_draft_by_id", tool.GetDraftRequest{DraftID: "d-1", Format: "full"})

		var resp tool.GetDraftResponse
		unmarshalResult(t, result, &resp)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Draft)
		assert.Nil(t, resp.Summary)
		assert.Equal(t, "Draft d-1 retrieved successfully", resp.Message)
	})

	t.Run("default is compact", func(t *testing.T) {
		result := callTool(t, session, "gmail_get_draft_by_id", tool.GetDraftRequest{DraftID: "d-1"})

		var resp tool.GetDraftResponse
		unmarshalResult(t, result, &resp)
		assert.Nil(t, resp.Draft)
		require.NotNil(t, resp.Summary)
		assert.Equal(t, "m-1", resp.Summary.ID)
		assert.Equal(t, "WIP", resp.Summary.Subject)
	})
}

func TestSendDraft(t *testing.T) {
	svc := &gmailSvcMock{
		SendDraftFunc: func(_ context.Context, draftID string) (*gmail.Message, error) {
			require.Equal(t, "d-1", draftID)
			return &gmail.Message{Id: "m-1", ThreadId: "t-1"}, nil
		},
	}
	session := newTestSession(t, svc)

	result := callTool(t, session, "gmail_send_draft", tool.SendDraftRequest{DraftID: "d-1"})

	var resp tool.StatusResponse
	unmarshalResult(t, result, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "m-1", resp.MessageID)
	assert.Equal(t, "Draft sent successfully", resp.Message)
}
