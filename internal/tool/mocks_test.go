package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/tool"
)

var errNotStubbed = errors.New("not stubbed")

type gmailSvcMock struct {
	SendMessageFunc   func(ctx context.Context, raw, threadID string) (*gmail.Message, error)
	GetMessageFunc    func(ctx context.Context, msgID, format string) (*gmail.Message, error)
	ModifyMessageFunc func(ctx context.Context, msgID string, addLabelIDs, removeLabelIDs []string) (*gmail.Message, error)
	DeleteMessageFunc func(ctx context.Context, msgID string) error
	GetAttachmentFunc func(ctx context.Context, msgID, attachmentID string) (*gmail.MessagePartBody, error)
	GetProfileFunc    func(ctx context.Context) (*gmail.Profile, error)
	ListMessagesFunc  func(ctx context.Context, q, pageToken string, maxResults int64, labelIDs []string, includeSpamTrash bool) (*gmail.ListMessagesResponse, error)
	ListThreadsFunc   func(ctx context.Context, q, pageToken string, maxResults int64, labelIDs []string, includeSpamTrash bool) (*gmail.ListThreadsResponse, error)
	GetThreadFunc     func(ctx context.Context, threadID, format string) (*gmail.Thread, error)
	CreateDraftFunc   func(ctx context.Context, raw string) (*gmail.Draft, error)
	ListDraftsFunc    func(ctx context.Context, q, pageToken string, maxResults int64) (*gmail.ListDraftsResponse, error)
	GetDraftFunc      func(ctx context.Context, draftID, format string) (*gmail.Draft, error)
	SendDraftFunc     func(ctx context.Context, draftID string) (*gmail.Message, error)
	ListLabelsFunc    func(ctx context.Context) (*gmail.ListLabelsResponse, error)
	CreateLabelFunc   func(ctx context.Context, name, labelListVisibility, messageListVisibility string) (*gmail.Label, error)
}

func (m *gmailSvcMock) SendMessage(ctx context.Context, raw, threadID string) (*gmail.Message, error) {
	if m.SendMessageFunc == nil {
		return nil, errNotStubbed
	}
	return m.SendMessageFunc(ctx, raw, threadID)
}

func (m *gmailSvcMock) GetMessage(ctx context.Context, msgID, format string) (*gmail.Message, error) {
	if m.GetMessageFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetMessageFunc(ctx, msgID, format)
}

func (m *gmailSvcMock) ModifyMessage(ctx context.Context, msgID string, addLabelIDs, removeLabelIDs []string) (*gmail.Message, error) {
	if m.ModifyMessageFunc == nil {
		return nil, errNotStubbed
	}
	return m.ModifyMessageFunc(ctx, msgID, addLabelIDs, removeLabelIDs)
}

func (m *gmailSvcMock) DeleteMessage(ctx context.Context, msgID string) error {
	if m.DeleteMessageFunc == nil {
		return errNotStubbed
	}
	return m.DeleteMessageFunc(ctx, msgID)
}

func (m *gmailSvcMock) GetAttachment(ctx context.Context, msgID, attachmentID string) (*gmail.MessagePartBody, error) {
	if m.GetAttachmentFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetAttachmentFunc(ctx, msgID, attachmentID)
}

func (m *gmailSvcMock) GetProfile(ctx context.Context) (*gmail.Profile, error) {
	if m.GetProfileFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetProfileFunc(ctx)
}

func (m *gmailSvcMock) ListMessages(ctx context.Context, q, pageToken string, maxResults int64, labelIDs []string, includeSpamTrash bool) (*gmail.ListMessagesResponse, error) {
	if m.ListMessagesFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListMessagesFunc(ctx, q, pageToken, maxResults, labelIDs, includeSpamTrash)
}

func (m *gmailSvcMock) ListThreads(ctx context.Context, q, pageToken string, maxResults int64, labelIDs []string, includeSpamTrash bool) (*gmail.ListThreadsResponse, error) {
	if m.ListThreadsFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListThreadsFunc(ctx, q, pageToken, maxResults, labelIDs, includeSpamTrash)
}

func (m *gmailSvcMock) GetThread(ctx context.Context, threadID, format string) (*gmail.Thread, error) {
	if m.GetThreadFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetThreadFunc(ctx, threadID, format)
}

func (m *gmailSvcMock) CreateDraft(ctx context.Context, raw string) (*gmail.Draft, error) {
	if m.CreateDraftFunc == nil {
		return nil, errNotStubbed
	}
	return m.CreateDraftFunc(ctx, raw)
}

func (m *gmailSvcMock) ListDrafts(ctx context.Context, q, pageToken string, maxResults int64) (*gmail.ListDraftsResponse, error) {
	if m.ListDraftsFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListDraftsFunc(ctx, q, pageToken, maxResults)
}

func (m *gmailSvcMock) GetDraft(ctx context.Context, draftID, format string) (*gmail.Draft, error) {
	if m.GetDraftFunc == nil {
		return nil, errNotStubbed
	}
	return m.GetDraftFunc(ctx, draftID, format)
}

func (m *gmailSvcMock) SendDraft(ctx context.Context, draftID string) (*gmail.Message, error) {
	if m.SendDraftFunc == nil {
		return nil, errNotStubbed
	}
	return m.SendDraftFunc(ctx, draftID)
}

func (m *gmailSvcMock) ListLabels(ctx context.Context) (*gmail.ListLabelsResponse, error) {
	if m.ListLabelsFunc == nil {
		return nil, errNotStubbed
	}
	return m.ListLabelsFunc(ctx)
}

func (m *gmailSvcMock) CreateLabel(ctx context.Context, name, labelListVisibility, messageListVisibility string) (*gmail.Label, error) {
	if m.CreateLabelFunc == nil {
		return nil, errNotStubbed
	}
	return m.CreateLabelFunc(ctx, name, labelListVisibility, messageListVisibility)
}

func newTestSession(t *testing.T, svc *gmailSvcMock) *mcp.ClientSession {
	t.Helper()

	server := tool.NewServer(svc)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientSession.Close() })

	return clientSession
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args any) *mcp.CallToolResult {
	t.Helper()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)

	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")

	return text.Text
}

func unmarshalResult(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()

	require.False(t, result.IsError, "unexpected tool error: %s", resultText(t, result))
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), v))
}
