package tool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/tool"
)

func TestMessageFlags(t *testing.T) {
	cases := []struct {
		toolName        string
		expectedAdd     []string
		expectedRemove  []string
		expectedMessage string
	}{
		{
			toolName:        "gmail_mark_as_read",
			expectedRemove:  []string{"UNREAD"},
			expectedMessage: "Email marked as read",
		},
		{
			toolName:        "gmail_mark_as_unread",
			expectedAdd:     []string{"UNREAD"},
			expectedMessage: "Email marked as unread",
		},
		{
			toolName:        "gmail_archive_email",
			expectedRemove:  []string{"INBOX"},
			expectedMessage: "Email archived successfully",
		},
		{
			toolName:        "gmail_unarchive_email",
			expectedAdd:     []string{"INBOX"},
			expectedMessage: "Email unarchived successfully",
		},
	}

	for _, tc := range cases {
		t.Run(tc.toolName, func(t *testing.T) {
			var gotAdd, gotRemove []string

			svc := &gmailSvcMock{
				ModifyMessageFunc: func(_ context.Context, msgID string, add, remove []string) (*gmail.Message, error) {
					require.Equal(t, "m-1", msgID)
					gotAdd, gotRemove = add, remove
					return &gmail.Message{Id: msgID}, nil
				},
			}
			session := newTestSession(t, svc)

			result := callTool(t, session, tc.toolName, tool.MessageRequest{MessageID: "m-1"})

			var resp tool.StatusResponse
			unmarshalResult(t, result, &resp)
			assert.True(t, resp.Success)
			assert.Equal(t, "m-1", resp.MessageID)
			assert.Equal(t, tc.expectedMessage, resp.Message)
			assert.Equal(t, tc.expectedAdd, gotAdd)
			assert.Equal(t, tc.expectedRemove, gotRemove)
		})
	}
}

func TestMessageFlagsUpstreamEnvelope(t *testing.T) {
	session := newTestSession(t, &gmailSvcMock{})

	result := callTool(t, session, "gmail_mark_as_read", tool.MessageRequest{MessageID: "m-1"})
	require.False(t, result.IsError)

	var envelope errEnvelope
	unmarshalResult(t, result, &envelope)
	assert.Contains(t, envelope.Error, "not stubbed")
	assert.False(t, envelope.Success)
}
