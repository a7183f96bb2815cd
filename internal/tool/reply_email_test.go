package tool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/tool"
)

func replyOriginal() *gmail.Message {
	return &gmail.Message{
		Id:       "m-orig",
		ThreadId: "t-orig",
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "Alice <alice@example.com>"},
				{Name: "To", Value: "me@example.com, Bob <bob@example.com>"},
				{Name: "Cc", Value: "carol@example.com"},
				{Name: "Subject", Value: "Launch plan"},
			},
		},
	}
}

func TestReplyToEmail(t *testing.T) {
	var sentRaw, sentThreadID string

	svc := &gmailSvcMock{
		GetMessageFunc: func(_ context.Context, msgID, format string) (*gmail.Message, error) {
			assert.Equal(t, "m-orig", msgID)
			assert.Equal(t, "full", format)
			return replyOriginal(), nil
		},
		SendMessageFunc: func(_ context.Context, raw, threadID string) (*gmail.Message, error) {
			sentRaw, sentThreadID = raw, threadID
			return &gmail.Message{Id: "m-reply", ThreadId: "t-orig"}, nil
		},
	}
	session := newTestSession(t, svc)

	result := callTool(t, session, "gmail_reply_to_email", tool.ReplyToEmailRequest{
		MessageID: "m-orig",
		BodyText:  "Sounds good.",
	})

	var resp tool.StatusResponse
	unmarshalResult(t, result, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "m-reply", resp.MessageID)
	assert.Equal(t, "t-orig", resp.ThreadID)
	assert.Equal(t, "Reply sent successfully", resp.Message)

	assert.Equal(t, "t-orig", sentThreadID)
	payload := decodeRawPayload(t, sentRaw)
	assert.Contains(t, payload, "To: Alice <alice@example.com>")
	assert.Contains(t, payload, "Subject: Re: Launch plan")
	assert.Contains(t, payload, "In-Reply-To: m-orig")
	assert.Contains(t, payload, "References: t-orig")
	assert.NotContains(t, payload, "bob@example.com")
}

func TestReplyToEmailReplyAll(t *testing.T) {
	var sentRaw string

	svc := &gmailSvcMock{
		GetMessageFunc: func(_ context.Context, _, _ string) (*gmail.Message, error) {
			return replyOriginal(), nil
		},
		SendMessageFunc: func(_ context.Context, raw, _ string) (*gmail.Message, error) {
			sentRaw = raw
			return &gmail.Message{Id: "m-reply", ThreadId: "t-orig"}, nil
		},
	}
	session := newTestSession(t, svc)

	result := callTool(t, session, "gmail_reply_to_email", tool.ReplyToEmailRequest{
		MessageID: "m-orig",
		BodyText:  "Sounds good.",
		ReplyAll:  true,
		CC:        "dave@example.com",
	})

	var resp tool.StatusResponse
	unmarshalResult(t, result, &resp)
	require.True(t, resp.Success)

	payload := decodeRawPayload(t, sentRaw)
	assert.Contains(t, payload, "bob@example.com")
	assert.Contains(t, payload, "carol@example.com")
	assert.Contains(t, payload, "dave@example.com")
}

func TestReplyToEmailKeepsExistingPrefix(t *testing.T) {
	var sentRaw string

	orig := replyOriginal()
	orig.Payload.Headers[3].Value = "RE: Launch plan"

	svc := &gmailSvcMock{
		GetMessageFunc: func(_ context.Context, _, _ string) (*gmail.Message, error) {
			return orig, nil
		},
		SendMessageFunc: func(_ context.Context, raw, _ string) (*gmail.Message, error) {
			sentRaw = raw
			return &gmail.Message{Id: "m-reply", ThreadId: "t-orig"}, nil
		},
	}
	session := newTestSession(t, svc)

	callTool(t, session, "gmail_reply_to_email", tool.ReplyToEmailRequest{
		MessageID: "m-orig",
		BodyText:  "Ack",
	})

	payload := decodeRawPayload(t, sentRaw)
	assert.Contains(t, payload, "Subject: RE: Launch plan")
	assert.NotContains(t, payload, "Re: RE:")
}

func TestReplyToEmailMissingBody(t *testing.T) {
	session := newTestSession(t, &gmailSvcMock{})

	result := callTool(t, session, "gmail_reply_to_email", tool.ReplyToEmailRequest{MessageID: "m-orig"})
	require.False(t, result.IsError)

	var envelope errEnvelope
	unmarshalResult(t, result, &envelope)
	assert.Equal(t, "Either body_text or body_html must be provided", envelope.Error)
}

func TestReplyToEmailUpstreamEnvelope(t *testing.T) {
	svc := &gmailSvcMock{
		GetMessageFunc: func(_ context.Context, _, _ string) (*gmail.Message, error) {
			return nil, errNotStubbed
		},
	}
	session := newTestSession(t, svc)

	result := callTool(t, session, "gmail_reply_to_email", tool.ReplyToEmailRequest{
		MessageID: "m-orig",
		BodyText:  "Ack",
	})
	require.False(t, result.IsError, "reply failures are envelopes, not faults")

	var envelope errEnvelope
	unmarshalResult(t, result, &envelope)
	assert.Contains(t, envelope.Error, "not stubbed")
	assert.False(t, envelope.Success)
}
