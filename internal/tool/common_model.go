// Package tool exposes Gmail operations as MCP tools.
package tool

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"

	"github.com/inboxkit/gmail-mcp/internal/auth"
)

var (
	errMissingBody      = errors.New("Either body_text or body_html must be provided")
	errMissingRecipient = errors.New("at least one recipient is required")
)

// EmailAddress represents an email address with optional display name.
type EmailAddress struct {
	Name  string `json:"name,omitempty" jsonschema:"the display name"`
	Email string `json:"email" jsonschema:"the email address"`
}

// MessageSummary contains essential message metadata.
type MessageSummary struct {
	ID        string         `json:"id" jsonschema:"message ID"`
	ThreadID  string         `json:"thread_id" jsonschema:"thread ID"`
	LabelIDs  []string       `json:"label_ids,omitempty" jsonschema:"label IDs on the message"`
	Timestamp string         `json:"timestamp,omitempty" jsonschema:"message timestamp"`
	From      EmailAddress   `json:"from,omitempty" jsonschema:"sender information"`
	To        []EmailAddress `json:"to,omitempty" jsonschema:"recipients"`
	CC        []EmailAddress `json:"cc,omitempty" jsonschema:"CC recipients"`
	Subject   string         `json:"subject,omitempty" jsonschema:"email subject"`
	Snippet   string         `json:"snippet,omitempty" jsonschema:"message preview"`
}

// Attachment represents email attachment metadata.
type Attachment struct {
	ID       string `json:"id" jsonschema:"attachment ID"`
	Filename string `json:"filename" jsonschema:"original filename"`
	MimeType string `json:"mime_type" jsonschema:"MIME type"`
	Size     int64  `json:"size" jsonschema:"size in bytes"`
}

// StatusResponse is the envelope for tools whose result is just an outcome.
type StatusResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	ThreadID  string `json:"thread_id,omitempty"`
	Message   string `json:"message"`
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// jsonResult renders v as indented JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("json.MarshalIndent failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}

// failure converts an operation error into the error envelope. A missing
// access token is the exception and stays a hard tool fault.
func failure(op string, err error) (*mcp.CallToolResult, any, error) {
	if errors.Is(err, auth.ErrNoToken) {
		return nil, nil, auth.ErrNoToken
	}

	log.Printf("%s failed: %v", op, err)

	return jsonResult(errorEnvelope{Error: err.Error()})
}

// splitCSV normalizes a comma-separated value list: trimmed, empties
// dropped, order preserved, no deduplication.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeMaxResults(maxResults int64) int64 {
	if maxResults <= 0 {
		return 10
	}
	if maxResults > 100 {
		return 100
	}
	return maxResults
}

// resolveFormat maps a tool-facing format value to the Gmail API one.
// compact is a metadata fetch with a trimmed projection on the way out.
func resolveFormat(format, fallback string) (api string, compact bool, err error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = fallback
	}

	switch f {
	case "compact":
		return "metadata", true, nil
	case "minimal", "metadata", "full", "raw":
		return f, false, nil
	}

	return "", false, fmt.Errorf("unsupported format: %s", format)
}

// buildQuery folds optional date bounds into the Gmail query string; the
// API accepts after:/before: with YYYY/MM/DD or epoch seconds.
func buildQuery(query, after, before string) string {
	parts := make([]string, 0, 3)
	if q := strings.TrimSpace(query); q != "" {
		parts = append(parts, q)
	}
	if after != "" {
		parts = append(parts, "after:"+after)
	}
	if before != "" {
		parts = append(parts, "before:"+before)
	}
	return strings.Join(parts, " ")
}

func extractMessageSummary(msg *gmail.Message) MessageSummary {
	summary := MessageSummary{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		LabelIDs: msg.LabelIds,
		Snippet:  msg.Snippet,
	}

	if msg.Payload != nil && msg.Payload.Headers != nil {
		extractHeadersToSummary(msg.Payload.Headers, &summary)
	}

	return summary
}

func extractHeadersToSummary(headers []*gmail.MessagePartHeader, summary *MessageSummary) {
	for _, header := range headers {
		switch header.Name {
		case "From":
			summary.From = parseEmailAddress(header.Value)
		case "To":
			summary.To = parseEmailAddressList(header.Value)
		case "Cc":
			summary.CC = parseEmailAddressList(header.Value)
		case "Subject":
			summary.Subject = header.Value
		case "Date":
			summary.Timestamp = header.Value
		}
	}
}

func parseEmailAddress(from string) EmailAddress {
	addr := EmailAddress{}

	if idx := strings.Index(from, "<"); idx != -1 {
		addr.Name = strings.TrimSpace(from[:idx])
		if endIdx := strings.Index(from[idx:], ">"); endIdx != -1 {
			addr.Email = strings.TrimSpace(from[idx+1 : idx+endIdx])
		}
	} else {
		addr.Email = strings.TrimSpace(from)
	}

	addr.Name = strings.Trim(addr.Name, "\"")

	return addr
}

func parseEmailAddressList(addresses string) []EmailAddress {
	if addresses == "" {
		return nil
	}

	parts := strings.Split(addresses, ",")
	result := make([]EmailAddress, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, parseEmailAddress(trimmed))
		}
	}

	return result
}

// headerValue returns the first payload header with the given name.
func headerValue(msg *gmail.Message, name string) string {
	if msg == nil || msg.Payload == nil {
		return ""
	}
	for _, h := range msg.Payload.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

func extractMessageBodies(payload *gmail.MessagePart) (textBody, htmlBody string) {
	textBody, htmlBody = extractBodyFromPart(payload)

	for _, part := range payload.Parts {
		partText, partHTML := extractBodyFromPart(part)

		if textBody == "" {
			textBody = partText
		}
		if htmlBody == "" {
			htmlBody = partHTML
		}

		if len(part.Parts) > 0 {
			nestedText, nestedHTML := extractMessageBodies(part)
			if textBody == "" {
				textBody = nestedText
			}
			if htmlBody == "" {
				htmlBody = nestedHTML
			}
		}
	}

	return textBody, htmlBody
}

func extractBodyFromPart(part *gmail.MessagePart) (textBody, htmlBody string) {
	if part.Body == nil || part.Body.Data == "" {
		return "", ""
	}

	switch part.MimeType {
	case "text/plain":
		return decodeBase64URL(part.Body.Data), ""
	case "text/html":
		return "", decodeBase64URL(part.Body.Data)
	default:
		return "", ""
	}
}

func decodeBase64URL(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return data
		}
	}
	return string(decoded)
}

func extractAttachments(payload *gmail.MessagePart) []Attachment {
	var attachments []Attachment

	if payload.Body != nil && payload.Body.AttachmentId != "" {
		attachments = append(attachments, Attachment{
			ID:       payload.Body.AttachmentId,
			Filename: payload.Filename,
			MimeType: payload.MimeType,
			Size:     payload.Body.Size,
		})
	}

	for _, part := range payload.Parts {
		if part.Body != nil && part.Body.AttachmentId != "" {
			attachments = append(attachments, Attachment{
				ID:       part.Body.AttachmentId,
				Filename: part.Filename,
				MimeType: part.MimeType,
				Size:     part.Body.Size,
			})
		}

		if len(part.Parts) > 0 {
			attachments = append(attachments, extractAttachments(part)...)
		}
	}

	return attachments
}
