package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// GetThreadsRequest lists conversation threads.
type GetThreadsRequest struct {
	LabelIDs         string `json:"label_ids,omitempty" jsonschema:"comma-separated label IDs to filter by"`
	Query            string `json:"query,omitempty" jsonschema:"Gmail search query"`
	After            string `json:"after,omitempty" jsonschema:"only threads after this date (YYYY/MM/DD)"`
	Before           string `json:"before,omitempty" jsonschema:"only threads before this date (YYYY/MM/DD)"`
	MaxResults       int64  `json:"max_results,omitempty" jsonschema:"max results per page"`
	PageToken        string `json:"page_token,omitempty" jsonschema:"token for pagination"`
	IncludeSpamTrash bool   `json:"include_spam_trash,omitempty" jsonschema:"also search SPAM and TRASH"`
}

// GetThreadsResponse contains one page of threads.
type GetThreadsResponse struct {
	Success            bool            `json:"success"`
	Threads            []*gmail.Thread `json:"threads"`
	NextPageToken      string          `json:"next_page_token,omitempty"`
	ResultSizeEstimate int64           `json:"result_size_estimate,omitempty"`
	Message            string          `json:"message"`
}

// GetThreadRequest fetches a single thread.
type GetThreadRequest struct {
	ThreadID string `json:"thread_id" jsonschema:"ID of the thread"`
	Format   string `json:"format,omitempty" jsonschema:"minimal, compact, full, metadata or raw, default compact"`
}

// GetThreadResponse contains a thread, projected to summaries for the
// compact format.
type GetThreadResponse struct {
	Success  bool             `json:"success"`
	ThreadID string           `json:"thread_id"`
	Thread   *gmail.Thread    `json:"thread,omitempty"`
	Messages []MessageSummary `json:"messages,omitempty"`
	Message  string           `json:"message"`
}

type threadsSvc interface {
	ListThreads(ctx context.Context, q, pageToken string, maxResults int64, labelIDs []string, includeSpamTrash bool) (*gmail.ListThreadsResponse, error)
	GetThread(ctx context.Context, threadID, format string) (*gmail.Thread, error)
}

func NewThreads(svc threadsSvc) *Threads {
	return &Threads{svc: svc}
}

type Threads struct {
	svc threadsSvc
}

func (t *Threads) GetThreads(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetThreadsRequest,
) (*mcp.CallToolResult, any, error) {
	result, err := t.svc.ListThreads(
		ctx,
		buildQuery(input.Query, input.After, input.Before),
		input.PageToken,
		normalizeMaxResults(input.MaxResults),
		splitCSV(input.LabelIDs),
		input.IncludeSpamTrash,
	)
	if err != nil {
		return failure("get_threads", err)
	}

	threads := result.Threads
	if threads == nil {
		threads = []*gmail.Thread{}
	}

	return jsonResult(GetThreadsResponse{
		Success:            true,
		Threads:            threads,
		NextPageToken:      result.NextPageToken,
		ResultSizeEstimate: result.ResultSizeEstimate,
		Message:            fmt.Sprintf("Found %d threads", len(threads)),
	})
}

func (t *Threads) GetThreadByID(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetThreadRequest,
) (*mcp.CallToolResult, any, error) {
	apiFormat, compact, err := resolveFormat(input.Format, "compact")
	if err != nil {
		return failure("get_thread_by_id", err)
	}

	thread, err := t.svc.GetThread(ctx, input.ThreadID, apiFormat)
	if err != nil {
		return failure("get_thread_by_id", err)
	}

	resp := GetThreadResponse{
		Success:  true,
		ThreadID: thread.Id,
		Message:  fmt.Sprintf("Thread %s retrieved successfully", thread.Id),
	}

	if compact {
		resp.Messages = make([]MessageSummary, 0, len(thread.Messages))
		for _, msg := range thread.Messages {
			resp.Messages = append(resp.Messages, extractMessageSummary(msg))
		}
	} else {
		resp.Thread = thread
	}

	return jsonResult(resp)
}
