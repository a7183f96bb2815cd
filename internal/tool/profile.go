package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/gmail/v1"
)

// GetProfileResponse reports the authenticated mailbox profile.
type GetProfileResponse struct {
	Success       bool   `json:"success"`
	EmailAddress  string `json:"email_address"`
	MessagesTotal int64  `json:"messages_total"`
	ThreadsTotal  int64  `json:"threads_total"`
	HistoryID     uint64 `json:"history_id"`
	Message       string `json:"message"`
}

type profileSvc interface {
	GetProfile(ctx context.Context) (*gmail.Profile, error)
}

func NewProfile(svc profileSvc) *Profile {
	return &Profile{svc: svc}
}

type Profile struct {
	svc profileSvc
}

func (t *Profile) GetProfile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, any, error) {
	profile, err := t.svc.GetProfile(ctx)
	if err != nil {
		return failure("get_profile", err)
	}

	return jsonResult(GetProfileResponse{
		Success:       true,
		EmailAddress:  profile.EmailAddress,
		MessagesTotal: profile.MessagesTotal,
		ThreadsTotal:  profile.ThreadsTotal,
		HistoryID:     profile.HistoryId,
		Message:       "Profile retrieved successfully",
	})
}
