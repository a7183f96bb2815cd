package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type gmailSvc interface {
	sendEmailSvc
	replyToEmailSvc
	forwardEmailSvc
	moveToFolderSvc
	messageFlagsSvc
	deleteEmailSvc
	labelsSvc
	threadsSvc
	draftsSvc
	attachmentsSvc
	messagesSvc
	profileSvc
}

// NewServer creates an MCP server with Gmail tools. Each server is bound
// to one access token via svc, so HTTP transports build one per request.
func NewServer(svc gmailSvc) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "gmail-mcp", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_send_email",
		Description: "Send an email with text and/or HTML body to comma-separated recipients",
	}, NewSendEmail(svc).SendEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_reply_to_email",
		Description: "Reply to an email on its existing thread, deriving recipients and subject from the original",
	}, NewReplyToEmail(svc).ReplyToEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_forward_email",
		Description: "Forward an email to new recipients with an optional note above the original content",
	}, NewForwardEmail(svc).ForwardEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_move_to_folder",
		Description: "Move an email into a folder-like label, removing it from the inbox unless told otherwise",
	}, NewMoveToFolder(svc).MoveToFolder)

	messages := NewMessages(svc)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_emails",
		Description: "List emails with optional label, query and date filters",
	}, messages.GetEmails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_search_emails",
		Description: "Search emails using Gmail search syntax",
	}, messages.SearchEmails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_email_by_id",
		Description: "Get a single email by ID in the requested format",
	}, messages.GetEmailByID)

	threads := NewThreads(svc)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_threads",
		Description: "List conversation threads with optional label, query and date filters",
	}, threads.GetThreads)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_thread_by_id",
		Description: "Get a conversation thread by ID in the requested format",
	}, threads.GetThreadByID)

	drafts := NewDrafts(svc)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_create_draft",
		Description: "Create a draft email without sending it",
	}, drafts.CreateDraft)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_drafts",
		Description: "List draft emails",
	}, drafts.GetDrafts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_draft_by_id",
		Description: "Get a draft by ID in the requested format",
	}, drafts.GetDraftByID)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_send_draft",
		Description: "Send an existing draft",
	}, drafts.SendDraft)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_attachments",
		Description: "List an email's attachments, or download one by attachment ID",
	}, NewAttachments(svc).GetAttachments)

	flags := NewMessageFlags(svc)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_mark_as_read",
		Description: "Mark an email as read",
	}, flags.MarkAsRead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_mark_as_unread",
		Description: "Mark an email as unread",
	}, flags.MarkAsUnread)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_archive_email",
		Description: "Archive an email (remove it from the inbox)",
	}, flags.ArchiveEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_unarchive_email",
		Description: "Move an archived email back to the inbox",
	}, flags.UnarchiveEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_delete_email",
		Description: "Permanently delete an email",
	}, NewDeleteEmail(svc).DeleteEmail)

	labels := NewLabels(svc)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_add_label",
		Description: "Add labels to an email",
	}, labels.AddLabel)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_remove_label",
		Description: "Remove labels from an email",
	}, labels.RemoveLabel)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_create_label",
		Description: "Create a new label",
	}, labels.CreateLabel)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_labels",
		Description: "List all labels in the mailbox",
	}, labels.GetLabels)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gmail_get_profile",
		Description: "Get the mailbox profile (address, message and thread counts)",
	}, NewProfile(svc).GetProfile)

	return server
}
