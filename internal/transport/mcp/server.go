package mcp

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sandevgo/jotbot/internal/core"
	"github.com/sandevgo/jotbot/internal/journal"
	"github.com/sandevgo/jotbot/pkg/log"
)

const sessionID = "mcp-local"

// Server exposes the journal over MCP stdio so other agents can add
// and query entries in the same session the assistant uses. It owns
// stdio, so it is mutually exclusive with the CLI transport.
type Server struct {
	mcp      *server.MCPServer
	sessions *journal.Sessions
	router   *journal.Router
	resolver *journal.Resolver
}

func NewServer(sessions *journal.Sessions) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(core.JotName, core.JotVersion, server.WithToolCapabilities(false)),
		sessions: sessions,
		router:   journal.NewRouter(),
		resolver: journal.NewResolver(),
	}

	addTool := mcp.NewTool("add_entry",
		mcp.WithDescription("Add a journal entry (note, reminder or shopping item)."),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("entry type"),
			mcp.Enum("note", "reminder", "shopping_item"),
		),
		mcp.WithString("text", mcp.Required(), mcp.Description("entry content")),
		mcp.WithString("category", mcp.Description("short lowercase category")),
		mcp.WithString("due", mcp.Description("due-time phrase for reminders, e.g. \"tomorrow at 2pm\"")),
	)
	s.mcp.AddTool(addTool, s.handleAdd)

	queryTool := mcp.NewTool("query_entries",
		mcp.WithDescription("List stored journal entries filtered by type, category or keyword."),
		mcp.WithString("type", mcp.Enum("note", "reminder", "shopping_item")),
		mcp.WithString("category", mcp.Description("category substring filter")),
		mcp.WithString("keyword", mcp.Description("content substring filter")),
	)
	s.mcp.AddTool(queryTool, s.handleQuery)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting mcp server on stdio")

	stdio := server.NewStdioServer(s.mcp)
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	// Listen returns once the context from Start is cancelled
	return nil
}

func (s *Server) handleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typ, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	draft := core.Draft{
		Type:      core.EntryType(typ),
		Text:      text,
		Category:  req.GetString("category", ""),
		DuePhrase: req.GetString("due", ""),
	}

	sess := s.sessions.Get(sessionID)
	entries, err := s.router.Commit(sess.Store(), []core.Draft{draft})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultError("nothing to add"), nil
	}
	return mcp.NewToolResultText("added entry " + entries[0].ID), nil
}

func (s *Server) handleQuery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := core.Query{
		Type:     core.EntryType(req.GetString("type", "")),
		Category: req.GetString("category", ""),
		Keyword:  req.GetString("keyword", ""),
	}

	sess := s.sessions.Get(sessionID)
	entries := s.resolver.Resolve(sess.Store(), q)

	if len(entries) == 0 {
		return mcp.NewToolResultText("no entries found"), nil
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		line := "- [" + string(e.Type) + "] " + e.Text
		if e.DueAt != nil {
			line += " (due " + e.DueAt.Format("2006-01-02 15:04") + ")"
		}
		out = append(out, line)
	}
	return mcp.NewToolResultText(strings.Join(out, "\n")), nil
}
