package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/sanitize"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ObjectsURI is the resource listing live objects.
const ObjectsURI = "arbor://objects"

// Host is the part of the runtime the MCP server drives.
type Host interface {
	Commands() []domain.CommandInfo
	SuggestCommands(id string, max int) []string
	Invoke(ctx context.Context, id string, args ...any) error
	Objects() []*domain.Object
}

// Focuser reports the object shown in the focused tab.
type Focuser interface {
	Focused() (*domain.Object, bool)
}

// InvokeInput is the argument schema of invoke_command.
type InvokeInput struct {
	ID   string `json:"id" jsonschema_description:"Command id, e.g. user.say-hello"`
	Args []any  `json:"args,omitempty" jsonschema_description:"Positional arguments passed to the command"`
}

// InvokeResult is what invoke_command returns.
type InvokeResult struct {
	Command string             `json:"command"`
	Focused *domain.ObjectInfo `json:"focused,omitempty"`
}

// CommandList is what list_commands returns.
type CommandList struct {
	Commands []domain.CommandInfo `json:"commands"`
}

// ObjectList is what list_objects returns.
type ObjectList struct {
	Objects []domain.ObjectInfo `json:"objects"`
}

// Server exposes a host's command surface as MCP tools.
// The runtime is single threaded, so every call is serialized.
type Server struct {
	host      Host
	tabs      Focuser
	logger    *slog.Logger
	mu        sync.Mutex
	mcpServer *server.MCPServer
}

type Option func(*Server)

// WithTabs lets invoke_command report the focused object after a command runs.
func WithTabs(tabs Focuser) Option {
	return func(s *Server) { s.tabs = tabs }
}

// WithLogger sets the server logger. Logs must not go to stdout when serving stdio.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(host Host, opts ...Option) *Server {
	s := &Server{
		host:   host,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mcpServer = server.NewMCPServer("arbor-mcp", strings.TrimSpace(arbor.Version),
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not configured")
	}
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_commands",
		mcp.WithDescription("List the registered commands, as shown in the command palette."),
		mcp.WithOutputSchema[CommandList](),
	), s.handleListCommands)

	s.mcpServer.AddTool(mcp.NewTool("invoke_command",
		mcp.WithDescription("Invoke a command by id and report the focused object afterwards."),
		mcp.WithInputSchema[InvokeInput](),
		mcp.WithOutputSchema[InvokeResult](),
	), s.handleInvoke)

	s.mcpServer.AddTool(mcp.NewTool("list_objects",
		mcp.WithDescription("List the live objects in creation order."),
		mcp.WithOutputSchema[ObjectList](),
	), s.handleListObjects)
}

func (s *Server) handleListCommands(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mcp.NewToolResultStructuredOnly(CommandList{Commands: s.host.Commands()}), nil
}

func (s *Server) handleInvoke(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input InvokeInput
	if err := request.BindArguments(&input); err != nil {
		return mcp.NewToolResultErrorFromErr("invalid invoke arguments", err), nil
	}
	id, err := sanitize.Input(strings.TrimSpace(input.ID), 0)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("invalid command id", err), nil
	}
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	input.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.host.Invoke(ctx, input.ID, input.Args...); err != nil {
		s.logger.WarnContext(ctx, "MCP invoke failed", "command", input.ID, "err", err)
		if errors.Is(err, domain.ErrUnknownCommand) {
			if hints := s.host.SuggestCommands(input.ID, 3); len(hints) > 0 {
				return mcp.NewToolResultError(fmt.Sprintf("%v (did you mean %s?)", err, strings.Join(hints, ", "))), nil
			}
		}
		return mcp.NewToolResultErrorFromErr("invoke failed", err), nil
	}

	result := InvokeResult{Command: input.ID}
	if s.tabs != nil {
		if obj, ok := s.tabs.Focused(); ok {
			info := obj.Info()
			result.Focused = &info
		}
	}
	return mcp.NewToolResultStructuredOnly(result), nil
}

func (s *Server) handleListObjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mcp.NewToolResultStructuredOnly(s.objectList()), nil
}

func (s *Server) objectList() ObjectList {
	objs := s.host.Objects()
	list := ObjectList{Objects: make([]domain.ObjectInfo, 0, len(objs))}
	for _, o := range objs {
		list.Objects = append(list.Objects, o.Info())
	}
	return list
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(ObjectsURI, "Live Objects",
		mcp.WithResourceDescription("Live objects with their tags, state and rendered view"),
		mcp.WithMIMEType("application/json"),
	), s.handleReadObjects)
}

func (s *Server) handleReadObjects(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.mu.Lock()
	list := s.objectList()
	s.mu.Unlock()

	jsonBytes, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode objects: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ObjectsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
