// Package mcp exposes the validation engine as an MCP server so agent
// tooling can discover forms and validate payloads against them.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/formgate/formgate"
	"github.com/formgate/formgate/internal/catalog"
	"github.com/formgate/formgate/internal/schemas"
	"github.com/formgate/formgate/pkg/domain"
)

// Validator is the part of the engine the MCP surface needs.
type Validator interface {
	Validate(ctx context.Context, sub domain.Submission) domain.ValidationResult
}

// Server wraps the engine and the schema service as an MCP Server.
type Server struct {
	validator Validator
	schemas   *schemas.Service
	catalog   *catalog.Catalog
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(validator Validator, svc *schemas.Service) *Server {
	s := &Server{
		validator: validator,
		schemas:   svc,
		catalog:   catalog.New(),
		mcpServer: server.NewMCPServer("formgate-mcp", strings.TrimSpace(formgate.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_forms
	s.mcpServer.AddTool(mcp.NewTool("list_forms",
		mcp.WithDescription("List the ids of the built-in forms available for validation."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.catalog.IDs())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_form
	getTool := mcp.NewTool("get_form",
		mcp.WithDescription("Get the full configuration of a form: fields, rules, conditions and cross-field validations."),
		mcp.WithString("form_id", mcp.Required(), mcp.Description("Built-in form id or stored schema id")),
	)
	s.mcpServer.AddTool(getTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		formID := request.GetString("form_id", "")
		cfg, err := s.schemas.GetFormConfig(ctx, formID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("form lookup failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(cfg)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: validate_form
	validateTool := mcp.NewTool("validate_form",
		mcp.WithDescription("Validate a payload against a form. Returns the structured result with every rule failure."),
		mcp.WithString("form_id", mcp.Required(), mcp.Description("Built-in form id or stored schema id")),
		mcp.WithString("data", mcp.Required(), mcp.Description("JSON object with the submitted field values")),
		mcp.WithOutputSchema[domain.ValidationResult](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.ValidationResult, error) {
	formID, _ := args["form_id"].(string)
	if formID == "" {
		return domain.ValidationResult{}, fmt.Errorf("form_id is required")
	}

	data := make(map[string]any)
	if dataStr, ok := args["data"].(string); ok && dataStr != "" {
		if err := json.Unmarshal([]byte(dataStr), &data); err != nil {
			return domain.ValidationResult{}, fmt.Errorf("data is not a JSON object: %w", err)
		}
	}

	return s.validator.Validate(ctx, domain.Submission{FormID: formID, Data: data}), nil
}

func (s *Server) registerResources() {
	// EXPOSE: formgate://forms
	s.mcpServer.AddResource(mcp.NewResource("formgate://forms", "Built-in Form Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.catalog.All())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "formgate://forms",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
