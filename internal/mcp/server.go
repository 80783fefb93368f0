// Package mcp implements the MCP JSON-RPC surface over the article
// pipeline: tool schemas, request routing, argument validation, and the
// translation of pipeline results into protocol responses. Diagnostics
// live here; the pipeline packages themselves never log.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonesrussell/mcp-aws-news/internal/extract"
	"github.com/jonesrussell/mcp-aws-news/internal/logger"
	"github.com/jonesrussell/mcp-aws-news/internal/news"
)

// serverVersion is reported in the initialize handshake.
const serverVersion = "1.0.0"

// ArticleFetcher retrieves the cached article index.
type ArticleFetcher interface {
	FetchArticles(ctx context.Context, limit int) ([]news.Article, error)
}

// ContentExtractor extracts structured content from an article page.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) extract.Content
}

// Server handles MCP protocol requests.
type Server struct {
	fetcher   ArticleFetcher
	extractor ContentExtractor
	log       logger.Logger
}

// NewServer creates a new MCP server.
func NewServer(fetcher ArticleFetcher, extractor ContentExtractor, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		fetcher:   fetcher,
		extractor: extractor,
		log:       log,
	}
}

// HandleRequest processes an MCP request with a background context.
func (s *Server) HandleRequest(req *Request) *Response {
	return s.HandleRequestWithContext(context.Background(), req)
}

// HandleRequestWithContext processes an MCP request and returns a response.
// Returns nil for notifications (requests without ID) on unknown methods -
// they don't require responses.
func (s *Server) HandleRequestWithContext(ctx context.Context, req *Request) *Response {
	requestID := req.ID

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req, requestID)
	case "tools/list":
		return s.handleToolsList(req, requestID)
	case "tools/call":
		return s.handleToolsCall(ctx, req, requestID)
	case "prompts/list":
		return s.handlePromptsList(req, requestID)
	case "prompts/get":
		return s.handlePromptsGet(req, requestID)
	case "resources/list":
		return s.handleResourcesList(req, requestID)
	case "resources/read":
		return s.handleResourcesRead(req, requestID)
	case "ping":
		return &Response{
			JSONRPC: "2.0",
			ID:      requestID,
			Result:  json.RawMessage(`"pong"`),
		}
	}

	// Unknown method - notifications (no ID) don't require responses
	if requestID == nil {
		return nil
	}

	return s.errorResponse(requestID, MethodNotFound, "Method not found")
}

func (s *Server) handleInitialize(_ *Request, id any) *Response {
	result := map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"prompts":   map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    "aws-news-mcp",
			"version": serverVersion,
		},
	}

	return s.marshalResponse(id, result)
}

func (s *Server) handleToolsList(_ *Request, id any) *Response {
	return s.marshalResponse(id, map[string]any{
		"tools": getAllTools(),
	})
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request, id any) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid parameters")
	}

	s.log.Debug("tool call", logger.String("tool", params.Name))

	return s.routeToolCall(ctx, id, params.Name, params.Arguments)
}

func (s *Server) routeToolCall(ctx context.Context, id any, toolName string, arguments json.RawMessage) *Response {
	// arguments may be omitted entirely; treat that as no arguments.
	if len(arguments) == 0 {
		arguments = json.RawMessage(`{}`)
	}

	switch toolName {
	case "get_todays_posts":
		return s.handleGetTodaysPosts(ctx, id, arguments)
	case "get_posts_by_date":
		return s.handleGetPostsByDate(ctx, id, arguments)
	case "get_posts_by_category":
		return s.handleGetPostsByCategory(ctx, id, arguments)
	case "search_posts":
		return s.handleSearchPosts(ctx, id, arguments)
	case "get_categories":
		return s.handleGetCategories(ctx, id, arguments)
	case "get_latest_posts":
		return s.handleGetLatestPosts(ctx, id, arguments)
	case "get_popular_posts":
		return s.handleGetPopularPosts(ctx, id, arguments)
	case "get_article_content":
		return s.handleGetArticleContent(ctx, id, arguments)
	default:
		return s.errorResponse(id, MethodNotFound, "Unknown tool: "+toolName)
	}
}

func (s *Server) handlePromptsList(_ *Request, id any) *Response {
	return s.marshalResponse(id, map[string]any{
		"prompts": getAllPrompts(),
	})
}

func (s *Server) handlePromptsGet(req *Request, id any) *Response {
	name, arguments, errMsg := parsePromptsGetParams(req.Params)
	if errMsg != "" {
		return s.errorResponse(id, InvalidParams, errMsg)
	}

	messages, err := getPromptByName(name, arguments)
	if err != nil {
		return s.errorResponse(id, InvalidParams, err.Error())
	}

	return s.marshalResponse(id, map[string]any{
		"messages": messages,
	})
}

func (s *Server) handleResourcesList(_ *Request, id any) *Response {
	return s.marshalResponse(id, map[string]any{
		"resources": getAllResources(),
	})
}

func (s *Server) handleResourcesRead(req *Request, id any) *Response {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(id, InvalidParams, "Invalid parameters: "+err.Error())
	}
	if params.URI == "" {
		return s.errorResponse(id, InvalidParams, "uri is required")
	}

	contents, err := readResource(params.URI)
	if err != nil {
		return s.errorResponse(id, ResourceNotFound, err.Error())
	}

	return s.marshalResponse(id, map[string]any{
		"contents": contents,
	})
}

// Helper methods

// resultResponse wraps data as an MCP tool result. Structured domain
// failures (success:false payloads) travel through here too - only
// protocol-level faults use JSON-RPC errors.
func (s *Server) resultResponse(id, data any) *Response {
	result := map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": formatResult(data),
			},
		},
		"isError": false,
	}

	return s.marshalResponse(id, result)
}

func (s *Server) marshalResponse(id any, result any) *Response {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return s.errorResponse(id, InternalError, fmt.Sprintf("Failed to marshal result: %v", err))
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  json.RawMessage(resultJSON),
	}
}

func (s *Server) errorResponse(id any, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ErrorObject{
			Code:    code,
			Message: message,
		},
	}
}

func formatResult(data any) string {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(jsonData)
}
