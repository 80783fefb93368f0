package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonesrussell/mcp-aws-news/internal/config"
	"github.com/jonesrussell/mcp-aws-news/internal/extract"
	"github.com/jonesrussell/mcp-aws-news/internal/logger"
	"github.com/jonesrussell/mcp-aws-news/internal/mcp"
	"github.com/jonesrussell/mcp-aws-news/internal/news"
)

func main() {
	cfg := config.LoadOrDefault(config.GetConfigPath("config.yml"))

	// Only JSON goes to stdout for the MCP protocol; logs go to stderr.
	log := logger.Must(cfg.Logging)
	defer func() { _ = log.Sync() }()

	newsClient := news.NewClient(cfg.Feed.URL,
		news.WithCacheTTL(time.Duration(cfg.Feed.CacheTTLSeconds)*time.Second),
		news.WithTimeout(time.Duration(cfg.Client.HTTPTimeoutSeconds)*time.Second),
	)
	defer newsClient.Close()

	// The extractor shares the feed client's connection pool.
	extractor := extract.New(newsClient.HTTPClient())

	server := mcp.NewServer(newsClient, extractor, log)

	log.Info("aws-news-mcp initialized", logger.String("feed_url", cfg.Feed.URL))

	reader := bufio.NewReader(os.Stdin)
	writer := os.Stdout

	// MCP clients expect compact JSON, so no SetIndent here.
	decoder := json.NewDecoder(reader)
	encoder := json.NewEncoder(writer)

	for {
		var request mcp.Request
		if err := decoder.Decode(&request); err != nil {
			if err == io.EOF {
				break
			}
			// For parse errors the request ID is unavailable; JSON-RPC
			// requires a string or number ID, never null.
			sendError(encoder, 0, mcp.ParseError, "Failed to parse request")
			continue
		}

		response := server.HandleRequest(&request)
		if response == nil {
			continue
		}

		// JSON-RPC notifications (requests without ID) don't get responses.
		if request.ID == nil {
			continue
		}
		if response.ID == nil {
			response.ID = request.ID
		}

		if encodeErr := encoder.Encode(response); encodeErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode response: %v\n", encodeErr)
		}
	}
}

func sendError(encoder *json.Encoder, id any, code int, message string) {
	errorResponse := mcp.ErrorResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: mcp.ErrorObject{
			Code:    code,
			Message: message,
		},
	}
	if encodeErr := encoder.Encode(errorResponse); encodeErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode error response: %v\n", encodeErr)
	}
}
