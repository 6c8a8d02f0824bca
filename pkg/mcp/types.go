// Package mcp implements the MCP surface: a JSON-RPC 2.0 dispatcher over
// HTTP POST exposing tools, resources, and prompts behind scope checks.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// protocolVersion is the MCP protocol revision advertised by initialize.
const protocolVersion = "2025-06-18"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// maxBatchSize caps the number of requests in a JSON-RPC batch.
const maxBatchSize = 10

// maxBodySize caps the request body at 1 MiB.
const maxBodySize = 1 << 20

// request is an incoming JSON-RPC 2.0 message. ID stays raw so string,
// number, and absent ids round-trip unchanged; a missing id marks a
// notification which produces no response.
type request struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func (r *request) isNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// response is an outgoing JSON-RPC 2.0 message.
type response struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Auth describes the caller. Session auth (a logged-in browser session)
// is treated as holding every scope; token callers carry an explicit
// scope set.
type Auth struct {
	UserID  string
	Session bool
	Scopes  []string
}

// HasScope reports whether the caller may use an item requiring scope.
// A nil requirement is public.
func (a Auth) HasScope(scope *string) bool {
	if scope == nil {
		return true
	}
	if a.Session {
		return true
	}
	for _, s := range a.Scopes {
		if s == *scope {
			return true
		}
	}
	return false
}

// TextContent is one text block of a tool result.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is what tools/call returns. Domain-level failures (missing
// scope, invalid arguments, handler errors) set IsError instead of
// raising a JSON-RPC error.
type ToolResult struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// Text builds a single-block text result.
func Text(text string) *ToolResult {
	return &ToolResult{Content: []TextContent{{Type: "text", Text: text}}}
}

// Errorf builds an IsError result.
func Errorf(format string, args ...interface{}) *ToolResult {
	r := Text(fmt.Sprintf(format, args...))
	r.IsError = true
	return r
}

// JSONResult marshals v into a single text block, the MCP convention for
// structured tool output.
func JSONResult(v interface{}) *ToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Errorf("failed to encode result: %v", err)
	}
	return Text(string(data))
}

// ToolHandler executes one tool call with validated arguments.
type ToolHandler func(ctx context.Context, args map[string]interface{}, auth Auth) (*ToolResult, error)

// Tool is a registered MCP tool. Scope nil means public.
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Scope       *string
	Handler     ToolHandler

	resolved *jsonschema.Resolved
}

// ResourceContents is the payload of resources/read.
type ResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text"`
}

// ResourceHandler reads one resource. params carries the variables bound
// by a template match and is empty for exact resources.
type ResourceHandler func(ctx context.Context, uri string, params map[string]string) (*ResourceContents, error)

// Resource is a registered exact-URI resource.
type Resource struct {
	URI         string
	Name        string
	Description string
	MimeType    string
	Scope       *string
	Handler     ResourceHandler
}

// ResourceTemplate is a registered URI template such as
// "gatherhub://groups/{slug}".
type ResourceTemplate struct {
	URITemplate string
	Name        string
	Description string
	MimeType    string
	Scope       *string
	Handler     ResourceHandler
}

// PromptArgument describes one prompt input.
type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// PromptMessage is one message of a rendered prompt.
type PromptMessage struct {
	Role    string      `json:"role"`
	Content TextContent `json:"content"`
}

// PromptResult is what prompts/get returns.
type PromptResult struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
}

// PromptHandler renders one prompt.
type PromptHandler func(ctx context.Context, args map[string]string) (*PromptResult, error)

// Prompt is a registered prompt template.
type Prompt struct {
	Name        string
	Description string
	Arguments   []PromptArgument
	Handler     PromptHandler
}
