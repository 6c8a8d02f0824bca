package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gatherhub/gatherhub/pkg/version"
)

// Dispatcher executes JSON-RPC 2.0 messages against the registry.
// It accepts a single request object or a batch of up to maxBatchSize;
// the transport layer owns the HTTP plumbing and passes the raw body.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over a frozen registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   slog.With("component", "mcp"),
	}
}

// Dispatch parses and executes one body. The returned bytes are the
// serialized response, or nil when every message was a notification.
func (d *Dispatcher) Dispatch(ctx context.Context, body []byte, auth Auth) []byte {
	if len(body) > maxBodySize {
		return marshalResponse(errorResponse(nil, codeInvalidRequest, "request body exceeds 1 MiB"))
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return marshalResponse(errorResponse(nil, codeParseError, "parse error"))
	}

	if isBatch(raw) {
		return d.dispatchBatch(ctx, raw, auth)
	}

	resp := d.dispatchOne(ctx, raw, auth)
	if resp == nil {
		return nil
	}
	return marshalResponse(*resp)
}

func (d *Dispatcher) dispatchBatch(ctx context.Context, raw json.RawMessage, auth Auth) []byte {
	var messages []json.RawMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return marshalResponse(errorResponse(nil, codeParseError, "parse error"))
	}
	if len(messages) == 0 {
		return marshalResponse(errorResponse(nil, codeInvalidRequest, "empty batch"))
	}
	if len(messages) > maxBatchSize {
		return marshalResponse(errorResponse(nil, codeInvalidRequest,
			fmt.Sprintf("batch exceeds %d requests", maxBatchSize)))
	}

	responses := make([]response, 0, len(messages))
	for _, msg := range messages {
		if resp := d.dispatchOne(ctx, msg, auth); resp != nil {
			responses = append(responses, *resp)
		}
	}
	if len(responses) == 0 {
		return nil
	}
	data, err := json.Marshal(responses)
	if err != nil {
		d.logger.Error("failed to marshal batch response", "error", err)
		return marshalResponse(errorResponse(nil, codeInternalError, "internal error"))
	}
	return data
}

// dispatchOne handles a single message. Returns nil for notifications.
func (d *Dispatcher) dispatchOne(ctx context.Context, raw json.RawMessage, auth Auth) *response {
	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		resp := errorResponse(nil, codeInvalidRequest, "invalid request")
		return &resp
	}
	if req.Jsonrpc != "2.0" || req.Method == "" {
		resp := errorResponse(req.ID, codeInvalidRequest, "invalid request")
		return &resp
	}

	result, rpcErr := d.call(ctx, &req, auth)

	if req.isNotification() {
		return nil
	}
	if rpcErr != nil {
		resp := response{Jsonrpc: "2.0", ID: req.ID, Error: rpcErr}
		return &resp
	}
	resp := response{Jsonrpc: "2.0", ID: req.ID, Result: result}
	return &resp
}

func (d *Dispatcher) call(ctx context.Context, req *request, auth Auth) (interface{}, *rpcError) {
	switch req.Method {
	case "initialize":
		return d.initialize(), nil
	case "ping":
		return map[string]interface{}{}, nil
	case "tools/list":
		return d.listTools(auth), nil
	case "tools/call":
		return d.callTool(ctx, req.Params, auth)
	case "resources/list":
		return d.listResources(auth), nil
	case "resources/templates/list":
		return d.listTemplates(auth), nil
	case "resources/read":
		return d.readResource(ctx, req.Params, auth)
	case "prompts/list":
		return d.listPrompts(), nil
	case "prompts/get":
		return d.getPrompt(ctx, req.Params)
	default:
		return nil, &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}
}

func (d *Dispatcher) initialize() interface{} {
	return map[string]interface{}{
		"protocolVersion": protocolVersion,
		"serverInfo": map[string]interface{}{
			"name":    version.AppName,
			"version": version.GitCommit,
		},
		"capabilities": map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
			"prompts":   map[string]interface{}{},
		},
	}
}

func (d *Dispatcher) listTools(auth Auth) interface{} {
	tools := d.registry.toolsFor(auth)
	out := make([]map[string]interface{}, 0, len(tools))
	for _, t := range tools {
		entry := map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
		}
		if t.InputSchema != nil {
			entry["inputSchema"] = t.InputSchema
		}
		out = append(out, entry)
	}
	return map[string]interface{}{"tools": out}
}

func (d *Dispatcher) callTool(ctx context.Context, params json.RawMessage, auth Auth) (interface{}, *rpcError) {
	var p struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &p); err != nil || p.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "tools/call requires a tool name"}
	}

	tool, ok := d.registry.tool(p.Name)
	if !ok {
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown tool: %s", p.Name)}
	}

	// Missing scope is a tool-level failure, not a protocol error.
	if !auth.HasScope(tool.Scope) {
		return Errorf("missing required scope %q for tool %s", *tool.Scope, tool.Name), nil
	}

	args := p.Arguments
	if args == nil {
		args = map[string]interface{}{}
	}
	if tool.resolved != nil {
		if err := tool.resolved.Validate(args); err != nil {
			return Errorf("invalid arguments: %v", err), nil
		}
	}

	result, err := tool.Handler(ctx, args, auth)
	if err != nil {
		d.logger.Error("tool handler failed", "tool", tool.Name, "error", err)
		return Errorf("tool %s failed: %v", tool.Name, err), nil
	}
	return result, nil
}

func (d *Dispatcher) listResources(auth Auth) interface{} {
	resources := d.registry.resourcesFor(auth)
	out := make([]map[string]interface{}, 0, len(resources))
	for _, res := range resources {
		out = append(out, map[string]interface{}{
			"uri":         res.URI,
			"name":        res.Name,
			"description": res.Description,
			"mimeType":    res.MimeType,
		})
	}
	return map[string]interface{}{"resources": out}
}

func (d *Dispatcher) listTemplates(auth Auth) interface{} {
	templates := d.registry.templatesFor(auth)
	out := make([]map[string]interface{}, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, map[string]interface{}{
			"uriTemplate": tpl.URITemplate,
			"name":        tpl.Name,
			"description": tpl.Description,
			"mimeType":    tpl.MimeType,
		})
	}
	return map[string]interface{}{"resourceTemplates": out}
}

func (d *Dispatcher) readResource(ctx context.Context, params json.RawMessage, auth Auth) (interface{}, *rpcError) {
	var p struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(params, &p); err != nil || p.URI == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "resources/read requires a uri"}
	}

	handler, scope, vars, ok := d.registry.resolveResource(p.URI)
	if !ok {
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown resource: %s", p.URI)}
	}
	if !auth.HasScope(scope) {
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("missing required scope %q", *scope)}
	}

	contents, err := handler(ctx, p.URI, vars)
	if err != nil {
		d.logger.Error("resource read failed", "uri", p.URI, "error", err)
		return nil, &rpcError{Code: codeInternalError, Message: "resource read failed"}
	}
	return map[string]interface{}{"contents": []*ResourceContents{contents}}, nil
}

func (d *Dispatcher) listPrompts() interface{} {
	prompts := d.registry.promptsSorted()
	out := make([]map[string]interface{}, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"arguments":   p.Arguments,
		})
	}
	return map[string]interface{}{"prompts": out}
}

func (d *Dispatcher) getPrompt(ctx context.Context, params json.RawMessage) (interface{}, *rpcError) {
	var p struct {
		Name      string            `json:"name"`
		Arguments map[string]string `json:"arguments"`
	}
	if err := json.Unmarshal(params, &p); err != nil || p.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "prompts/get requires a name"}
	}

	prompt, ok := d.registry.prompt(p.Name)
	if !ok {
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("unknown prompt: %s", p.Name)}
	}
	for _, arg := range prompt.Arguments {
		if arg.Required {
			if _, present := p.Arguments[arg.Name]; !present {
				return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("missing required argument %q", arg.Name)}
			}
		}
	}

	result, err := prompt.Handler(ctx, p.Arguments)
	if err != nil {
		d.logger.Error("prompt render failed", "prompt", prompt.Name, "error", err)
		return nil, &rpcError{Code: codeInternalError, Message: "prompt render failed"}
	}
	return result, nil
}

// isBatch reports whether the first non-space byte opens a JSON array.
func isBatch(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

func errorResponse(id json.RawMessage, code int, message string) response {
	if id == nil {
		id = json.RawMessage("null")
	}
	return response{Jsonrpc: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}
}

func marshalResponse(resp response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		// Static fallback, cannot fail.
		return []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"internal error"}}`)
	}
	return data
}
