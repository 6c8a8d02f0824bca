package mcp

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Registry holds the process-wide tool/resource/prompt maps. Everything
// registers during composition-root startup; Freeze() then makes the
// registry read-only. Registration after Freeze panics, as does a
// duplicate name, both are programmer errors caught at boot.
type Registry struct {
	tools     map[string]*Tool
	resources map[string]*Resource
	templates []*ResourceTemplate
	prompts   map[string]*Prompt
	frozen    atomic.Bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:     make(map[string]*Tool),
		resources: make(map[string]*Resource),
		prompts:   make(map[string]*Prompt),
	}
}

// RegisterTool adds a tool and resolves its input schema once.
func (r *Registry) RegisterTool(t *Tool) {
	r.mustMutate()
	if _, exists := r.tools[t.Name]; exists {
		panic(fmt.Sprintf("mcp: tool %q registered twice", t.Name))
	}
	if t.InputSchema != nil {
		resolved, err := t.InputSchema.Resolve(nil)
		if err != nil {
			panic(fmt.Sprintf("mcp: tool %q has invalid schema: %v", t.Name, err))
		}
		t.resolved = resolved
	}
	r.tools[t.Name] = t
}

// RegisterResource adds an exact-URI resource.
func (r *Registry) RegisterResource(res *Resource) {
	r.mustMutate()
	if _, exists := r.resources[res.URI]; exists {
		panic(fmt.Sprintf("mcp: resource %q registered twice", res.URI))
	}
	r.resources[res.URI] = res
}

// RegisterTemplate adds a URI-template resource.
func (r *Registry) RegisterTemplate(tpl *ResourceTemplate) {
	r.mustMutate()
	r.templates = append(r.templates, tpl)
}

// RegisterPrompt adds a prompt.
func (r *Registry) RegisterPrompt(p *Prompt) {
	r.mustMutate()
	if _, exists := r.prompts[p.Name]; exists {
		panic(fmt.Sprintf("mcp: prompt %q registered twice", p.Name))
	}
	r.prompts[p.Name] = p
}

// Freeze ends the registration phase.
func (r *Registry) Freeze() {
	r.frozen.Store(true)
}

func (r *Registry) mustMutate() {
	if r.frozen.Load() {
		panic("mcp: registration after Freeze")
	}
}

// toolsFor returns the tools the caller's scopes admit, sorted by name.
func (r *Registry) toolsFor(auth Auth) []*Tool {
	tools := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		if auth.HasScope(t.Scope) {
			tools = append(tools, t)
		}
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

func (r *Registry) tool(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

func (r *Registry) resourcesFor(auth Auth) []*Resource {
	out := make([]*Resource, 0, len(r.resources))
	for _, res := range r.resources {
		if auth.HasScope(res.Scope) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URI < out[j].URI })
	return out
}

func (r *Registry) templatesFor(auth Auth) []*ResourceTemplate {
	out := make([]*ResourceTemplate, 0, len(r.templates))
	for _, tpl := range r.templates {
		if auth.HasScope(tpl.Scope) {
			out = append(out, tpl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URITemplate < out[j].URITemplate })
	return out
}

func (r *Registry) promptsSorted() []*Prompt {
	out := make([]*Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) prompt(name string) (*Prompt, bool) {
	p, ok := r.prompts[name]
	return p, ok
}

// resolveResource finds a resource by exact URI first, then by template
// match, returning the bound template variables.
func (r *Registry) resolveResource(uri string) (handler ResourceHandler, scope *string, params map[string]string, ok bool) {
	if res, found := r.resources[uri]; found {
		return res.Handler, res.Scope, map[string]string{}, true
	}
	for _, tpl := range r.templates {
		if vars, matched := matchTemplate(tpl.URITemplate, uri); matched {
			return tpl.Handler, tpl.Scope, vars, true
		}
	}
	return nil, nil, nil, false
}

// matchTemplate binds a URI against a template with {var} segments.
// Variables match one path segment; literal parts must match exactly.
func matchTemplate(template, uri string) (map[string]string, bool) {
	tParts := strings.Split(template, "/")
	uParts := strings.Split(uri, "/")
	if len(tParts) != len(uParts) {
		return nil, false
	}

	vars := map[string]string{}
	for i, part := range tParts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			value := uParts[i]
			if value == "" {
				return nil, false
			}
			vars[part[1:len(part)-1]] = value
			continue
		}
		if part != uParts[i] {
			return nil, false
		}
	}
	return vars, true
}
