package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherhub/gatherhub/ent"
	"github.com/gatherhub/gatherhub/pkg/bus"
	"github.com/gatherhub/gatherhub/pkg/config"
	"github.com/gatherhub/gatherhub/pkg/providers"
	"github.com/gatherhub/gatherhub/pkg/services"
	"github.com/gatherhub/gatherhub/pkg/sync"
	testdb "github.com/gatherhub/gatherhub/test/database"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	catalog := services.NewCatalogService(client.Client)
	rsvps := services.NewRSVPService(client.Client)
	syncSvc := sync.NewService(client.Client, providers.NewRegistry(), bus.NewPublisher(client.Client), &config.Env{})

	reg := NewRegistry()
	RegisterCoreTools(reg, catalog, rsvps, syncSvc)
	RegisterCoreResources(reg, catalog)
	RegisterCorePrompts(reg, catalog)
	reg.Freeze()

	return NewDispatcher(reg), client.Client
}

func rpc(t *testing.T, d *Dispatcher, auth Auth, body string) map[string]interface{} {
	t.Helper()
	out := d.Dispatch(context.Background(), []byte(body), auth)
	require.NotNil(t, out)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &resp))
	return resp
}

func callBody(id int, method string, params interface{}) string {
	msg := map[string]interface{}{"jsonrpc": "2.0", "id": id, "method": method}
	if params != nil {
		msg["params"] = params
	}
	data, _ := json.Marshal(msg)
	return string(data)
}

func resultOf(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	require.Nil(t, resp["error"], "unexpected rpc error: %v", resp["error"])
	result, ok := resp["result"].(map[string]interface{})
	require.True(t, ok)
	return result
}

func errCode(t *testing.T, resp map[string]interface{}) float64 {
	t.Helper()
	errObj, ok := resp["error"].(map[string]interface{})
	require.True(t, ok, "expected an rpc error, got %v", resp)
	return errObj["code"].(float64)
}

func seedCatalogGroup(t *testing.T, client *ent.Client, slug string) *ent.Group {
	t.Helper()
	g, err := client.Group.Create().
		SetID(uuid.NewString()).
		SetSlug(slug).
		SetName(slug).
		Save(context.Background())
	require.NoError(t, err)
	return g
}

func seedCatalogEvent(t *testing.T, client *ent.Client, g *ent.Group, title string) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetID(uuid.NewString()).
		SetPlatform(config.PlatformLocal).
		SetPlatformID(uuid.NewString()).
		SetGroupID(g.ID).
		SetTitle(title).
		SetEventURL("https://example.com/e").
		SetStartTime(time.Now().Add(24 * time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestDispatchParseError(t *testing.T) {
	d, _ := newTestDispatcher(t)
	resp := rpc(t, d, Auth{}, `{not json`)
	assert.Equal(t, float64(-32700), errCode(t, resp))
}

func TestDispatchInvalidRequest(t *testing.T) {
	d, _ := newTestDispatcher(t)

	// Wrong jsonrpc version.
	resp := rpc(t, d, Auth{}, `{"jsonrpc":"1.0","id":1,"method":"ping"}`)
	assert.Equal(t, float64(-32600), errCode(t, resp))

	// Non-object message.
	resp = rpc(t, d, Auth{}, `"ping"`)
	assert.Equal(t, float64(-32600), errCode(t, resp))
}

func TestDispatchMethodNotFound(t *testing.T) {
	d, _ := newTestDispatcher(t)
	resp := rpc(t, d, Auth{}, callBody(1, "tools/uninstall", nil))
	assert.Equal(t, float64(-32601), errCode(t, resp))
}

func TestDispatchNotificationProducesNoResponse(t *testing.T) {
	d, _ := newTestDispatcher(t)
	out := d.Dispatch(context.Background(), []byte(`{"jsonrpc":"2.0","method":"ping"}`), Auth{})
	assert.Nil(t, out)
}

func TestDispatchBatch(t *testing.T) {
	d, _ := newTestDispatcher(t)

	body := fmt.Sprintf("[%s,%s,%s]",
		callBody(1, "ping", nil),
		`{"jsonrpc":"2.0","method":"ping"}`, // notification
		callBody(2, "nope", nil),
	)
	out := d.Dispatch(context.Background(), []byte(body), Auth{})
	require.NotNil(t, out)

	var responses []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &responses))
	require.Len(t, responses, 2, "notification contributes no response")
	assert.Equal(t, float64(1), responses[0]["id"])
	assert.Equal(t, float64(-32601), errCode(t, responses[1]))
}

func TestDispatchBatchTooLarge(t *testing.T) {
	d, _ := newTestDispatcher(t)

	parts := make([]string, 11)
	for i := range parts {
		parts[i] = callBody(i, "ping", nil)
	}
	resp := rpc(t, d, Auth{}, "["+strings.Join(parts, ",")+"]")
	assert.Equal(t, float64(-32600), errCode(t, resp))
}

func TestDispatchBodyTooLarge(t *testing.T) {
	d, _ := newTestDispatcher(t)
	body := `{"jsonrpc":"2.0","id":1,"method":"ping","params":{"pad":"` + strings.Repeat("x", maxBodySize) + `"}}`
	resp := rpc(t, d, Auth{}, body)
	assert.Equal(t, float64(-32600), errCode(t, resp))
}

func TestInitializeAndPing(t *testing.T) {
	d, _ := newTestDispatcher(t)

	result := resultOf(t, rpc(t, d, Auth{}, callBody(1, "initialize", nil)))
	assert.Equal(t, protocolVersion, result["protocolVersion"])
	info := result["serverInfo"].(map[string]interface{})
	assert.Equal(t, "gatherhub", info["name"])

	resp := rpc(t, d, Auth{}, callBody(2, "ping", nil))
	assert.NotNil(t, resp["result"])
}

func toolNames(t *testing.T, d *Dispatcher, auth Auth) []string {
	t.Helper()
	result := resultOf(t, rpc(t, d, auth, callBody(1, "tools/list", nil)))
	raw := result["tools"].([]interface{})
	names := make([]string, 0, len(raw))
	for _, entry := range raw {
		names = append(names, entry.(map[string]interface{})["name"].(string))
	}
	return names
}

func TestToolsListScopeFiltering(t *testing.T) {
	d, _ := newTestDispatcher(t)

	// Public caller sees only unscoped tools.
	public := toolNames(t, d, Auth{})
	assert.ElementsMatch(t, []string{"groups_list", "group_get"}, public)

	// Scoped token sees its scope's tools plus public ones.
	scoped := toolNames(t, d, Auth{Scopes: []string{ScopeReadEvents}})
	assert.ElementsMatch(t, []string{"groups_list", "group_get", "events_list"}, scoped)
	assert.NotContains(t, scoped, "admin_list_users")

	// Session auth sees everything.
	all := toolNames(t, d, Auth{Session: true})
	assert.Contains(t, all, "admin_list_users")
	assert.Contains(t, all, "sync_trigger")
	assert.Contains(t, all, "rsvps_list")
}

func TestToolsCallScopeDenied(t *testing.T) {
	d, _ := newTestDispatcher(t)

	resp := rpc(t, d, Auth{Scopes: []string{"read:groups"}}, callBody(1, "tools/call", map[string]interface{}{
		"name":      "events_list",
		"arguments": map[string]interface{}{},
	}))
	result := resultOf(t, resp)
	assert.Equal(t, true, result["isError"])
	content := result["content"].([]interface{})
	text := content[0].(map[string]interface{})["text"].(string)
	assert.Contains(t, text, "scope")
}

func TestToolsCallValidatesArguments(t *testing.T) {
	d, _ := newTestDispatcher(t)

	// Required argument missing.
	result := resultOf(t, rpc(t, d, Auth{Session: true}, callBody(1, "tools/call", map[string]interface{}{
		"name":      "group_get",
		"arguments": map[string]interface{}{},
	})))
	assert.Equal(t, true, result["isError"])

	// Wrong type.
	result = resultOf(t, rpc(t, d, Auth{Session: true}, callBody(2, "tools/call", map[string]interface{}{
		"name":      "events_list",
		"arguments": map[string]interface{}{"limit": "ten"},
	})))
	assert.Equal(t, true, result["isError"])
}

func TestToolsCallEventsList(t *testing.T) {
	d, client := newTestDispatcher(t)
	g := seedCatalogGroup(t, client, "go-berlin")
	seedCatalogEvent(t, client, g, "GopherCon Warmup")

	result := resultOf(t, rpc(t, d, Auth{Scopes: []string{ScopeReadEvents}}, callBody(1, "tools/call", map[string]interface{}{
		"name":      "events_list",
		"arguments": map[string]interface{}{"group_slug": "go-berlin"},
	})))
	assert.NotEqual(t, true, result["isError"])
	text := result["content"].([]interface{})[0].(map[string]interface{})["text"].(string)
	assert.Contains(t, text, "GopherCon Warmup")
}

func TestToolsCallUnknownTool(t *testing.T) {
	d, _ := newTestDispatcher(t)
	resp := rpc(t, d, Auth{Session: true}, callBody(1, "tools/call", map[string]interface{}{"name": "nope"}))
	assert.Equal(t, float64(-32602), errCode(t, resp))
}

func TestResourcesReadExactAndTemplate(t *testing.T) {
	d, client := newTestDispatcher(t)
	g := seedCatalogGroup(t, client, "go-berlin")
	ev := seedCatalogEvent(t, client, g, "Hack Night")

	// Exact URI.
	result := resultOf(t, rpc(t, d, Auth{}, callBody(1, "resources/read", map[string]interface{}{
		"uri": "gatherhub://groups",
	})))
	contents := result["contents"].([]interface{})
	text := contents[0].(map[string]interface{})["text"].(string)
	assert.Contains(t, text, "go-berlin")

	// Template match.
	result = resultOf(t, rpc(t, d, Auth{}, callBody(2, "resources/read", map[string]interface{}{
		"uri": "gatherhub://groups/go-berlin",
	})))
	text = result["contents"].([]interface{})[0].(map[string]interface{})["text"].(string)
	assert.Contains(t, text, "go-berlin")

	// Scoped template denied for public caller.
	resp := rpc(t, d, Auth{}, callBody(3, "resources/read", map[string]interface{}{
		"uri": "gatherhub://events/" + ev.ID,
	}))
	assert.Equal(t, float64(-32602), errCode(t, resp))

	// Unknown URI.
	resp = rpc(t, d, Auth{}, callBody(4, "resources/read", map[string]interface{}{
		"uri": "gatherhub://nope",
	}))
	assert.Equal(t, float64(-32602), errCode(t, resp))
}

func TestPromptsListAndGet(t *testing.T) {
	d, client := newTestDispatcher(t)
	g := seedCatalogGroup(t, client, "go-berlin")
	ev := seedCatalogEvent(t, client, g, "Release Party")

	result := resultOf(t, rpc(t, d, Auth{}, callBody(1, "prompts/list", nil)))
	prompts := result["prompts"].([]interface{})
	require.Len(t, prompts, 2)

	result = resultOf(t, rpc(t, d, Auth{}, callBody(2, "prompts/get", map[string]interface{}{
		"name":      "event_announcement",
		"arguments": map[string]string{"event_id": ev.ID},
	})))
	messages := result["messages"].([]interface{})
	require.Len(t, messages, 1)
	text := messages[0].(map[string]interface{})["content"].(map[string]interface{})["text"].(string)
	assert.Contains(t, text, "Release Party")

	// Missing required argument.
	resp := rpc(t, d, Auth{}, callBody(3, "prompts/get", map[string]interface{}{
		"name": "event_announcement",
	}))
	assert.Equal(t, float64(-32602), errCode(t, resp))
}

func TestMatchTemplate(t *testing.T) {
	vars, ok := matchTemplate("gatherhub://groups/{slug}", "gatherhub://groups/go-berlin")
	require.True(t, ok)
	assert.Equal(t, "go-berlin", vars["slug"])

	_, ok = matchTemplate("gatherhub://groups/{slug}", "gatherhub://groups")
	assert.False(t, ok)

	_, ok = matchTemplate("gatherhub://groups/{slug}", "gatherhub://events/x")
	assert.False(t, ok)

	_, ok = matchTemplate("gatherhub://groups/{slug}", "gatherhub://groups/")
	assert.False(t, ok)
}
