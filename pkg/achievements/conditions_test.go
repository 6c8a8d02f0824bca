package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func payload() map[string]interface{} {
	return map[string]interface{}{
		"group_slug": "go-berlin",
		"count":      float64(5),
		"tags":       []interface{}{"go", "backend"},
		"nested": map[string]interface{}{
			"city": "Berlin",
		},
		"nullable": nil,
	}
}

func TestEvalConditions(t *testing.T) {
	tests := []struct {
		name string
		cond condition
		want bool
	}{
		{"eq match", condition{"group_slug", "eq", "go-berlin"}, true},
		{"eq mismatch", condition{"group_slug", "eq", "other"}, false},
		{"eq numeric int vs float", condition{"count", "eq", 5}, true},
		{"neq present", condition{"group_slug", "neq", "other"}, true},
		{"neq absent is false", condition{"missing", "neq", "x"}, false},
		{"gt", condition{"count", "gt", 4}, true},
		{"gte equal", condition{"count", "gte", 5}, true},
		{"lt false", condition{"count", "lt", 5}, false},
		{"lte", condition{"count", "lte", 5}, true},
		{"in match", condition{"group_slug", "in", []interface{}{"a", "go-berlin"}}, true},
		{"in non-list value", condition{"group_slug", "in", "go-berlin"}, false},
		{"contains string", condition{"group_slug", "contains", "berlin"}, true},
		{"contains list", condition{"tags", "contains", "go"}, true},
		{"contains miss", condition{"tags", "contains", "rust"}, false},
		{"dotted path", condition{"nested.city", "eq", "Berlin"}, true},
		{"dotted path absent", condition{"nested.country", "eq", "DE"}, false},
		{"unknown op", condition{"group_slug", "matches", "go-.*"}, false},
		{"numeric op on string", condition{"group_slug", "gt", 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalConditions([]condition{tt.cond}, payload()))
		})
	}
}

func TestEvalConditionsAndLogic(t *testing.T) {
	conds := []condition{
		{"group_slug", "eq", "go-berlin"},
		{"count", "gte", 3},
	}
	assert.True(t, evalConditions(conds, payload()))

	conds = append(conds, condition{"count", "gt", 10})
	assert.False(t, evalConditions(conds, payload()))

	// Empty list matches everything.
	assert.True(t, evalConditions(nil, payload()))
}

func TestExtractPathPresentNull(t *testing.T) {
	// Present-and-null is distinct from absent.
	v, present := extractPath(payload(), "nullable")
	assert.True(t, present)
	assert.Nil(t, v)

	_, present = extractPath(payload(), "missing")
	assert.False(t, present)
}

func TestParseConditions(t *testing.T) {
	raw := []map[string]interface{}{
		{"field": "a", "op": "eq", "value": "b"},
		{"field": "n", "op": "gt", "value": float64(3)},
	}
	conds := parseConditions(raw)
	assert.Len(t, conds, 2)
	assert.Equal(t, "a", conds[0].Field)
	assert.Equal(t, "gt", conds[1].Op)
}
