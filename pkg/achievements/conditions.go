// Package achievements holds the wildcard queue handler that advances
// achievement progress and auto-completes onboarding steps from domain
// events.
package achievements

import (
	"strings"
)

// condition is one AND-combined predicate on the event payload.
type condition struct {
	Field string
	Op    string
	Value interface{}
}

func parseConditions(raw []map[string]interface{}) []condition {
	conds := make([]condition, 0, len(raw))
	for _, m := range raw {
		c := condition{}
		if v, ok := m["field"].(string); ok {
			c.Field = v
		}
		if v, ok := m["op"].(string); ok {
			c.Op = v
		}
		c.Value = m["value"]
		conds = append(conds, c)
	}
	return conds
}

// extractPath walks a dotted path through nested string-keyed maps. The
// second return distinguishes "absent" from "present and null": neq on an
// absent field must be false, not true.
func extractPath(payload map[string]interface{}, path string) (interface{}, bool) {
	if path == "" {
		return nil, false
	}
	parts := strings.Split(path, ".")
	var current interface{} = payload
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// evalConditions evaluates all conditions with AND logic. An empty list
// matches. Unknown ops never match.
func evalConditions(conds []condition, payload map[string]interface{}) bool {
	for _, c := range conds {
		if !evalCondition(c, payload) {
			return false
		}
	}
	return true
}

func evalCondition(c condition, payload map[string]interface{}) bool {
	actual, present := extractPath(payload, c.Field)

	switch c.Op {
	case "eq":
		return present && valuesEqual(actual, c.Value)
	case "neq":
		return present && !valuesEqual(actual, c.Value)
	case "gt", "gte", "lt", "lte":
		if !present {
			return false
		}
		a, aok := toFloat(actual)
		b, bok := toFloat(c.Value)
		if !aok || !bok {
			return false
		}
		switch c.Op {
		case "gt":
			return a > b
		case "gte":
			return a >= b
		case "lt":
			return a < b
		default:
			return a <= b
		}
	case "in":
		list, ok := c.Value.([]interface{})
		if !ok || !present {
			return false
		}
		for _, item := range list {
			if valuesEqual(actual, item) {
				return true
			}
		}
		return false
	case "contains":
		if !present {
			return false
		}
		switch v := actual.(type) {
		case string:
			s, ok := c.Value.(string)
			return ok && strings.Contains(v, s)
		case []interface{}:
			for _, item := range v {
				if valuesEqual(item, c.Value) {
					return true
				}
			}
			return false
		default:
			return false
		}
	default:
		return false
	}
}

// valuesEqual compares numerically when both sides are numbers, so a JSON
// float64 payload value equals an int condition value.
func valuesEqual(a, b interface{}) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
		return false
	}
	return a == b
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
