// Package prune compacts decoded JSON trees by removing absent values.
package prune

import (
	"encoding/json"
	"fmt"
)

// Nulls recursively removes object keys whose value is JSON null. Arrays are
// rebuilt with each element pruned in place; a null array element is kept,
// since dropping it would shift positions. Scalars, including false, 0 and
// the empty string, pass through untouched. The transform is idempotent.
func Nulls(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = Nulls(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = Nulls(e)
		}
		return out
	default:
		return v
	}
}

// Document serializes v, decodes it back into a generic tree and prunes
// nulls, producing the compacted form of any struct-shaped value.
func Document(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return Nulls(tree), nil
}
