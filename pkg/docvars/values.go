package docvars

import "contract-editor-be/pkg/condition"

// VariableValue is one resolved variable. Value is the raw typed value driving
// comparisons; DisplayValue is the pre-formatted string substituted into the
// rendered output.
type VariableValue struct {
	VariableID   string  `json:"variableId"`
	Value        any     `json:"value"`
	DisplayValue string  `json:"displayValue"`
	Format       *string `json:"format,omitempty"`
}

// ValueMap holds resolved values keyed by variableId.
type ValueMap map[string]VariableValue

// Raw projects the map into the comparison view the condition evaluator
// consumes.
func (m ValueMap) Raw() condition.Values {
	out := make(condition.Values, len(m))
	for id, v := range m {
		out[id] = v.Value
	}
	return out
}

// Merge returns a new map with entries from other overriding entries in m.
// Neither input is mutated.
func (m ValueMap) Merge(other ValueMap) ValueMap {
	out := make(ValueMap, len(m)+len(other))
	for id, v := range m {
		out[id] = v
	}
	for id, v := range other {
		out[id] = v
	}
	return out
}

// Injectable is a read-only catalog entry supplied by the workspace catalog
// collaborator.
type Injectable struct {
	Key        string         `json:"key"`
	Label      string         `json:"label"`
	DataType   string         `json:"dataType"`
	SourceType string         `json:"sourceType"` // INTERNAL | EXTERNAL
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Injectable source types.
const (
	SourceTypeInternal = "INTERNAL"
	SourceTypeExternal = "EXTERNAL"
)

// Catalog indexes injectables by key.
type Catalog map[string]Injectable

// NewCatalog builds a catalog from a list of entries. Later duplicates win.
func NewCatalog(entries []Injectable) Catalog {
	out := make(Catalog, len(entries))
	for _, e := range entries {
		out[e.Key] = e
	}
	return out
}
