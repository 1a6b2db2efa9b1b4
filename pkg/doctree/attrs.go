package doctree

import (
	"encoding/json"
	"fmt"

	"contract-editor-be/pkg/condition"
)

// InjectorAttrs is the typed view of an injector node's attrs.
type InjectorAttrs struct {
	VariableID     string  `json:"variableId"`
	Type           string  `json:"type"`
	Label          string  `json:"label"`
	Format         *string `json:"format,omitempty"`
	IsRoleVariable bool    `json:"isRoleVariable,omitempty"`
	RoleID         *string `json:"roleId,omitempty"`
	RoleLabel      *string `json:"roleLabel,omitempty"`
	PropertyKey    *string `json:"propertyKey,omitempty"` // "name" | "email"
}

// Injector value type constants.
const (
	InjectorTypeText     = "TEXT"
	InjectorTypeNumber   = "NUMBER"
	InjectorTypeDate     = "DATE"
	InjectorTypeCurrency = "CURRENCY"
	InjectorTypeBoolean  = "BOOLEAN"
	InjectorTypeImage    = "IMAGE"
	InjectorTypeTable    = "TABLE"
	InjectorTypeRoleText = "ROLE_TEXT"
)

// Attrs added to injector nodes by the preview transform.
const (
	AttrResolvedValue = "resolvedValue"
	AttrHasValue      = "hasValue"
)

// Role property constants.
const (
	RolePropertyName  = "name"
	RolePropertyEmail = "email"
)

// RoleVariablePrefix prefixes variable IDs bound to a signer role.
const RoleVariablePrefix = "ROLE."

// BuildRoleVariableID builds a role variable ID (ROLE.{label}.{property}).
func BuildRoleVariableID(label, property string) string {
	return fmt.Sprintf("%s%s.%s", RoleVariablePrefix, label, property)
}

// ConditionalAttrs is the typed view of a conditional node's attrs. Expression
// is a display cache regenerated from Conditions; it is never authoritative.
type ConditionalAttrs struct {
	Conditions condition.Node `json:"conditions"`
	Expression string         `json:"expression,omitempty"`
}

// ParseInjectorAttrs decodes the attrs map tolerantly: unknown fields are
// ignored and missing fields stay zero so a malformed node degrades instead
// of failing the pass.
func ParseInjectorAttrs(attrs map[string]any) InjectorAttrs {
	var out InjectorAttrs
	decodeAttrs(attrs, &out)
	return out
}

// ParseConditionalAttrs decodes the attrs map tolerantly. A missing or
// malformed conditions tree yields the zero node, which evaluates true.
func ParseConditionalAttrs(attrs map[string]any) ConditionalAttrs {
	var out ConditionalAttrs
	decodeAttrs(attrs, &out)
	return out
}

func decodeAttrs(attrs map[string]any, target any) {
	if attrs == nil {
		return
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, target)
}
