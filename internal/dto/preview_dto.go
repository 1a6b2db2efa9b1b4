package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// PreviewVariableValue carries one caller-supplied value. DisplayValue is
// what gets rendered; Value is the raw value conditions evaluate against.
type PreviewVariableValue struct {
	VariableId   string      `json:"variableId" validate:"required"`
	Value        interface{} `json:"value"`
	DisplayValue string      `json:"displayValue"`
	Format       *string     `json:"format,omitempty"`
}

type ListVariablesResponse struct {
	Variables []PreviewVariableResponse `json:"variables"`
}

type PreviewVariableResponse struct {
	VariableId     string  `json:"variableId"`
	Type           string  `json:"type"`
	Label          string  `json:"label,omitempty"`
	Format         *string `json:"format,omitempty"`
	IsInternal     bool    `json:"is_internal"`
	IsRoleVariable bool    `json:"is_role_variable"`
	RoleId         *string `json:"role_id,omitempty"`
	PropertyKey    *string `json:"property_key,omitempty"`
}

type PreviewRequest struct {
	VersionId    uuid.UUID
	Values       []PreviewVariableValue `json:"values" validate:"dive"`
	IncludeTrace bool                   `json:"include_trace"`
}

type RuleTraceResponse struct {
	RuleId         string      `json:"rule_id"`
	VariableId     string      `json:"variable_id"`
	Operator       string      `json:"operator"`
	Actual         interface{} `json:"actual"`
	Expected       interface{} `json:"expected"`
	Result         bool        `json:"result"`
	CoercionFailed bool        `json:"coercion_failed,omitempty"`
}

type PreviewResponse struct {
	Content json.RawMessage     `json:"content"`
	Missing []string            `json:"missing"`
	Trace   []RuleTraceResponse `json:"trace,omitempty"`
	Cached  bool                `json:"cached"`
}

type ExportRequest struct {
	VersionId uuid.UUID
	Values    []PreviewVariableValue `json:"values" validate:"dive"`
}

type ExportResponse struct {
	HTML string `json:"html"`
}
