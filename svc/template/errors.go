package template

import (
	"fmt"
)

// TemplateError 非法的枚举值（status/severity/kind），直接携带违规值暴露给调用方
type TemplateError struct {
	Field string
	Value any
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template: invalid %s value %v", e.Field, e.Value)
}
