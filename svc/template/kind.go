// Package template 将类型化输入组合为完整的卡片载荷。
// 组合过程不做任何 I/O。
package template

// Kind 模板种类
type Kind string

const (
	KindStart   Kind = "start"
	KindTask    Kind = "task"
	KindLegacy  Kind = "legacy"
	KindMessage Kind = "message"
	KindAlert   Kind = "alert"
	KindRaw     Kind = "raw"
)

// KindInfo 模板种类及其说明，供列表展示
type KindInfo struct {
	Kind        Kind
	Description string
}

// Kinds 返回全部模板种类，顺序固定
func Kinds() []KindInfo {
	return []KindInfo{
		{KindStart, "minimal card announcing a task start"},
		{KindTask, "rich task card with status header, metadata columns and a collapsible result panel"},
		{KindLegacy, "flat text message for consumers that cannot render nested blocks"},
		{KindMessage, "plain card with one markdown block and a colored header"},
		{KindAlert, "card styled by severity (info/warning/error/critical)"},
		{KindRaw, "passthrough of a caller-built card payload"},
	}
}

// ParseKind 解析模板种类，未知值返回 TemplateError
func ParseKind(s string) (Kind, error) {
	for _, ki := range Kinds() {
		if string(ki.Kind) == s {
			return ki.Kind, nil
		}
	}
	return "", &TemplateError{Field: "kind", Value: s}
}
