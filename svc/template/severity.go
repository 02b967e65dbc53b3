package template

// Severity 告警级别
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

type severityStyle struct {
	color    string
	tag      string
	tagColor string
}

// severityStyles 级别到颜色/标签的固定映射
var severityStyles = map[Severity]severityStyle{
	SeverityInfo:     {color: "blue", tag: "INFO", tagColor: "blue"},
	SeverityWarning:  {color: "orange", tag: "WARNING", tagColor: "orange"},
	SeverityError:    {color: "red", tag: "ERROR", tagColor: "red"},
	SeverityCritical: {color: "carmine", tag: "CRITICAL", tagColor: "carmine"},
}

// ParseSeverity 解析告警级别，未知值返回 TemplateError
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if _, ok := severityStyles[sev]; !ok {
		return "", &TemplateError{Field: "severity", Value: s}
	}
	return sev, nil
}
