package conf

import (
	"fmt"
	"strings"
)

// ConfigError 必填配置缺失或配置文件无法解析
type ConfigError struct {
	MissingKeys []string
	Err         error
}

func (e *ConfigError) Error() string {
	if len(e.MissingKeys) > 0 {
		return fmt.Sprintf("conf: missing required settings: %s", strings.Join(e.MissingKeys, ", "))
	}
	return fmt.Sprintf("conf: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
