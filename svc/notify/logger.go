package notify

import "github.com/zeromicro/go-zero/core/logx"

// newLogger 带 component 字段的 logger，构造一次复用
func newLogger() logx.Logger {
	return logx.WithCallerSkip(1).
		WithFields(logx.Field("component", "notify"))
}
