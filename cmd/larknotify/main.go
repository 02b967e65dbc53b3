package main

import (
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/zhuud/lark-webhook-notify/svc/app"
)

func main() {
	logx.DisableStat()

	app.AddCommand(
		newTaskCmd(),
		newAlertCmd(),
		newMessageCmd(),
		newRawCmd(),
		newTemplatesCmd(),
		newTestCmd(),
	)
	app.Run()
}
