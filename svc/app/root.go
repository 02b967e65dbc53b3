package app

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/proc"
)

var (
	rootCmd = &cobra.Command{
		Use:           "larknotify",
		Short:         "send signed notification cards to a Lark webhook",
		Long:          "larknotify [-f config file] [task | alert | message | raw | templates | test]",
		Example:       "larknotify -f lark_webhook.toml message --title 'Build Complete' --content v2.1.0 --color green",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringP("config", "f", "", "the config file")
	rootCmd.PersistentFlags().String("url", "", "webhook url, wins over env and file")
	rootCmd.PersistentFlags().String("secret", "", "webhook secret, wins over env and file")
	rootCmd.PersistentFlags().Duration("timeout", 0, "http delivery timeout")
}

// Run 执行根命令，退出前关闭 go-zero 资源
func Run() {
	defer proc.Shutdown()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("app.Run error: %v", err)
	}
}

// AddCommand 注册子命令
func AddCommand(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}
