package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhuud/lark-webhook-notify/svc/card"
	"github.com/zhuud/lark-webhook-notify/svc/conf"
	"github.com/zhuud/lark-webhook-notify/svc/notify"
	"github.com/zhuud/lark-webhook-notify/svc/template"
)

// newNotifier 从持久化 flag 构造通知器
func newNotifier(cmd *cobra.Command) (*notify.Notifier, error) {
	url, _ := cmd.Flags().GetString("url")
	secret, _ := cmd.Flags().GetString("secret")
	file, _ := cmd.Flags().GetString("config")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	var opts []notify.OptionFunc
	if len(file) > 0 {
		opts = append(opts, notify.WithFilePath(file))
	}
	if timeout > 0 {
		opts = append(opts, notify.WithTimeout(timeout))
	}
	return notify.New(conf.Explicit{WebhookURL: url, WebhookSecret: secret}, opts...)
}

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "send a task notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := newNotifier(cmd)
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			desc, _ := cmd.Flags().GetString("desc")
			group, _ := cmd.Flags().GetString("group")
			prefix, _ := cmd.Flags().GetString("prefix")

			// --status 未给出表示任务仍在运行
			var status *int
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetInt("status")
				status = &v
			}

			return n.SendTask(template.TaskInput{
				Name:        name,
				Status:      status,
				Description: desc,
				Group:       group,
				Prefix:      prefix,
			})
		},
	}
	cmd.Flags().String("name", "", "task name")
	cmd.Flags().Int("status", 0, "exit status, 0 success, positive failure, omit for running")
	cmd.Flags().String("desc", "", "task description or result")
	cmd.Flags().String("group", "", "task group")
	cmd.Flags().String("prefix", "", "artifact prefix")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAlertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "send an alert styled by severity",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := newNotifier(cmd)
			if err != nil {
				return err
			}

			title, _ := cmd.Flags().GetString("title")
			message, _ := cmd.Flags().GetString("message")
			sevName, _ := cmd.Flags().GetString("severity")

			sev, err := template.ParseSeverity(sevName)
			if err != nil {
				return err
			}
			return n.SendAlert(title, message, sev)
		},
	}
	cmd.Flags().String("title", "", "alert title")
	cmd.Flags().String("message", "", "alert message")
	cmd.Flags().String("severity", "info", "info | warning | error | critical")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "send a simple message card",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := newNotifier(cmd)
			if err != nil {
				return err
			}

			title, _ := cmd.Flags().GetString("title")
			content, _ := cmd.Flags().GetString("content")
			color, _ := cmd.Flags().GetString("color")
			legacy, _ := cmd.Flags().GetBool("legacy")

			if legacy {
				return n.SendLegacy(title, content)
			}
			return n.SendMessage(title, content, color)
		},
	}
	cmd.Flags().String("title", "", "message title")
	cmd.Flags().String("content", "", "markdown content")
	cmd.Flags().String("color", "blue", "header color name")
	cmd.Flags().Bool("legacy", false, "send as plain text for legacy consumers")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "send a caller-built card payload unmodified",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := newNotifier(cmd)
			if err != nil {
				return err
			}

			file, _ := cmd.Flags().GetString("file")
			var data []byte
			if file == "-" || len(file) == 0 {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("raw: read payload error: %w", err)
			}

			var payload card.Block
			if err = json.Unmarshal(data, &payload); err != nil {
				return fmt.Errorf("raw: payload is not valid JSON: %w", err)
			}
			return n.SendRaw(payload)
		},
	}
	cmd.Flags().String("file", "-", "card payload JSON file, - for stdin")
	return cmd
}

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "list available template kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 列表操作不要求 url/secret，但默认模板取自解析后的配置
			file, _ := cmd.Flags().GetString("config")
			var opts []conf.OptionFunc
			if len(file) > 0 {
				opts = append(opts, conf.WithFilePath(file))
			}
			settings, err := conf.Resolve(conf.Explicit{}, opts...)
			if err != nil {
				return err
			}

			for _, ki := range template.Kinds() {
				mark := " "
				if string(ki.Kind) == settings.DefaultTemplate {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-8s %s\n", mark, ki.Kind, ki.Description)
			}
			return nil
		},
	}
}

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "validate configuration with a minimal end-to-end send",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := newNotifier(cmd)
			if err != nil {
				return err
			}
			if err = n.Test(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
