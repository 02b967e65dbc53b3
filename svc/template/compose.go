package template

import (
	"fmt"

	"github.com/zhuud/lark-webhook-notify/svc/card"
)

// TaskInput 任务通知输入。Status 为 nil 表示运行中，0 表示成功，正数为失败码
type TaskInput struct {
	Name        string
	Status      *int
	Description string
	Group       string
	Prefix      string
}

// taskStyle 状态到样式的固定映射，状态非法返回 TemplateError
func taskStyle(status *int) (color, tagText, tagColor string, err error) {
	switch {
	case status == nil:
		return "wathet", "RUNNING", "blue", nil
	case *status == 0:
		return "green", "SUCCESS", "green", nil
	case *status > 0:
		return "red", fmt.Sprintf("FAILED (%d)", *status), "red", nil
	default:
		return "", "", "", &TemplateError{Field: "status", Value: *status}
	}
}

// ComposeStart 任务开始通知：最小卡片头 + 单个 markdown
func ComposeStart(name, group, prefix string) card.Block {
	hdr := card.Header(name, "wathet",
		card.WithTextTagList([]card.Block{card.TextTag("RUNNING", "blue")}),
	)
	md := card.Markdown(fmt.Sprintf("Task **%s** started\n**Group:** %s\n**Prefix:** %s", name, group, prefix))
	return card.Card([]card.Block{md}, card.WithHeader(hdr))
}

// ComposeTask 任务通知：状态着色的卡片头 + 元信息列 + 折叠的详情面板。
// 失败时面板默认展开
func ComposeTask(in TaskInput) (card.Block, error) {
	color, tagText, tagColor, err := taskStyle(in.Status)
	if err != nil {
		return nil, err
	}

	hdr := card.Header(in.Name, color,
		card.WithTextTagList([]card.Block{card.TextTag(tagText, tagColor)}),
	)

	meta := card.ColumnSet([]card.Block{
		card.Column([]card.Block{
			card.Markdown(fmt.Sprintf("**Group**\n%s", in.Group)),
		}),
		card.Column([]card.Block{
			card.Markdown(fmt.Sprintf("**Prefix**\n%s", in.Prefix)),
		}, card.WithWidth("weighted"), card.WithWeight(1)),
	})

	expanded := in.Status != nil && *in.Status != 0
	panel := card.CollapsiblePanel("**Details**",
		[]card.Block{card.Markdown(in.Description)},
		card.WithExpanded(expanded),
	)

	return card.Card([]card.Block{meta, panel},
		card.WithHeader(hdr),
		card.WithConfig(card.ConfigTextsizeNormalV2()),
	), nil
}

// ComposeLegacy 纯文本结构，兼容无法渲染嵌套块的旧消费端
func ComposeLegacy(title, content string) map[string]any {
	text := content
	if len(title) > 0 {
		text = title + "\n" + content
	}
	return map[string]any{"text": text}
}

// ComposeMessage 单 markdown 块的普通卡片，颜色由调用方给定（服务端校验颜色名）
func ComposeMessage(title, content, color string) card.Block {
	return card.Card([]card.Block{card.Markdown(content)},
		card.WithHeader(card.Header(title, color)),
	)
}

// ComposeAlert 按级别着色的告警卡片，未知级别返回 TemplateError
func ComposeAlert(title, message string, severity Severity) (card.Block, error) {
	st, ok := severityStyles[severity]
	if !ok {
		return nil, &TemplateError{Field: "severity", Value: severity}
	}

	hdr := card.Header(title, st.color,
		card.WithTextTagList([]card.Block{card.TextTag(st.tag, st.tagColor)}),
	)
	return card.Card([]card.Block{card.Markdown(message)}, card.WithHeader(hdr)), nil
}

// ComposeTest 连通性测试用的最小固定卡片
func ComposeTest() card.Block {
	return card.Card(
		[]card.Block{card.Markdown("webhook connectivity test")},
		card.WithHeader(card.Header("lark-webhook-notify", "blue")),
	)
}
