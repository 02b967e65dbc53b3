// Package notify 负责把模板产出的卡片签名后投递到飞书 webhook。
// 每次发送相互独立，单次尝试，不保留任何状态。
package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/zhuud/lark-webhook-notify/svc/card"
	"github.com/zhuud/lark-webhook-notify/svc/conf"
	"github.com/zhuud/lark-webhook-notify/svc/template"
)

const (
	msgTypeInteractive = `interactive`
	msgTypeText        = `text`
)

type (
	// OptionFunc 通知器配置函数
	OptionFunc func(o *option)
	option     struct {
		filePath  string
		timeout   time.Duration
		transport *Transport
	}

	// Notifier 通知器：解析配置、组装模板、签名并投递
	Notifier struct {
		settings conf.Settings
		poster   poster
		logger   logx.Logger
		now      func() time.Time
	}

	// poster 投递接口
	poster interface {
		PostJSON(url string, body []byte) (int, []byte, error)
	}

	// envelope 出站请求体，timestamp 与 sign 成对出现
	envelope struct {
		Timestamp string         `json:"timestamp"`
		Sign      string         `json:"sign"`
		MsgType   string         `json:"msg_type"`
		Card      card.Block     `json:"card,omitempty"`
		Content   map[string]any `json:"content,omitempty"`
	}

	// webhookResp 兼容新旧两种响应字段
	webhookResp struct {
		Code          int    `json:"code"`
		Msg           string `json:"msg"`
		StatusCode    int    `json:"StatusCode"`
		StatusMessage string `json:"StatusMessage"`
	}
)

// WithFilePath 指定配置文件路径
func WithFilePath(p string) OptionFunc {
	return func(o *option) {
		if len(p) > 0 {
			o.filePath = p
		}
	}
}

// WithTimeout 设置投递超时时间
func WithTimeout(d time.Duration) OptionFunc {
	return func(o *option) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithTransport 替换投递客户端
func WithTransport(t *Transport) OptionFunc {
	return func(o *option) {
		if t != nil {
			o.transport = t
		}
	}
}

// New 解析配置并构造通知器。配置文件无法解析时返回 ConfigError；
// url/secret 缺失在发送时才报错，查询类操作不受影响
func New(explicit conf.Explicit, opts ...OptionFunc) (*Notifier, error) {
	o := option{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	var confOpts []conf.OptionFunc
	if len(o.filePath) > 0 {
		confOpts = append(confOpts, conf.WithFilePath(o.filePath))
	}
	settings, err := conf.Resolve(explicit, confOpts...)
	if err != nil {
		return nil, err
	}

	t := o.transport
	if t == nil {
		t = NewTransport(WithTransportTimeout(o.timeout))
	}

	return &Notifier{
		settings: settings,
		poster:   t,
		logger:   newLogger(),
		now:      time.Now,
	}, nil
}

// Settings 返回生效配置
func (n *Notifier) Settings() conf.Settings {
	return n.settings
}

// SendStart 发送任务开始通知
func (n *Notifier) SendStart(name, group, prefix string) error {
	return n.sendCard(template.ComposeStart(name, group, prefix))
}

// SendTask 发送任务通知
func (n *Notifier) SendTask(in template.TaskInput) error {
	payload, err := template.ComposeTask(in)
	if err != nil {
		return err
	}
	return n.sendCard(payload)
}

// SendAlert 发送告警通知
func (n *Notifier) SendAlert(title, message string, severity template.Severity) error {
	payload, err := template.ComposeAlert(title, message, severity)
	if err != nil {
		return err
	}
	return n.sendCard(payload)
}

// SendMessage 发送简单消息
func (n *Notifier) SendMessage(title, content, color string) error {
	return n.sendCard(template.ComposeMessage(title, content, color))
}

// SendRaw 直接投递调用方组装好的卡片，不做任何转换
func (n *Notifier) SendRaw(payload card.Block) error {
	return n.sendCard(payload)
}

// SendLegacy 以纯文本类型投递，兼容旧消费端
func (n *Notifier) SendLegacy(title, content string) error {
	return n.send(msgTypeText, nil, template.ComposeLegacy(title, content))
}

// Test 用最小固定卡片走完整管道，端到端验证配置
func (n *Notifier) Test() error {
	return n.sendCard(template.ComposeTest())
}

func (n *Notifier) sendCard(payload card.Block) error {
	return n.send(msgTypeInteractive, payload, nil)
}

// send 投递管道：校验配置 -> 生成时间戳与签名 -> 组装请求体 -> POST -> 解析响应。
// 时间戳在发送时生成，不缓存，服务端只接受小窗口内的时间戳
func (n *Notifier) send(msgType string, cardPayload card.Block, content map[string]any) error {
	if err := n.settings.ValidateForSend(); err != nil {
		return err
	}

	ts := n.now().Unix()
	sign, err := GenSign(n.settings.WebhookSecret, ts)
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope{
		Timestamp: strconv.FormatInt(ts, 10),
		Sign:      sign,
		MsgType:   msgType,
		Card:      cardPayload,
		Content:   content,
	})
	if err != nil {
		return &DeliveryError{Err: fmt.Errorf("notify.send marshal envelope error: %w", err)}
	}

	status, respBody, err := n.poster.PostJSON(n.settings.WebhookURL, body)
	if err != nil {
		n.logger.Errorf("notify.send transport error: %v", err)
		return &DeliveryError{Err: err, Timeout: errors.Is(err, fasthttp.ErrTimeout)}
	}

	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return &DeliveryError{StatusCode: status, Body: string(respBody)}
	}

	var wr webhookResp
	if err = json.Unmarshal(respBody, &wr); err != nil {
		return &DeliveryError{
			StatusCode: status,
			Body:       string(respBody),
			Err:        fmt.Errorf("notify.send decode response error: %w", err),
		}
	}
	if wr.Code != 0 {
		return &DeliveryError{StatusCode: status, Code: wr.Code, Body: string(respBody)}
	}
	if wr.StatusCode != 0 {
		return &DeliveryError{StatusCode: status, Code: wr.StatusCode, Body: string(respBody)}
	}

	n.logger.Infof("notify.send delivered msg_type %s", msgType)
	return nil
}
