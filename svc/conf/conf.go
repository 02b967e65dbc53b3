package conf

// 配置 key，文件层使用小写形式，环境变量层使用大写形式
const (
	KeyWebhookURL      = `lark_webhook_url`
	KeyWebhookSecret   = `lark_webhook_secret`
	KeyDefaultTemplate = `lark_default_template`

	// DefaultFilePath 默认配置文件路径
	DefaultFilePath = `lark_webhook.toml`
)

type (
	// Explicit 调用方直接传入的配置，优先级最高
	Explicit struct {
		WebhookURL      string
		WebhookSecret   string
		DefaultTemplate string
	}

	// Settings 解析后的生效配置，构造后不再变更
	Settings struct {
		WebhookURL      string
		WebhookSecret   string
		DefaultTemplate string
	}

	// OptionFunc 解析配置函数
	OptionFunc func(o *option)
	option     struct {
		filePath string
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

// Resolve 按 显式参数 > 环境变量 > 配置文件 > 默认值 的优先级逐 key 独立解析，
// 取第一个非空值，各层之间不做合并。
// 配置文件不存在时跳过文件层；存在但无法解析时返回 ConfigError。
func Resolve(explicit Explicit, opts ...OptionFunc) (Settings, error) {
	o := option{filePath: DefaultFilePath}
	for _, opt := range opts {
		opt(&o)
	}

	fr, err := newFileReader(o.filePath)
	if err != nil {
		return Settings{}, err
	}

	r := &comboReader{readers: []Reader{
		newExplicitReader(explicit),
		newEnvReader(),
		fr,
	}}

	var s Settings
	s.WebhookURL, _ = r.Get(KeyWebhookURL)
	s.WebhookSecret, _ = r.Get(KeyWebhookSecret)
	s.DefaultTemplate, _ = r.Get(KeyDefaultTemplate)
	return s, nil
}

// ValidateForSend 发送前校验必填项，缺失时返回 ConfigError 指明缺失的 key。
// 仅查询、列表类操作不需要调用。
func (s Settings) ValidateForSend() error {
	var missing []string
	if len(s.WebhookURL) == 0 {
		missing = append(missing, KeyWebhookURL)
	}
	if len(s.WebhookSecret) == 0 {
		missing = append(missing, KeyWebhookSecret)
	}
	if len(missing) > 0 {
		return &ConfigError{MissingKeys: missing}
	}
	return nil
}
