package card

type (
	// Option 块构建配置函数。各构建器只读取与自己相关的字段，
	// 不相关的选项被忽略，以保持与外部 schema 一致的灵活性。
	Option func(o *option)

	option struct {
		textAlign         string
		textSize          string
		margin            string
		width             string
		verticalSpacing   string
		horizontalAlign   string
		verticalAlign     string
		weight            int
		hasWeight         bool
		backgroundStyle   string
		horizontalSpacing string
		expanded          bool
		backgroundColor   string
		borderColor       string
		cornerRadius      string
		padding           string
		hasPadding        bool
		subtitle          string
		hasSubtitle       bool
		textTags          []Block
		schema            string
		config            Block
		header            Block
		direction         string
		status            string
		color             string
	}
)

func (o *option) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithTextAlign 文本对齐方式
func WithTextAlign(v string) Option {
	return func(o *option) { o.textAlign = v }
}

// WithTextSize 文本大小，如 normal、normal_v2
func WithTextSize(v string) Option {
	return func(o *option) { o.textSize = v }
}

// WithMargin 外边距，CSS 风格字符串
func WithMargin(v string) Option {
	return func(o *option) { o.margin = v }
}

// WithWidth 列宽，auto 或 weighted
func WithWidth(v string) Option {
	return func(o *option) { o.width = v }
}

// WithVerticalSpacing 垂直间距
func WithVerticalSpacing(v string) Option {
	return func(o *option) { o.verticalSpacing = v }
}

// WithHorizontalAlign 水平对齐方式
func WithHorizontalAlign(v string) Option {
	return func(o *option) { o.horizontalAlign = v }
}

// WithVerticalAlign 垂直对齐方式
func WithVerticalAlign(v string) Option {
	return func(o *option) { o.verticalAlign = v }
}

// WithWeight 列权重，仅在 width 为 weighted 时由服务端生效
func WithWeight(v int) Option {
	return func(o *option) {
		o.weight = v
		o.hasWeight = true
	}
}

// WithBackgroundStyle 背景样式
func WithBackgroundStyle(v string) Option {
	return func(o *option) { o.backgroundStyle = v }
}

// WithHorizontalSpacing 水平间距
func WithHorizontalSpacing(v string) Option {
	return func(o *option) { o.horizontalSpacing = v }
}

// WithExpanded 折叠面板是否默认展开
func WithExpanded(v bool) Option {
	return func(o *option) { o.expanded = v }
}

// WithBackgroundColor 背景颜色
func WithBackgroundColor(v string) Option {
	return func(o *option) { o.backgroundColor = v }
}

// WithBorderColor 边框颜色
func WithBorderColor(v string) Option {
	return func(o *option) { o.borderColor = v }
}

// WithCornerRadius 圆角
func WithCornerRadius(v string) Option {
	return func(o *option) { o.cornerRadius = v }
}

// WithPadding 内边距
func WithPadding(v string) Option {
	return func(o *option) {
		o.padding = v
		o.hasPadding = true
	}
}

// WithSubtitle 卡片头副标题
func WithSubtitle(v string) Option {
	return func(o *option) {
		o.subtitle = v
		o.hasSubtitle = true
	}
}

// WithTextTagList 卡片头标签列表
func WithTextTagList(tags []Block) Option {
	return func(o *option) { o.textTags = tags }
}

// WithSchema 卡片 schema 版本
func WithSchema(v string) Option {
	return func(o *option) { o.schema = v }
}

// WithConfig 卡片 config 块
func WithConfig(cfg Block) Option {
	return func(o *option) { o.config = cfg }
}

// WithHeader 卡片头块
func WithHeader(h Block) Option {
	return func(o *option) { o.header = h }
}

// WithDirection 卡片 body 排布方向
func WithDirection(v string) Option {
	return func(o *option) { o.direction = v }
}

// WithStatus Builder.Header 按状态自动取色
func WithStatus(v string) Option {
	return func(o *option) { o.status = v }
}

// WithColor Builder.Header 显式指定颜色，优先于状态取色
func WithColor(v string) Option {
	return func(o *option) { o.color = v }
}
