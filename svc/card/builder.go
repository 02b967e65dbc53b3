package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// statusColors 状态到标题颜色的映射
var statusColors = map[string]string{
	"running":   "wathet",
	"success":   "green",
	"completed": "green",
	"failed":    "red",
	"error":     "red",
	"warning":   "orange",
	"info":      "blue",
}

// Builder 链式组装卡片。列上下文误用（未关闭、未开启）记录为错误，
// 在 Build 时统一返回。
type Builder struct {
	header    Block
	elements  []Block
	columns   []Block
	inColumns bool
	config    Block
	err       error
}

// NewBuilder 创建卡片构建器
func NewBuilder() *Builder {
	return &Builder{}
}

// Header 设置卡片头。WithColor 优先，其次按 WithStatus 自动取色，默认 blue
func (b *Builder) Header(title string, opts ...Option) *Builder {
	o := &option{}
	o.apply(opts)

	color := o.color
	if len(color) == 0 {
		color = statusColors[o.status]
	}
	if len(color) == 0 {
		color = "blue"
	}
	b.header = Header(title, color)
	return b
}

// Metadata 追加一行键值 markdown
func (b *Builder) Metadata(key string, value any) *Builder {
	return b.add(Markdown(fmt.Sprintf("**%s:** %s", key, cast.ToString(value))))
}

// MetaPair MetadataBlock 的键值对
type MetaPair struct {
	Key   string
	Value any
}

// MetadataBlock 将多组键值合并为单个 markdown 块，snake_case key 转为标题形式
func (b *Builder) MetadataBlock(pairs ...MetaPair) *Builder {
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("**%s:** %s", titleCase(p.Key), cast.ToString(p.Value)))
	}
	return b.add(Markdown(strings.Join(lines, "\n")))
}

// Markdown 追加 markdown 块
func (b *Builder) Markdown(content string) *Builder {
	return b.add(Markdown(content))
}

// Divider 追加分割线
func (b *Builder) Divider() *Builder {
	return b.add(Divider())
}

// Columns 开启一组列，必须以 EndColumns 结束
func (b *Builder) Columns() *Builder {
	if b.inColumns {
		return b.fail("card.Builder unclosed column context")
	}
	b.inColumns = true
	b.columns = nil
	return b
}

// Column 在当前列上下文中追加一列
func (b *Builder) Column(label string, value any, opts ...Option) *Builder {
	if !b.inColumns {
		return b.fail("card.Builder call Columns before Column")
	}
	md := Markdown(fmt.Sprintf("**%s**\n%s", label, cast.ToString(value)))
	b.columns = append(b.columns, Column([]Block{md}, opts...))
	return b
}

// EndColumns 关闭当前列上下文，产出一个 column_set
func (b *Builder) EndColumns() *Builder {
	if !b.inColumns {
		return b.fail("card.Builder no column context to end")
	}
	b.inColumns = false
	b.elements = append(b.elements, ColumnSet(b.columns))
	b.columns = nil
	return b
}

// Collapsible 追加折叠面板，内容为单个 markdown
func (b *Builder) Collapsible(title, content string, opts ...Option) *Builder {
	return b.add(CollapsiblePanel(title, []Block{Markdown(content)}, opts...))
}

// AddBlock 追加调用方自行构建的块
func (b *Builder) AddBlock(blk Block) *Builder {
	return b.add(blk)
}

// Config 设置卡片 config 块
func (b *Builder) Config(cfg Block) *Builder {
	b.config = cfg
	return b
}

// Build 产出完整卡片
func (b *Builder) Build() (Block, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.inColumns {
		return nil, errors.New("card.Builder unclosed column context")
	}

	var opts []Option
	if b.header != nil {
		opts = append(opts, WithHeader(b.header))
	}
	if b.config != nil {
		opts = append(opts, WithConfig(b.config))
	}
	return Card(b.elements, opts...), nil
}

func (b *Builder) add(blk Block) *Builder {
	b.elements = append(b.elements, blk)
	return b
}

func (b *Builder) fail(msg string) *Builder {
	if b.err == nil {
		b.err = errors.New(msg)
	}
	return b
}

// titleCase task_name -> Task Name
func titleCase(k string) string {
	parts := strings.Split(k, "_")
	for i, p := range parts {
		if len(p) == 0 {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
