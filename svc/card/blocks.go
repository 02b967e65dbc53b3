// Package card 提供组合飞书交互式卡片的基础块。
// 各构建器均为纯函数，返回符合卡片 schema 的嵌套映射；
// 字段组合是否合法由飞书服务端校验，本地不做 schema 校验。
package card

// Block 单个卡片元素，key 含义由飞书卡片 schema 定义
type Block map[string]any

// Markdown 创建 markdown 文本块
func Markdown(content string, opts ...Option) Block {
	o := &option{
		textAlign: "left",
		textSize:  "normal",
		margin:    "0px 0px 0px 0px",
	}
	o.apply(opts)

	return Block{
		"tag":        "markdown",
		"content":    content,
		"text_align": o.textAlign,
		"text_size":  o.textSize,
		"margin":     o.margin,
	}
}

// TextTag 卡片头上的小型彩色标签
func TextTag(text, color string) Block {
	return Block{
		"tag":   "text_tag",
		"text":  Block{"tag": "plain_text", "content": text},
		"color": color,
	}
}

// Header 卡片头，template 为颜色名。可选字段仅在显式设置时写入，
// 保证既有模板的输出保持不变
func Header(title, template string, opts ...Option) Block {
	o := &option{}
	o.apply(opts)

	h := Block{
		"title":    Block{"tag": "plain_text", "content": title},
		"template": template,
	}
	if o.hasSubtitle {
		h["subtitle"] = Block{"tag": "plain_text", "content": o.subtitle}
	}
	if len(o.textTags) > 0 {
		h["text_tag_list"] = o.textTags
	}
	if o.hasPadding {
		h["padding"] = o.padding
	}
	return h
}

// Column 创建列块，包裹一组有序子块
func Column(elements []Block, opts ...Option) Block {
	o := &option{
		width:           "auto",
		verticalSpacing: "8px",
		horizontalAlign: "left",
		verticalAlign:   "top",
	}
	o.apply(opts)

	col := Block{
		"tag":              "column",
		"width":            o.width,
		"elements":         elements,
		"vertical_spacing": o.verticalSpacing,
		"horizontal_align": o.horizontalAlign,
		"vertical_align":   o.verticalAlign,
	}
	if o.hasWeight {
		col["weight"] = o.weight
	}
	return col
}

// ColumnSet 创建一行列集合
func ColumnSet(columns []Block, opts ...Option) Block {
	o := &option{
		backgroundStyle:   "grey-100",
		horizontalSpacing: "12px",
		horizontalAlign:   "left",
		margin:            "0px 0px 0px 0px",
	}
	o.apply(opts)

	return Block{
		"tag":                "column_set",
		"background_style":   o.backgroundStyle,
		"horizontal_spacing": o.horizontalSpacing,
		"horizontal_align":   o.horizontalAlign,
		"columns":            columns,
		"margin":             o.margin,
	}
}

// CollapsiblePanel 创建折叠面板，标题为 markdown，带标准展开图标
func CollapsiblePanel(titleMarkdownContent string, elements []Block, opts ...Option) Block {
	o := &option{
		backgroundColor: "grey-200",
		borderColor:     "grey",
		cornerRadius:    "5px",
		verticalSpacing: "8px",
		padding:         "8px 8px 8px 8px",
	}
	o.apply(opts)

	return Block{
		"tag":      "collapsible_panel",
		"expanded": o.expanded,
		"header": Block{
			"title": Block{
				"tag":     "markdown",
				"content": titleMarkdownContent,
			},
			"background_color": o.backgroundColor,
			"vertical_align":   "center",
			"icon": Block{
				"tag":   "standard_icon",
				"token": "down-small-ccm_outlined",
				"color": "",
				"size":  "16px 16px",
			},
			"icon_position":       "right",
			"icon_expanded_angle": -180,
		},
		"border": Block{
			"color":         o.borderColor,
			"corner_radius": o.cornerRadius,
		},
		"vertical_spacing": o.verticalSpacing,
		"padding":          o.padding,
		"elements":         elements,
	}
}

// Divider 分割线
func Divider() Block {
	return Block{"tag": "hr"}
}

// Body 卡片 body 包装
func Body(elements []Block, opts ...Option) Block {
	o := &option{direction: "vertical"}
	o.apply(opts)

	return Block{
		"direction": o.direction,
		"elements":  elements,
	}
}

// ConfigTextsizeNormalV2 部分模板使用的响应式字号 config 块
func ConfigTextsizeNormalV2() Block {
	return Block{
		"update_multi": true,
		"style": Block{
			"text_size": Block{
				"normal_v2": Block{
					"default": "normal",
					"pc":      "normal",
					"mobile":  "heading",
				},
			},
		},
	}
}

// Card 组装完整卡片，elements 的顺序即渲染顺序
func Card(elements []Block, opts ...Option) Block {
	o := &option{schema: "2.0"}
	o.apply(opts)

	c := Block{
		"schema": o.schema,
		"body":   Body(elements),
	}
	if o.header != nil {
		c["header"] = o.header
	}
	if o.config != nil {
		c["config"] = o.config
	}
	return c
}

// TemplateReference 引用已发布的服务端模板并做变量替换
func TemplateReference(templateID, templateVersionName string, templateVariable map[string]any) Block {
	return Block{
		"type": "template",
		"data": Block{
			"template_id":           templateID,
			"template_version_name": templateVersionName,
			"template_variable":     templateVariable,
		},
	}
}
