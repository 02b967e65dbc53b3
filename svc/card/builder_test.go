package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildElements(t *testing.T, b *Builder) []Block {
	t.Helper()
	c, err := b.Build()
	require.NoError(t, err)
	body, ok := c["body"].(Block)
	require.True(t, ok)
	elements, ok := body["elements"].([]Block)
	require.True(t, ok)
	return elements
}

func TestBuilderSimple(t *testing.T) {
	c, err := NewBuilder().
		Header("Test Title", WithStatus("success"), WithColor("green")).
		Metadata("Key", "Value").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "2.0", c["schema"])
	assert.Contains(t, c, "header")
	assert.Contains(t, c, "body")
}

func TestBuilderMultipleMetadata(t *testing.T) {
	elements := buildElements(t, NewBuilder().
		Header("Test").
		Metadata("Key1", "Value1").
		Metadata("Key2", "Value2").
		Metadata("Key3", 3))

	assert.Len(t, elements, 3)
	assert.Contains(t, elements[2]["content"], "3")
}

func TestBuilderColumns(t *testing.T) {
	elements := buildElements(t, NewBuilder().
		Header("Test").
		Columns().
		Column("Left", "Value1", WithWidth("auto")).
		Column("Right", "Value2", WithWidth("weighted")).
		EndColumns())

	require.Len(t, elements, 1)
	assert.Equal(t, "column_set", elements[0]["tag"])
	assert.Len(t, elements[0]["columns"], 2)
}

func TestBuilderMultipleColumnSets(t *testing.T) {
	elements := buildElements(t, NewBuilder().
		Header("Test").
		Columns().Column("A", 1).Column("B", 2).EndColumns().
		Columns().Column("C", 3).Column("D", 4).EndColumns())

	require.Len(t, elements, 2)
	for _, el := range elements {
		assert.Equal(t, "column_set", el["tag"])
	}
}

func TestBuilderCollapsible(t *testing.T) {
	elements := buildElements(t, NewBuilder().
		Header("Test").
		Collapsible("Section 1", "Content 1").
		Collapsible("Section 2", "Content 2", WithExpanded(true)))

	require.Len(t, elements, 2)
	assert.Equal(t, false, elements[0]["expanded"])
	assert.Equal(t, true, elements[1]["expanded"])
}

func TestBuilderMixedElements(t *testing.T) {
	elements := buildElements(t, NewBuilder().
		Header("Test", WithStatus("success")).
		Metadata("Key", "Value").
		Columns().Column("A", 1).Column("B", 2).EndColumns().
		Markdown("Some text").
		Divider().
		Collapsible("Details", "More info"))

	// metadata + column_set + markdown + divider + collapsible
	assert.Len(t, elements, 5)
}

func TestBuilderStatusColors(t *testing.T) {
	testCases := []struct {
		status   string
		expected string
	}{
		{"running", "wathet"},
		{"success", "green"},
		{"completed", "green"},
		{"failed", "red"},
		{"error", "red"},
		{"warning", "orange"},
		{"info", "blue"},
		{"", "blue"},
	}

	for _, tc := range testCases {
		t.Run("status "+tc.status, func(t *testing.T) {
			c, err := NewBuilder().Header("Test", WithStatus(tc.status)).Build()
			require.NoError(t, err)

			hdr, ok := c["header"].(Block)
			require.True(t, ok)
			assert.Equal(t, tc.expected, hdr["template"])
		})
	}
}

func TestBuilderExplicitColorWins(t *testing.T) {
	c, err := NewBuilder().Header("Test", WithStatus("failed"), WithColor("purple")).Build()
	require.NoError(t, err)

	hdr := c["header"].(Block)
	assert.Equal(t, "purple", hdr["template"])
}

func TestBuilderUnclosedColumns(t *testing.T) {
	_, err := NewBuilder().Header("Test").Columns().Column("A", 1).Build()
	assert.ErrorContains(t, err, "unclosed column context")
}

func TestBuilderColumnWithoutContext(t *testing.T) {
	_, err := NewBuilder().Header("Test").Column("A", 1).Build()
	assert.ErrorContains(t, err, "Columns before Column")
}

func TestBuilderEndColumnsWithoutContext(t *testing.T) {
	_, err := NewBuilder().Header("Test").EndColumns().Build()
	assert.ErrorContains(t, err, "no column context to end")
}

func TestBuilderMetadataBlock(t *testing.T) {
	elements := buildElements(t, NewBuilder().
		Header("Test").
		MetadataBlock(
			MetaPair{Key: "task_name", Value: "my-task"},
			MetaPair{Key: "duration", Value: "5m"},
			MetaPair{Key: "status", Value: "complete"},
		))

	require.Len(t, elements, 1)
	content := elements[0]["content"].(string)
	assert.Contains(t, content, "Task Name")
	assert.Contains(t, content, "Duration")
	assert.Contains(t, content, "Status")
}

func TestBuilderAddBlock(t *testing.T) {
	elements := buildElements(t, NewBuilder().
		Header("Test").
		AddBlock(Markdown("**Raw Content**")))

	require.Len(t, elements, 1)
	assert.Equal(t, "markdown", elements[0]["tag"])
	assert.Contains(t, elements[0]["content"], "Raw Content")
}

func TestBuilderConfig(t *testing.T) {
	c, err := NewBuilder().
		Header("Test").
		Config(ConfigTextsizeNormalV2()).
		Build()
	require.NoError(t, err)
	assert.Contains(t, c, "config")
}
