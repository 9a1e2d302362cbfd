package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{filename: "arrow-right", want: "ArrowRight"},
		{filename: "bell", want: "Bell"},
		{filename: "alert-triangle-filled", want: "AlertTriangleFilled"},
		{filename: "x", want: "X"},
		{filename: "double--hyphen", want: "DoubleHyphen"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ComponentName(tt.filename))
		})
	}
}

func TestComponentRenamesAttributes(t *testing.T) {
	out := Component("arrow-right", `<svg stroke-width="2" stroke-linecap="round" fill-rule="evenodd"><path clip-rule="evenodd" stroke-linejoin="round" fill-opacity="0.5" stroke-opacity="0.5"/></svg>`)

	for _, camel := range []string{"strokeWidth", "strokeLinecap", "strokeLinejoin", "fillRule", "clipRule", "fillOpacity", "strokeOpacity"} {
		assert.Contains(t, out, camel)
	}
	for _, kebab := range []string{"stroke-width", "stroke-linecap", "stroke-linejoin", "fill-rule", "clip-rule", "fill-opacity", "stroke-opacity"} {
		assert.NotContains(t, out, kebab)
	}
}

func TestComponentReplacesDimensions(t *testing.T) {
	out := Component("bell", `<svg width="24" height="24"><path/></svg>`)

	assert.Contains(t, out, `width={width}`)
	assert.Contains(t, out, `height={height}`)
	assert.NotContains(t, out, `width="24"`)
	assert.NotContains(t, out, `height="24"`)
}

func TestComponentInjectsDimensionsWhenAbsent(t *testing.T) {
	out := Component("bell", `<svg viewBox="0 0 24 24"><path/></svg>`)

	assert.Contains(t, out, `width={width}`)
	assert.Contains(t, out, `height={height}`)
}

func TestComponentInjectsTitleAndSpread(t *testing.T) {
	out := Component("arrow-right", `<svg viewBox="0 0 24 24"><path/></svg>`)

	assert.Contains(t, out, "<title>{title}</title>")
	assert.Contains(t, out, "{...rest}")

	// Title element sits right after the root opening tag.
	rootEnd := strings.Index(out, "{...rest}>")
	titleStart := strings.Index(out, "<title>")
	assert.Greater(t, titleStart, rootEnd)
}

func TestComponentStripsXMLDeclarationAndClass(t *testing.T) {
	out := Component("bell", `<?xml version="1.0" encoding="UTF-8"?>
<svg class="icon icon-bell"><path class="stroke"/></svg>`)

	assert.NotContains(t, out, "<?xml")
	assert.NotContains(t, out, `class="`)
}

func TestComponentBoilerplate(t *testing.T) {
	out := Component("arrow-right", `<svg><path/></svg>`)

	assert.Contains(t, out, "interface ArrowRightProps {")
	assert.Contains(t, out, "const ArrowRight = ({")
	assert.Contains(t, out, `title = "ArrowRight",`)
	assert.Contains(t, out, "...rest")
	assert.Contains(t, out, "export default ArrowRight;")
}

func TestComponentDeterministic(t *testing.T) {
	const svg = `<svg width="16" stroke-width="1.5" class="x"><path/></svg>`
	assert.Equal(t, Component("bell", svg), Component("bell", svg))
}
