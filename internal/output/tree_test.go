package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("components", nil))
}

func TestRenderFileTree_ComponentLayout(t *testing.T) {
	out := RenderFileTree("components", map[string]string{
		".Common/Widget/Widget.jsx": "created",
		".Common/Widget/index.js":   "created",
		".Common/Widget/styled.jsx": "created",
		".Common/index.js":          "patched",
		"index.js":                  "patched",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "components/", lines[0])
	assert.Contains(t, lines[1], ".Common/")
	assert.Contains(t, lines[2], "Widget/")
	assert.Contains(t, lines[3], "Widget.jsx")
	assert.Contains(t, lines[6], "index.js")
	assert.Contains(t, lines[6], "patched")
	assert.True(t, strings.HasPrefix(lines[7], treeLast), "root-level file is last and uses the last connector")
}
