package scaffold

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locko/rtools/internal/testutil"
	"github.com/locko/rtools/internal/templates"
)

func stepNames(steps []Step) []string {
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.Name)
	}
	return names
}

func TestPipelineSteps_Component(t *testing.T) {
	p := NewPipeline(templates.Embedded(), &testutil.FakePort{})
	req := NewComponentRequest("/proj/components", "Widget")

	assert.Equal(t, []string{
		"create directory",
		"render Widget.jsx",
		"render index.js",
		"render styled.jsx",
		"patch .Common/index.js",
		"patch index.js",
		"reveal Widget.jsx",
	}, stepNames(p.Steps(req)))
}

func TestPipelineSteps_Container(t *testing.T) {
	p := NewPipeline(templates.Embedded(), &testutil.FakePort{})
	req := NewContainerRequest("/proj/containers", "Dashboard")

	assert.Equal(t, []string{
		"create directory",
		"render Dashboard.jsx",
		"render index.js",
		"patch containers/index.js",
		"reveal Dashboard.jsx",
	}, stepNames(p.Steps(req)))
}

func TestPipelineRun_Component(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".Common/index.js", "export {\n\tButton\n} from './Button';\n")
	testutil.WriteFile(t, dir, "index.js", "import {\n  Button\n} from './.Common';\n\nexport { Button };\n")

	port := &testutil.FakePort{}
	p := NewPipeline(templates.Embedded(), port)
	req := NewComponentRequest(dir, "Widget")

	res := p.Run(context.Background(), req)
	require.True(t, res.OK(), "run failed: %v", res.Err())
	assert.Len(t, res.Completed, 7)

	widget := filepath.Join(dir, ".Common", "Widget")
	assert.FileExists(t, filepath.Join(widget, "Widget.jsx"))
	assert.FileExists(t, filepath.Join(widget, "index.js"))
	assert.FileExists(t, filepath.Join(widget, "styled.jsx"))

	assert.Contains(t, testutil.ReadFile(t, filepath.Join(widget, "Widget.jsx")), "export default Widget;")
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(widget, "styled.jsx")), "className: 'widget'")

	assert.Equal(t,
		"export {\n\tButton\n} from './Button';\n\nexport {\n\tWidget\n} from './Widget';\n",
		testutil.ReadFile(t, filepath.Join(dir, ".Common", "index.js")))
	assert.Equal(t,
		"import {\n  Button,\n  Widget,\n} from './.Common';\n\nexport { Button };\n",
		testutil.ReadFile(t, filepath.Join(dir, "index.js")))

	assert.Equal(t, []string{filepath.Join(widget, "Widget.jsx")}, port.Revealed)
	assert.Empty(t, port.Errors)
}

func TestPipelineRun_Container(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "index.js", "")

	port := &testutil.FakePort{}
	p := NewPipeline(templates.Embedded(), port)

	res := p.Run(context.Background(), NewContainerRequest(dir, "Dashboard"))
	require.True(t, res.OK(), "run failed: %v", res.Err())

	snap := testutil.Snapshot(t, dir)
	assert.Contains(t, snap, "Dashboard/Dashboard.jsx")
	assert.Contains(t, snap, "Dashboard/index.js")
	assert.NotContains(t, snap, "Dashboard/styled.jsx")
	assert.Contains(t, snap["Dashboard/Dashboard.jsx"], `data-test="dashboard"`)
	assert.Equal(t, "\nexport {\n\tDashboard\n} from './Dashboard';\n", snap["index.js"])
}

func TestPipelineRun_MissingParentDirectory(t *testing.T) {
	dir := t.TempDir()

	port := &testutil.FakePort{}
	p := NewPipeline(templates.Embedded(), port)

	res := p.Run(context.Background(), NewComponentRequest(dir, "Widget"))
	require.False(t, res.OK())
	assert.Equal(t, 0, res.Failed.Index)
	assert.Empty(t, res.Completed)
	assert.Empty(t, testutil.Snapshot(t, dir))
	assert.Empty(t, port.Revealed)
}

func TestPipelineRun_MissingBarrelLeavesPartialState(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".Common/index.js", "")

	port := &testutil.FakePort{}
	p := NewPipeline(templates.Embedded(), port)

	res := p.Run(context.Background(), NewComponentRequest(dir, "Widget"))
	require.False(t, res.OK())
	assert.Equal(t, 5, res.Failed.Index)
	assert.Equal(t, "patch index.js", res.Failed.Name)

	snap := testutil.Snapshot(t, dir)
	assert.Contains(t, snap, ".Common/Widget/Widget.jsx")
	assert.Contains(t, snap, ".Common/Widget/styled.jsx")
	assert.Contains(t, snap[".Common/index.js"], "} from './Widget';")
	assert.Empty(t, port.Revealed)
}

func TestPipelineRun_RevealError(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "index.js", "")

	revealErr := errors.New("editor not found")
	port := &testutil.FakePort{RevealErr: revealErr}
	p := NewPipeline(templates.Embedded(), port)

	res := p.Run(context.Background(), NewContainerRequest(dir, "Dashboard"))
	require.False(t, res.OK())
	assert.ErrorIs(t, res.Err(), revealErr)
	assert.Equal(t, "reveal Dashboard.jsx", res.Failed.Name)
}
