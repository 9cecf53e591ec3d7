package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/locko/rtools/internal/errors"
	"github.com/locko/rtools/internal/testutil"
)

func TestTemplatesEject(t *testing.T) {
	isolate(t)
	dir := filepath.Join(t.TempDir(), "templates")

	require.NoError(t, execute(t, "templates", "eject", dir))

	snap := testutil.Snapshot(t, dir)
	assert.Contains(t, snap, "component/component.tmpl")
	assert.Contains(t, snap, "container/container.tmpl")
	assert.Contains(t, snap, "styled.tmpl")

	err := execute(t, "templates", "eject", dir)
	assert.Equal(t, oerrors.ExitExists, exitCode(t, err))

	assert.NoError(t, execute(t, "templates", "eject", dir, "--force"))
}

func TestTemplatesList(t *testing.T) {
	isolate(t)
	assert.NoError(t, execute(t, "templates", "list"))

	dir := t.TempDir()
	require.NoError(t, execute(t, "templates", "eject", dir))
	assert.NoError(t, execute(t, "--templates", dir, "templates", "list"))

	err := execute(t, "--templates", filepath.Join(dir, "missing"), "templates", "list")
	assert.Equal(t, oerrors.ExitNotFound, exitCode(t, err))
}
