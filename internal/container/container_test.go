package container

import (
	"bytes"
	"context"
	"testing"

	"github.com/ordinator-tools/ordinator/internal/database"
	"github.com/ordinator-tools/ordinator/internal/toolconfig"
	"github.com/ordinator-tools/ordinator/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func testConfig(t *testing.T, dataDir string) toolconfig.Config {
	t.Helper()
	cfg := toolconfig.Defaults()
	cfg.Game.DataDir = dataDir
	cfg.Game.LoadOrderPath = dataDir + "/plugins.txt"
	return cfg
}

func TestNew_ProvidesDatabaseFacade(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	var db *database.Database

	c, err := New(
		WithToolConfig(testConfig(t, dir)),
		WithWriter(&buf),
		WithoutLifecycle(),
		fx.Populate(&db),
	)
	require.NoError(t, err)
	require.NotNil(t, db)

	err = c.Run(context.Background(), func() error { return nil })
	assert.NoError(t, err)
}

func TestNew_ProvidesOutputManagerOverWriter(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	var out *output.Manager

	c, err := New(
		WithToolConfig(testConfig(t, dir)),
		WithWriter(&buf),
		WithoutLifecycle(),
		fx.Populate(&out),
	)
	require.NoError(t, err)
	require.NotNil(t, out)

	out.Success("hello")
	err = c.Run(context.Background(), func() error { return nil })
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hello")
}
