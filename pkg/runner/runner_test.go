package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklint/booklint/pkg/checks/standard"
	"github.com/booklint/booklint/pkg/config"
	"github.com/booklint/booklint/pkg/engine"
	"github.com/booklint/booklint/pkg/fsutil"
)

func newTestRunner(t *testing.T, cfg *config.Config) *Runner {
	t.Helper()
	registry := engine.NewRegistry()
	require.NoError(t, registry.RegisterProvider(standard.Provider()))
	eng, err := registry.NewEngine(cfg)
	require.NoError(t, err)
	return New(eng)
}

func TestRunLintOnly(t *testing.T) {
	root := writeTree(t, map[string]string{
		"clean.md": "# Clean\n",
		"dirty.md": "# Dirty \n",
	})
	cfg := config.New()

	result, err := newTestRunner(t, cfg).Run(context.Background(), Options{
		Paths:      []string{root},
		WorkingDir: root,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.True(t, result.HasFindings())
	assert.False(t, result.HasErrors())

	require.Len(t, result.Files, 2)
	assert.Empty(t, result.Files[0].Findings)
	require.NotEmpty(t, result.Files[1].Findings)
	assert.Equal(t, "MD009", result.Files[1].Findings[0].CheckID)

	// Lint-only never touches the file.
	data, err := os.ReadFile(filepath.Join(root, "dirty.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Dirty \n", string(data))
}

func TestRunFixRewritesAndBacksUp(t *testing.T) {
	root := writeTree(t, map[string]string{
		"doc.md": "# Title \n\ntext\t here\n",
	})
	cfg := config.New()
	cfg.Fix = true

	result, err := newTestRunner(t, cfg).Run(context.Background(), Options{
		Paths:      []string{root},
		WorkingDir: root,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	require.NoError(t, outcome.Err)
	assert.True(t, outcome.Written)
	assert.True(t, outcome.BackedUp)
	assert.Equal(t, 2, outcome.Fixed)
	assert.Equal(t, 1, result.Stats.FilesFixed)
	assert.Equal(t, 2, result.Stats.FindingsFixed)

	path := filepath.Join(root, "doc.md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\ntext     here\n", string(data))

	// The backup holds the pre-fix bytes.
	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "# Title \n\ntext\t here\n", string(backup))
}

func TestRunDryRunLeavesFilesAlone(t *testing.T) {
	root := writeTree(t, map[string]string{
		"doc.md": "# Title \n",
	})
	cfg := config.New()
	cfg.Fix = true
	cfg.DryRun = true

	result, err := newTestRunner(t, cfg).Run(context.Background(), Options{
		Paths:      []string{root},
		WorkingDir: root,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	assert.False(t, outcome.Written)
	assert.False(t, outcome.BackedUp)
	assert.Equal(t, 1, outcome.Fixed)
	require.NotNil(t, outcome.Diff)
	assert.False(t, outcome.Diff.Empty())

	path := filepath.Join(root, "doc.md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title \n", string(data))

	_, err = os.Stat(fsutil.BackupPath(path))
	assert.True(t, os.IsNotExist(err))
}

func TestRunNoBackup(t *testing.T) {
	root := writeTree(t, map[string]string{
		"doc.md": "# Title \n",
	})
	cfg := config.New()
	cfg.Fix = true
	cfg.NoBackup = true

	result, err := newTestRunner(t, cfg).Run(context.Background(), Options{
		Paths:      []string{root},
		WorkingDir: root,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].Written)
	assert.False(t, result.Files[0].BackedUp)

	_, err = os.Stat(fsutil.BackupPath(filepath.Join(root, "doc.md")))
	assert.True(t, os.IsNotExist(err))
}

func TestRunRecordsPerFileErrors(t *testing.T) {
	root := writeTree(t, map[string]string{
		"good.md": "# Good\n",
	})
	// Invalid UTF-8 fails document construction, not the batch.
	bad := filepath.Join(root, "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe}, 0o644))

	cfg := config.New()
	result, err := newTestRunner(t, cfg).Run(context.Background(), Options{
		Paths:      []string{root},
		WorkingDir: root,
		Config:     cfg,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Error(t, result.Files[0].Err)
	assert.NoError(t, result.Files[1].Err)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.True(t, result.HasErrors())
}

func TestRunEmptyDiscovery(t *testing.T) {
	cfg := config.New()
	result, err := newTestRunner(t, cfg).Run(context.Background(), Options{
		Paths:      []string{t.TempDir()},
		WorkingDir: t.TempDir(),
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
}
