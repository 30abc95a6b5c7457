package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	cfg, err := FromYAML([]byte(`
policy: enable-all
disable-categories: [mdbook]
disable: [MD013]
checks:
  MD010:
    severity: error
    options:
      spaces-per-tab: 8
ignore:
  - "vendor/**"
`))
	require.NoError(t, err)

	assert.Equal(t, PolicyEnableAll, cfg.Policy)
	assert.Equal(t, []string{"mdbook"}, cfg.DisableCategories)
	assert.Equal(t, []string{"MD013"}, cfg.Disable)
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)

	cc, ok := cfg.CheckBlock("MD010")
	require.True(t, ok)
	require.NotNil(t, cc.Severity)
	assert.Equal(t, "error", *cc.Severity)
	assert.Equal(t, 8, cc.Options["spaces-per-tab"])
}

func TestFromTOML(t *testing.T) {
	cfg, err := FromTOML([]byte(`
policy = "enable-none"
enable = ["MD009", "MD047"]

[checks.MD012.options]
max_blank_lines = 2
`))
	require.NoError(t, err)

	assert.Equal(t, PolicyEnableNone, cfg.Policy)
	assert.Equal(t, []string{"MD009", "MD047"}, cfg.Enable)

	cc, ok := cfg.CheckBlock("MD012")
	require.True(t, ok)
	assert.EqualValues(t, 2, cc.Options["max_blank_lines"])
}

func TestFromJSON(t *testing.T) {
	cfg, err := FromJSON([]byte(`{
		"policy": "enable-all",
		"checks": {"MD013": {"enabled": false}}
	}`))
	require.NoError(t, err)

	cc, ok := cfg.CheckBlock("MD013")
	require.True(t, ok)
	require.NotNil(t, cc.Enabled)
	assert.False(t, *cc.Enabled)
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	_, err := FromYAML([]byte("policy: strict\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown policy")

	_, err = FromYAML([]byte("checks:\n  MD010:\n    severity: fatal\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}

func TestEmptyConfigGetsDefaults(t *testing.T) {
	cfg, err := FromYAML([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, PolicyEnableAll, cfg.Policy)
	assert.NotNil(t, cfg.Checks)
}

func TestLoadSelectsCodecByExtension(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "cfg.yml", "policy: enable-none\n"},
		{"toml", "cfg.toml", "policy = \"enable-none\"\n"},
		{"json", "cfg.json", `{"policy": "enable-none"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, PolicyEnableNone, cfg.Policy)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestDiscoverWalksAncestors(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".booklint.yml"),
		[]byte("policy: enable-none\n"), 0o644))

	cfg, path, err := Discover(nested)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, filepath.Join(root, ".booklint.yml"), path)
	assert.Equal(t, PolicyEnableNone, cfg.Policy)
}

func TestDiscoverPrefersNearestFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".booklint.yml"),
		[]byte("policy: enable-all\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, ".booklint.yml"),
		[]byte("policy: enable-none\n"), 0o644))

	cfg, path, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nested, ".booklint.yml"), path)
	assert.Equal(t, PolicyEnableNone, cfg.Policy)
}

func TestDiscoverNoConfig(t *testing.T) {
	cfg, path, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Empty(t, path)
}

func TestTemplateParses(t *testing.T) {
	cfg, err := FromYAML([]byte(Template))
	require.NoError(t, err)
	assert.True(t, cfg.Policy.IsValid())
}

func TestToYAMLRoundTrip(t *testing.T) {
	orig := New()
	orig.Disable = []string{"MD013"}
	sev := "error"
	orig.Checks["MD010"] = CheckConfig{Severity: &sev}

	data, err := orig.ToYAML()
	require.NoError(t, err)

	back, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, orig.Disable, back.Disable)

	cc, ok := back.CheckBlock("MD010")
	require.True(t, ok)
	require.NotNil(t, cc.Severity)
	assert.Equal(t, "error", *cc.Severity)
}
