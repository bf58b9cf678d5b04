package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTargets_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	content := `targets:
  - name: bitnet
    kind: BitNet
    url: http://localhost:8000
  - name: omni
    kind: omniparser
    url: http://localhost:8800
    count: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	targets, err := LoadTargets(path)
	require.NoError(t, err)
	require.Len(t, targets.Targets, 2)

	assert.Equal(t, Target{Name: "bitnet", Kind: KindBitNet, URL: "http://localhost:8000"}, targets.Targets[0])
	assert.Equal(t, 5, targets.Targets[1].Count)
}

func TestLoadTargets_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.json")
	content := `{"targets":[{"name":"gui","kind":"flaskgui","url":"http://127.0.0.1:5000"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	targets, err := LoadTargets(path)
	require.NoError(t, err)
	require.Len(t, targets.Targets, 1)
	assert.Equal(t, KindFlaskGUI, targets.Targets[0].Kind)
}

func TestLoadTargets_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTargets(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read targets file")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"targets":`), 0o644))
	_, err = LoadTargets(bad)
	assert.ErrorContains(t, err, "failed to parse JSON targets")

	invalid := filepath.Join(dir, "invalid.yml")
	require.NoError(t, os.WriteFile(invalid, []byte("targets: []\n"), 0o644))
	_, err = LoadTargets(invalid)
	assert.ErrorContains(t, err, "at least one target is required")
}
