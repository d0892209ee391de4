package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "logsweep.yaml", "max_bytes: 123\nexclude: \"**/*.g.dart\"\nno_cache: true\n")

	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.NotNil(t, cfg.MaxBytes)
	assert.Equal(t, int64(123), *cfg.MaxBytes)
	require.NotNil(t, cfg.Exclude)
	assert.Equal(t, "**/*.g.dart", *cfg.Exclude)
	require.NotNil(t, cfg.NoCache)
	assert.True(t, *cfg.NoCache)
	assert.Nil(t, cfg.Include)
}

func TestLoadFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "logsweep.yaml", "max_bytes: [not an int\n")
	_, err := LoadFile(p)
	assert.Error(t, err)
}

func TestLoadLocal_SearchOrder(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  int64
	}{
		{
			name: "dotfile preferred over plain name",
			files: map[string]string{
				"logsweep.yaml":  "max_bytes: 1\n",
				".logsweep.yaml": "max_bytes: 7\n",
			},
			want: 7,
		},
		{
			name:  "plain name found when alone",
			files: map[string]string{"logsweep.yml": "max_bytes: 3\n"},
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tt.files {
				writeTemp(t, dir, name, body)
			}
			cfg, err := LoadLocal(dir)
			require.NoError(t, err)
			require.NotNil(t, cfg.MaxBytes)
			assert.Equal(t, tt.want, *cfg.MaxBytes)
		})
	}
}

func TestLoadLocal_Missing(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	assert.Error(t, err)
}
