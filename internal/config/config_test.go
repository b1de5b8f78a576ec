package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/styled"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		wantErr  error
		assert   func(t *testing.T, cfg *Config)
	}{
		{
			name:     "full",
			contents: "key: app\nnonce: abc\ntheme:\n  primary: hotpink\n  space: 4\n",
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "app", cfg.Key)
				assert.Equal(t, "abc", cfg.Nonce)
				assert.Equal(t, "hotpink", cfg.Theme["primary"])
				assert.Equal(t, 4, cfg.Theme["space"])
			},
		},
		{
			name:     "empty",
			contents: "",
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, styled.ContextOptions{}, cfg.ContextOptions())
				assert.Equal(t, styled.Theme{}, cfg.ThemeValue())
			},
		},
		{
			name:     "bad key",
			contents: "key: App1\n",
			wantErr:  ErrInvalid,
		},
		{
			name:     "bad nonce",
			contents: "nonce: \"a\\tb\"\n",
			wantErr:  ErrInvalid,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse("styled.yaml", []byte(tc.contents))
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.assert(t, cfg)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("styled.yaml", []byte("key: app\ntheme: [unclosed\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "styled.yaml", perr.Path)
	assert.Positive(t, perr.Line)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styled.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key: docs\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, styled.ContextOptions{Key: "docs"}, cfg.ContextOptions())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNilConfig(t *testing.T) {
	var cfg *Config
	assert.Equal(t, styled.ContextOptions{}, cfg.ContextOptions())
	assert.Equal(t, styled.Theme{}, cfg.ThemeValue())
}
