package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repoutil/internal/adapters/config"
	"go.trai.ch/repoutil/internal/core/domain"
	"go.trai.ch/repoutil/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(mockLogger)

	path := createFile(t, t.TempDir(), domain.ConfigFileName, `
version: "1"
manifests:
  patterns: ["project.json", "*.deps.json"]
  ignore: ["node_modules"]
static:
  - name: Microsoft.CodeAnalysis
    versions: ["1.0.0", "1.1.0"]
  - name: Newtonsoft.Json
    versions: ["9.0.1"]
`)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, []string{"project.json", "*.deps.json"}, cfg.Scan.Patterns)
	assert.Equal(t, []string{"node_modules"}, cfg.Scan.Ignore)

	assert.Equal(t, []string{"Microsoft.CodeAnalysis", "Newtonsoft.Json"}, cfg.Policy.StaticNames())
	versions, ok := cfg.Policy.AllowedVersions("Microsoft.CodeAnalysis")
	require.True(t, ok)
	assert.Equal(t, []string{"1.0.0", "1.1.0"}, versions.Sorted())
	assert.False(t, cfg.Policy.IsStatic("System.Runtime"))
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	path := createFile(t, t.TempDir(), domain.ConfigFileName, `version: "1"`)

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScanOptions(), cfg.Scan)
	assert.Empty(t, cfg.Policy.StaticNames())
}

func TestLoader_Load_EmptyIgnoreDisablesDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	path := createFile(t, t.TempDir(), domain.ConfigFileName, "manifests:\n  ignore: []\n")

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Scan.Ignore)
	assert.Equal(t, []string{domain.DefaultManifestPattern}, cfg.Scan.Patterns)
}

func TestLoader_Load_Warnings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(mockLogger)

	mockLogger.EXPECT().Warn(`repoutil.yaml declares version "2", expected "1"`)
	mockLogger.EXPECT().Warn("static package Bar has no allowed versions; every reference to it will be reported")

	path := createFile(t, t.TempDir(), domain.ConfigFileName, `
version: "2"
static:
  - name: Bar
`)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	// The package stays static with an empty allowed set.
	assert.True(t, cfg.Policy.IsStatic("Bar"))
	versions, ok := cfg.Policy.AllowedVersions("Bar")
	require.True(t, ok)
	assert.Empty(t, versions)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "malformed yaml",
			content:     "static: [",
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "static is not a list",
			content:     "static: Foo",
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:        "missing name",
			content:     "static:\n  - versions: [\"1.0\"]\n",
			errContains: domain.ErrMissingPackageName.Error(),
		},
		{
			name:        "duplicate name",
			content:     "static:\n  - name: Foo\n    versions: [\"1.0\"]\n  - name: Foo\n    versions: [\"2.0\"]\n",
			errContains: domain.ErrDuplicateStaticPackage.Error(),
		},
		{
			name:        "invalid pattern",
			content:     "manifests:\n  patterns: [\"[a-\"]\n",
			errContains: domain.ErrInvalidPattern.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl))
			path := createFile(t, t.TempDir(), domain.ConfigFileName, tt.content)

			cfg, err := loader.Load(path)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoader_Load_DuplicateMetadata(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	path := createFile(t, t.TempDir(), domain.ConfigFileName, `
static:
  - name: Foo
    versions: ["1.0"]
  - name: Bar
    versions: ["1.0"]
  - name: Foo
    versions: ["2.0"]
`)

	_, err := loader.Load(path)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)

	meta := zErr.Metadata()
	assert.Equal(t, "Foo", meta["package"])
	assert.Equal(t, 0, meta["first_index"])
	assert.Equal(t, 2, meta["duplicate_index"])
}

func TestLoader_Load_MissingFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
