package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repoutil/internal/core/domain"
)

func TestPackagePolicy(t *testing.T) {
	t.Parallel()

	policy := domain.NewPackagePolicy(
		[]string{"Bar", "Baz"},
		map[string][]string{"Bar": {"3.0", "3.1"}},
	)

	assert.True(t, policy.IsStatic("Bar"))
	assert.True(t, policy.IsStatic("Baz"))
	assert.False(t, policy.IsStatic("Foo"))
	assert.False(t, policy.IsStatic("bar"), "names are case sensitive")

	versions, ok := policy.AllowedVersions("Bar")
	require.True(t, ok)
	assert.True(t, versions.Contains("3.0"))
	assert.True(t, versions.Contains("3.1"))
	assert.False(t, versions.Contains("3.2"))
	assert.Equal(t, []string{"3.0", "3.1"}, versions.Sorted())

	_, ok = policy.AllowedVersions("Baz")
	assert.False(t, ok)

	assert.Equal(t, []string{"Bar", "Baz"}, policy.StaticNames())
}

func TestEmptyPackagePolicy(t *testing.T) {
	t.Parallel()

	policy := domain.EmptyPackagePolicy()
	assert.False(t, policy.IsStatic("Foo"))
	assert.Empty(t, policy.StaticNames())
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		diag domain.Diagnostic
		want string
	}{
		{
			name: "version mismatch",
			diag: domain.Diagnostic{
				Kind:     domain.KindVersionMismatch,
				Package:  "Foo",
				Version:  "1.2",
				Manifest: "b.json",
				Baseline: &domain.Occurrence{Version: "1.0", Manifest: "a.json"},
			},
			want: "package Foo version differs in: b.json at 1.2, a.json at 1.0",
		},
		{
			name: "disallowed version",
			diag: domain.Diagnostic{
				Kind:     domain.KindDisallowedVersion,
				Package:  "Bar",
				Version:  "2.0",
				Manifest: "src/a/project.json",
			},
			want: "package Bar at version 2.0 in src/a/project.json is not a valid version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostic_Lines(t *testing.T) {
	t.Parallel()

	mismatch := domain.Diagnostic{
		Kind:     domain.KindVersionMismatch,
		Package:  "Foo",
		Version:  "1.2",
		Manifest: "b.json",
		Baseline: &domain.Occurrence{Version: "1.0", Manifest: "a.json"},
	}
	assert.Equal(t, []string{
		"Package Foo version differs in:",
		"\tb.json at 1.2",
		"\ta.json at 1.0",
	}, mismatch.Lines())

	disallowed := domain.Diagnostic{
		Kind:     domain.KindDisallowedVersion,
		Package:  "Bar",
		Version:  "2.0",
		Manifest: "a.json",
	}
	assert.Equal(t, []string{"Package Bar at version 2.0 in a.json is not a valid version"}, disallowed.Lines())
}

func TestVerdict_OK(t *testing.T) {
	t.Parallel()

	v := &domain.Verdict{}
	assert.True(t, v.OK(), "a verdict without diagnostics succeeds")

	v.Record(domain.Diagnostic{Kind: domain.KindDisallowedVersion, Package: "Bar"})
	assert.False(t, v.OK())
	assert.Len(t, v.Diagnostics, 1)
}

func TestScanOptions(t *testing.T) {
	t.Parallel()

	opts := domain.DefaultScanOptions()
	assert.True(t, opts.IsManifest("project.json"))
	assert.False(t, opts.IsManifest("package.json"))

	assert.True(t, opts.IsIgnoredDir("node_modules"))
	assert.True(t, opts.IsIgnoredDir(".git"))
	assert.True(t, opts.IsIgnoredDir(".repoutil"))
	assert.False(t, opts.IsIgnoredDir("src"))

	custom := domain.ScanOptions{Patterns: []string{"*.json"}, Ignore: []string{"test*"}}
	assert.True(t, custom.IsManifest("a.json"))
	assert.False(t, custom.IsManifest("a.yaml"))
	assert.True(t, custom.IsIgnoredDir("testdata"))
	assert.True(t, custom.IsIgnoredDir(".jj"))
	require.NoError(t, custom.Validate())
}

func TestScanOptions_Validate(t *testing.T) {
	t.Parallel()

	opts := domain.ScanOptions{Patterns: []string{"[a-"}}
	err := opts.Validate()
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrInvalidPattern.Error())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	assert.Empty(t, cfg.Path)
	assert.Empty(t, cfg.Policy.StaticNames())
	assert.Equal(t, []string{domain.DefaultManifestPattern}, cfg.Scan.Patterns)
}
