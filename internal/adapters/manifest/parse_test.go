package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repoutil/internal/adapters/manifest"
	"go.trai.ch/repoutil/internal/core/domain"
)

func refs(pairs ...string) []domain.PackageReference {
	out := make([]domain.PackageReference, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.PackageReference{Name: pairs[i], Version: pairs[i+1]})
	}
	return out
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []domain.PackageReference
	}{
		{
			name:    "flat map",
			content: `{"Foo":"1.0"}`,
			want:    refs("Foo", "1.0"),
		},
		{
			name:    "flat map keeps declaration order",
			content: `{"Zeta":"1.0","Alpha":"2.0","Mid":"3.0"}`,
			want:    refs("Zeta", "1.0", "Alpha", "2.0", "Mid", "3.0"),
		},
		{
			name: "project dependencies",
			content: `{
  "dependencies": {
    "Microsoft.CodeAnalysis": "1.1.0",
    "System.Collections.Immutable": "1.1.37"
  }
}`,
			want: refs("Microsoft.CodeAnalysis", "1.1.0", "System.Collections.Immutable", "1.1.37"),
		},
		{
			name: "object form with version",
			content: `{
  "dependencies": {
    "Foo": { "version": "1.0", "type": "build" },
    "Bar": "2.0"
  }
}`,
			want: refs("Foo", "1.0", "Bar", "2.0"),
		},
		{
			name: "project references without version are skipped",
			content: `{
  "dependencies": {
    "Other.Project": { "target": "project" },
    "Bar": "2.0"
  }
}`,
			want: refs("Bar", "2.0"),
		},
		{
			name: "framework sections in document order",
			content: `{
  "frameworks": {
    "net46": { "dependencies": { "A": "1.0" } },
    "netstandard1.3": { "imports": "dotnet", "dependencies": { "B": "2.0" } }
  },
  "dependencies": { "C": "3.0" }
}`,
			want: refs("A", "1.0", "B", "2.0", "C", "3.0"),
		},
		{
			name: "dev dependencies",
			content: `{
  "name": "web",
  "version": "0.1.0",
  "dependencies": { "left-pad": "1.3.0" },
  "devDependencies": { "jest": "29.0.0" }
}`,
			want: refs("left-pad", "1.3.0", "jest", "29.0.0"),
		},
		{
			name:    "numbers are kept verbatim",
			content: `{"Foo": 1.10}`,
			want:    refs("Foo", "1.10"),
		},
		{
			name:    "null values are skipped",
			content: `{"Foo": null, "Bar": "1.0"}`,
			want:    refs("Bar", "1.0"),
		},
		{
			name:    "null section",
			content: `{"dependencies": null}`,
			want:    nil,
		},
		{
			name:    "tab indented json",
			content: "{\n\t\"dependencies\": {\n\t\t\"Foo\": \"1.0\"\n\t}\n}",
			want:    refs("Foo", "1.0"),
		},
		{
			name:    "byte order mark",
			content: "\uFEFF{\"Foo\": \"1.0\"}",
			want:    refs("Foo", "1.0"),
		},
		{
			name: "yaml manifest",
			content: `dependencies:
  Foo: "1.0"
  Bar:
    version: "2.0"
`,
			want: refs("Foo", "1.0", "Bar", "2.0"),
		},
		{
			name:    "flat map skips list fields",
			content: `{"Foo": "1.0", "tags": ["a", "b"], "Bar": "2.0"}`,
			want:    refs("Foo", "1.0", "Bar", "2.0"),
		},
		{
			name:    "flat map with only a list",
			content: `{"Foo": ["1.0", "2.0"]}`,
			want:    []domain.PackageReference{},
		},
		{
			name: "project style ignores unrelated list fields",
			content: `{
  "keywords": ["build", "tools"],
  "dependencies": { "Foo": "1.0" }
}`,
			want: refs("Foo", "1.0"),
		},
		{
			name:    "empty document",
			content: "",
			want:    nil,
		},
		{
			name:    "empty object",
			content: "{}",
			want:    []domain.PackageReference{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := manifest.Parse([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "malformed json",
			content:     `{"Foo": "1.0"`,
			errContains: domain.ErrManifestParseFailed.Error(),
		},
		{
			name:        "top level array",
			content:     `["Foo", "1.0"]`,
			errContains: domain.ErrManifestParseFailed.Error(),
		},
		{
			name:        "dependencies is not a mapping",
			content:     `{"dependencies": ["Foo"]}`,
			errContains: domain.ErrManifestParseFailed.Error(),
		},
		{
			name:        "dependency value is a list",
			content:     `{"dependencies": {"Foo": ["1.0", "2.0"]}}`,
			errContains: domain.ErrManifestParseFailed.Error(),
		},
		{
			name:        "frameworks is not a mapping",
			content:     `{"frameworks": "net46"}`,
			errContains: domain.ErrManifestParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := manifest.Parse([]byte(tt.content))
			require.Error(t, err)
			require.ErrorContains(t, err, tt.errContains)
			assert.Nil(t, got)
		})
	}
}
