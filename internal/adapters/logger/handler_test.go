package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/repoutil/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		log  func(*slog.Logger)
		want string
	}{
		{
			name: "info",
			log:  func(l *slog.Logger) { l.Info("hello") },
			want: "hello\n",
		},
		{
			name: "warn",
			log:  func(l *slog.Logger) { l.Warn("careful") },
			want: "! careful\n",
		},
		{
			name: "error",
			log:  func(l *slog.Logger) { l.Error("broken") },
			want: "✗ broken\n",
		},
		{
			name: "debug filtered",
			log:  func(l *slog.Logger) { l.Debug("hidden") },
			want: "",
		},
		{
			name: "record attributes",
			log:  func(l *slog.Logger) { l.Info("scan", "manifests", 2) },
			want: "scan\n  manifests: 2\n",
		},
		{
			name: "keys are aligned",
			log: func(l *slog.Logger) {
				l.Warn("static package has no allowed versions", "package", "Bar", "first_index", 3)
			},
			want: "! static package has no allowed versions\n  package:     Bar\n  first_index: 3\n",
		},
		{
			name: "attributes before a group stay unqualified",
			log:  func(l *slog.Logger) { l.With("root", ".").WithGroup("cache").Info("hit", "key", "ab") },
			want: "hit\n  root:      .\n  cache.key: ab\n",
		},
		{
			name: "group attribute",
			log:  func(l *slog.Logger) { l.Info("loaded", slog.Group("config", "path", "repoutil.yaml")) },
			want: "loaded\n  config.path: repoutil.yaml\n",
		},
		{
			name: "multiline message",
			log:  func(l *slog.Logger) { l.Info("first\nsecond") },
			want: "first\n  second\n",
		},
		{
			name: "cause chain",
			log: func(l *slog.Logger) {
				l.Error("Error: failed to load manifests",
					"dir", "repo",
					slog.Any(logger.CausesKey, []logger.ErrorEntry{
						{Message: "failed to read manifest", Metadata: map[string]any{"manifest": "a/project.json"}},
						{Message: "permission denied"},
					}))
			},
			want: "✗ Error: failed to load manifests\n" +
				"  dir: repo\n" +
				"\n" +
				"  Caused by:\n" +
				"    → failed to read manifest\n" +
				"      manifest: a/project.json\n" +
				"    → permission denied\n",
		},
		{
			name: "causes key inside a group is a plain attribute",
			log:  func(l *slog.Logger) { l.WithGroup("g").Info("x", logger.CausesKey, "none") },
			want: "x\n  g.causes: none\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(slog.New(logger.NewPrettyHandler(buf, nil)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_HighlightsSubjects(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")
	t.Setenv("COLORTERM", "truecolor")

	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, nil)).Info("checked", "manifest", "a/project.json", "count", "2")

	out := buf.String()
	assert.Contains(t, out, "\x1b[", "colors are enabled")
	assert.Contains(t, out, "a/project.json")
	assert.NotContains(t, out, "manifest: a/project.json", "subject values are styled")
	assert.Contains(t, out, "count:")
}
