package tickeval

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/podhmo/tickeval/expr"
	"github.com/podhmo/tickeval/game/invaders"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tickeval.yaml")
	content := `
game:
  width: 5
  height: 4
  seed: 42
max_steps: 300
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %+v", err)
	}
	want := &Config{
		Game:        invaders.Config{Width: 5, Height: 4, DescendEvery: 3, MaxTicks: 200, Seed: 42},
		MaxSteps:    300,
		Concurrency: 4,
		LogLevel:    "debug",
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
	if level, _ := got.Level(); level != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", level)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown key", content: "max_stepz: 1\n", want: "max_stepz"},
		{name: "bad level", content: "log_level: loud\n", want: "invalid log_level"},
		{name: "bad type", content: "concurrency: many\n", want: "decoding config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.content))
			if err == nil {
				t.Fatal("ParseConfig() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestParseConfigEmpty(t *testing.T) {
	got, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil) failed: %+v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), got, cmpopts.IgnoreFields(Config{}, "Logger")); diff != "" {
		t.Errorf("empty config is not the default (-want +got):\n%s", diff)
	}
}

func TestNewLoggerNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "info"
	logger, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hidden")
	logger.Info("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("expected a JSON record, got %s", out)
	}
}

func TestConfigEvaluator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Game = invaders.Config{Width: 1, Height: 10, MaxTicks: 20}
	ev := cfg.Evaluator(nil)

	results, err := ev.Evaluate(context.Background(), []*expr.Application{expr.Prog2(expr.Shoot, expr.Left)})
	if err != nil {
		t.Fatalf("Evaluate() failed: %+v", err)
	}
	if !results[0].Won {
		t.Errorf("shooting straight ahead on a one-column board did not win: %+v", results[0])
	}
}
