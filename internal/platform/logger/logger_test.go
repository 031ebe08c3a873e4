package logger

import (
	"bytes"
	"context"
	"testing"

	kit "foodproxy/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":       zerolog.TraceLevel,
		"debug":       zerolog.DebugLevel,
		"INFO":        zerolog.InfoLevel,
		"warn":        zerolog.WarnLevel,
		"warning":     zerolog.WarnLevel,
		"error":       zerolog.ErrorLevel,
		"":            zerolog.InfoLevel,
		"  nonsense ": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitNamedAndRequestScoped(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "debug",
		Format:       "console",
		Service:      "foodproxy-test",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})

	Get().Info().Str("k", "v").Msg("root-msg")
	Named("upstream").Info().Msg("named-msg")

	ctx := WithRequest(context.Background(), "req-123")
	if got := RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q", got)
	}
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Info().Msg("ctx-empty")

	out := buf.String()
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "component=")
	kit.MustContain(t, out, "upstream")
	kit.MustContain(t, out, "request_id=")
	kit.MustContain(t, out, "req-123")
	kit.MustContain(t, out, "build=")
	kit.MustContain(t, out, "service=")
	kit.MustContain(t, out, "foodproxy-test")
}

func TestWithRequestEmptyIDIsNoop(t *testing.T) {
	ctx := context.Background()
	if WithRequest(ctx, "") != ctx {
		t.Fatalf("empty id should return ctx unchanged")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" {
		t.Fatalf("level/format mismatch: %+v", opt)
	}
	if opt.Service != "foodproxy" {
		t.Fatalf("service default = %q", opt.Service)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("caller/sample mismatch: %+v", opt)
	}
}
