package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/chronoquest/internal/logger"
)

func TestLookupLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  logger.Level
		valid bool
	}{
		{"debug", logger.DEBUG, true},
		{"INFO", logger.INFO, true},
		{"warning", logger.WARN, true},
		{" Error ", logger.ERROR, true},
		{"verbose", logger.INFO, false},
		{"", logger.INFO, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logger.LookupLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Info("hidden")
	log.Warn("shown %d", 42)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown 42")
	assert.Contains(t, out, "logger_test.go")
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false)).
		WithPrefix("game").
		WithFields(map[string]any{"zeta": 1, "alpha": "a"})

	log.Info("guess recorded")

	out := buf.String()
	assert.Contains(t, out, "[game] ")
	assert.Contains(t, out, "guess recorded alpha=a zeta=1\n")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	scoped := logger.New(logger.WithOutput(&buf), logger.WithColors(false)).WithField("request_id", "abc")

	ctx := logger.NewContext(context.Background(), scoped)
	logger.FromContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
