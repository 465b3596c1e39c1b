package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Str("row_id", "7").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"row_id":"7"`)
}

func TestNewWithWriter_UnknownLevel(t *testing.T) {
	log := NewWithWriter(&bytes.Buffer{}, "loud")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())

	log = NewWithWriter(&bytes.Buffer{}, "")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("debug", true).GetLevel())
	assert.Equal(t, zerolog.ErrorLevel, New("error", false).GetLevel())
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, "info"))

	log := FromContext(ctx)
	log.Info().Msg("test")
	assert.Contains(t, buf.String(), "test")
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}
