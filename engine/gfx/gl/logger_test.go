package glbackend

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_SilentByDefault(t *testing.T) {
	l := Logger()
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, l.Enabled(context.Background(), lvl), "level %v", lvl)
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
