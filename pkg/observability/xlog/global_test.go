package xlog

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobal(t *testing.T) {
	t.Cleanup(ResetDefault)

	ResetDefault()
	d1 := Default()
	assert.Same(t, d1, Default())
	assert.Equal(t, LevelInfo, d1.GetLevel())

	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).SetLevel(LevelDebug).SetAddSource(true).Build()
	require.NoError(t, err)
	SetDefault(logger)
	SetDefault(nil)
	assert.Same(t, logger, Default())

	ctx := context.Background()
	Debug(ctx, "d")
	Info(ctx, "i")
	Warn(ctx, "w")
	Error(ctx, "e")

	out := buf.String()
	for _, want := range []string{"msg=d", "msg=i", "msg=w", "msg=e"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "global_test.go", "source points at the caller of the package function")
}
