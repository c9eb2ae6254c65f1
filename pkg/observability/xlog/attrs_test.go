package xlog

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttrs(t *testing.T) {
	assert.True(t, Err(nil).Equal(slog.Attr{}))
	assert.Equal(t, "1.5s", Duration(1500*time.Millisecond).Value.String())
	assert.Equal(t, uint64(1<<48), Count(1<<48).Value.Uint64())
	assert.Equal(t, KeyComponent, Component("cli").Key)
	assert.Equal(t, KeyOperation, Operation("list").Key)
	assert.Equal(t, KeyInput, Input("aa:bb").Key)
	assert.Equal(t, "aa:bb", Input("aa:bb").Value.String())
}
