package main

import (
	"log/slog"

	"github.com/omeyang/xmackit/pkg/util/xmac"
)

// 地址相关的日志字段名。
const (
	keyMAC   = "mac"
	keyRange = "range"
)

// macAttr 以规范形式记录单个地址。
func macAttr(a xmac.Addr) slog.Attr {
	return slog.String(keyMAC, a.String())
}

// rangeAttr 把区间记录为 range.from / range.to 分组。
func rangeAttr(r xmac.Range) slog.Attr {
	return slog.Group(keyRange,
		slog.String("from", r.Lo.String()),
		slog.String("to", r.Hi.String()),
	)
}
