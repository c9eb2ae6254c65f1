package xrotate

import "io"

var _ io.WriteCloser = (Rotator)(nil)

// Rotator 是按大小轮转的日志文件写入器，实现必须并发安全。
//
// Close 之后的 Write 与 Rotate 返回 [ErrClosed]，重复 Close 同样返回 [ErrClosed]。
type Rotator interface {
	Write(p []byte) (n int, err error)
	Close() error

	// Rotate 立即切换到新文件，旧文件按备份规则保留。
	Rotate() error

	// Filename 返回规范化后的当前日志文件路径。
	Filename() string
}
