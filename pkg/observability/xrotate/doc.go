// Package xrotate 提供按大小轮转的日志文件写入器。
//
// [NewLumberjack] 基于 lumberjack v2：超过 MaxSizeMB 自动切换文件，
// 备份按数量与天数清理，可选 gzip 压缩。返回的 [Rotator] 是 io.WriteCloser，
// 可直接作为 xlog 的输出目标。
package xrotate
