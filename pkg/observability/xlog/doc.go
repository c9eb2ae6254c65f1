// Package xlog 基于 log/slog 的结构化日志。
//
// # 创建 Logger
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xmacctl.log", xrotate.WithMaxSize(10)).
//		Build()
//	defer cleanup()
//
// Builder 记录第一个配置错误并在 Build 时返回。
// SetRotation 通过 xrotate 写入按大小轮转的文件，cleanup 负责关闭它。
//
// # 级别
//
// [ParseLevel] 接受 debug/info/warn/warning/error。Level 实现
// encoding.TextUnmarshaler，可直接从配置文件反序列化。
// 派生 logger（With/WithGroup）共享父级级别，SetLevel 同步生效。
//
// # 属性
//
// [Err]、[Duration]、[Component]、[Operation]、[Count]、[Input]。
// 业务相关的属性由调用方用 slog.String / slog.Group 自行构造。
//
// # 全局 Logger
//
// [Default]、[SetDefault] 与 [Debug]、[Info]、[Warn]、[Error] 便利函数，
// 适合命令行工具。
package xlog
