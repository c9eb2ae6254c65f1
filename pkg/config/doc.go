// Package config 提供配置加载相关的子包。
//
// 子包列表：
//   - xconf: 基于 koanf 的分层配置（默认值、文件、显式覆盖）
package config
