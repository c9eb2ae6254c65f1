// Package xconf 提供基于 koanf 的分层配置加载。
//
// 三层优先级由低到高：
//   - 默认值：[WithDefaults] 注入的扁平键
//   - 配置数据：[New] 读取的文件或 [NewFromBytes] 传入的字节
//   - 显式覆盖：[Config.Set]，通常来自命令行参数
//
// 支持 YAML（.yaml, .yml）与 JSON（.json）。
//
// xconf 只负责加载与反序列化，不做字段校验；
// Unmarshal 基于 mapstructure，允许弱类型转换（字符串 "8080" 可转为 int）。
// 校验由调用方在 Unmarshal 之后完成。
//
// 所有方法并发安全。
package xconf
