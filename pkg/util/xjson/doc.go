// Package xjson 提供 JSON 输出工具函数。
//
//   - [PrettyE]: 缩进格式序列化，返回 (string, error)，失败时错误包装 [ErrMarshal]
//   - [Pretty]: 便捷版本，失败时返回 "<marshal error: ...>" 标记字符串，便于在日志中识别
//   - [Write]: 直接编码到 io.Writer，供命令行输出使用，可选缩进，不转义 HTML 字符
package xjson
