// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址解析、格式化、序号换算与闭区间计数/枚举
//   - xjson: JSON 输出，Pretty 格式化与写入 io.Writer
//   - xqs: URL 查询串编码，有序键值对、map 与结构体标签
package util
