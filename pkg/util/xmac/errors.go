package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串（去除首尾空白后）。
	ErrEmpty = errors.New("xmac: empty input")

	// ErrInvalidFormat 表示 MAC 地址文本不符合十六进制八位组语法。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrInvalidLength 表示 MAC 地址长度不正确（期望 6 字节）。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrOverflow 表示地址运算溢出（超过 ff:ff:ff:ff:ff:ff）。
	ErrOverflow = errors.New("xmac: address overflow")

	// ErrUnderflow 表示地址运算下溢（低于 00:00:00:00:00:00）。
	ErrUnderflow = errors.New("xmac: address underflow")

	// ErrNilReceiver 表示在 nil 指针上调用反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)

// ParseError 表示文本无法解析为 MAC 地址。
//
// Err 总是上面的哨兵错误之一，因此以下两种判断都成立：
//
//	var pe *xmac.ParseError
//	errors.As(err, &pe)                   // 取得原始输入
//	errors.Is(err, xmac.ErrInvalidFormat) // 判断失败原因
type ParseError struct {
	// Input 原始输入（未去除空白）。
	Input string
	// Err 失败原因。
	Err error
	// Detail 可选的补充说明，如出错位置。
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg + " (input " + quote(e.Input) + ")"
}

func (e *ParseError) Unwrap() error { return e.Err }

// quote 截断过长输入，避免把大段垃圾数据写进错误信息。
func quote(s string) string {
	const maxLen = 32
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return `"` + s + `"`
}
