package xmac

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出规范格式。
func (a Addr) MarshalText() ([]byte, error) {
	return a.AppendFormat(make([]byte, 0, lenColon), StyleColon), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的格式，空输入视为错误。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范格式。
// 地址文本只含 [0-9a-f:]，无需转义。
func (a Addr) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, lenColon+2)
	buf = append(buf, '"')
	buf = a.AppendFormat(buf, StyleColon)
	return append(buf, '"'), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 保持接收者不变，与标准库约定一致；空字符串视为错误。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return a.UnmarshalText([]byte(s))
}

// Value 实现 [driver.Valuer]，写入规范格式字符串。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
//
// 支持 string、[]byte（文本或 6 字节二进制）。
// SQL NULL 无法用值类型表达，返回错误；可空列请使用 sql.Null[Addr]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		// BINARY(6) 列。文本格式固定 17 字符，不会与之冲突。
		if len(v) == 6 {
			copy(a.bytes[:], v)
			return nil
		}
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, src)
	}
}
