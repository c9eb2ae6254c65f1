package xmac

import (
	"fmt"
	"strings"
)

// Style 定义 MAC 地址的文本风格。
type Style uint8

const (
	// StyleColon 冒号分隔，小写：aa:bb:cc:dd:ee:ff（规范格式）
	StyleColon Style = iota
	// StyleDash 短线分隔，小写：aa-bb-cc-dd-ee-ff
	StyleDash
	// StyleDot 点分隔（Cisco 风格），小写：aabb.ccdd.eeff
	StyleDot
	// StyleBare 无分隔符，小写：aabbccddeeff
	StyleBare
	// StyleColonUpper 冒号分隔，大写：AA:BB:CC:DD:EE:FF
	StyleColonUpper
	// StyleDashUpper 短线分隔，大写：AA-BB-CC-DD-EE-FF
	StyleDashUpper
	// StyleDotUpper 点分隔，大写：AABB.CCDD.EEFF
	StyleDotUpper
	// StyleBareUpper 无分隔符，大写：AABBCCDDEEFF
	StyleBareUpper
)

var styleNames = [...]string{
	StyleColon:      "colon",
	StyleDash:       "dash",
	StyleDot:        "dot",
	StyleBare:       "bare",
	StyleColonUpper: "colon-upper",
	StyleDashUpper:  "dash-upper",
	StyleDotUpper:   "dot-upper",
	StyleBareUpper:  "bare-upper",
}

// String 返回风格名称，如 "colon"、"dot-upper"。
func (f Style) String() string {
	if int(f) < len(styleNames) {
		return styleNames[f]
	}
	return fmt.Sprintf("Style(%d)", uint8(f))
}

// ParseStyle 按名称查找风格（大小写不敏感）。
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, v := range styleNames {
		if v == n {
			return Style(i), nil
		}
	}
	return StyleColon, fmt.Errorf("xmac: unknown style %q", name)
}

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// String 返回 a 的规范文本：六个两位小写十六进制八位组，以冒号连接。
// 输出长度恒为 17。
func (a Addr) String() string {
	return string(appendSeparated(make([]byte, 0, lenColon), a.bytes, ':', hexLower))
}

// Format 返回 a 的规范文本，等价于 a.String()。
func Format(a Addr) string {
	return a.String()
}

// FormatString 按指定风格格式化。未知风格按规范格式输出。
func (a Addr) FormatString(f Style) string {
	return string(a.AppendFormat(nil, f))
}

// AppendFormat 把按 f 格式化后的文本追加到 dst。
func (a Addr) AppendFormat(dst []byte, f Style) []byte {
	switch f {
	case StyleDash:
		return appendSeparated(dst, a.bytes, '-', hexLower)
	case StyleDot:
		return appendDot(dst, a.bytes, hexLower)
	case StyleBare:
		return appendBare(dst, a.bytes, hexLower)
	case StyleColonUpper:
		return appendSeparated(dst, a.bytes, ':', hexUpper)
	case StyleDashUpper:
		return appendSeparated(dst, a.bytes, '-', hexUpper)
	case StyleDotUpper:
		return appendDot(dst, a.bytes, hexUpper)
	case StyleBareUpper:
		return appendBare(dst, a.bytes, hexUpper)
	default:
		return appendSeparated(dst, a.bytes, ':', hexLower)
	}
}

func appendSeparated(dst []byte, b [6]byte, sep byte, hex string) []byte {
	for i, v := range b {
		if i > 0 {
			dst = append(dst, sep)
		}
		dst = append(dst, hex[v>>4], hex[v&0x0f])
	}
	return dst
}

func appendDot(dst []byte, b [6]byte, hex string) []byte {
	for i, v := range b {
		if i == 2 || i == 4 {
			dst = append(dst, '.')
		}
		dst = append(dst, hex[v>>4], hex[v&0x0f])
	}
	return dst
}

func appendBare(dst []byte, b [6]byte, hex string) []byte {
	for _, v := range b {
		dst = append(dst, hex[v>>4], hex[v&0x0f])
	}
	return dst
}
