package xmac

import (
	"fmt"
	"net"
	"strconv"
)

// lenColon 是唯一可解析的文本长度：xx:xx:xx:xx:xx:xx 或 xx-xx-xx-xx-xx-xx。
const lenColon = 17

// Parse 解析 MAC 地址字符串。
//
// 只接受冒号或短线分隔的六个八位组（大小写不敏感）：
//   - 冒号分隔：aa:bb:cc:dd:ee:ff
//   - 短线分隔：aa-bb-cc-dd-ee-ff
//
// 分隔符必须一致，每个八位组必须恰好两位十六进制数字。输入不做修剪，
// 首尾空白、点分或无分隔形式都视为格式错误。
// 失败时返回 [*ParseError]，不做部分解析。
func Parse(s string) (Addr, error) {
	if s == "" {
		return Addr{}, &ParseError{Input: s, Err: ErrEmpty}
	}

	var (
		addr   Addr
		bad    int
		detail string
	)
	switch {
	case len(s) == lenColon && (s[2] == ':' || s[2] == '-'):
		addr, bad, detail = parseSeparated(s, s[2])
	default:
		if n, ok := countOctets(s); ok {
			return Addr{}, &ParseError{Input: s, Err: ErrInvalidLength,
				Detail: "expected 6 octets, got " + strconv.Itoa(n)}
		}
		return Addr{}, &ParseError{Input: s, Err: ErrInvalidFormat,
			Detail: "unrecognized layout"}
	}

	if detail != "" {
		return Addr{}, &ParseError{Input: s, Err: ErrInvalidFormat, Detail: detail}
	}
	if bad >= 0 {
		return Addr{}, &ParseError{Input: s, Err: ErrInvalidFormat,
			Detail: "invalid hex digit at offset " + strconv.Itoa(bad)}
	}
	return addr, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// IsValid 报告 s 能否被 [Parse] 成功解析。
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// ParseBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 长度必须为 6 字节，EUI-64 等其他长度返回 [ErrInvalidLength]。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return ParseBytes(hw)
}

// parseSeparated 解析 17 字符的冒号/短线格式。
// 返回首个非法十六进制字符的偏移，全部合法时为 -1。
func parseSeparated(s string, sep byte) (Addr, int, string) {
	for i := 5; i < lenColon; i += 3 {
		if s[i] != sep {
			return Addr{}, -1, "inconsistent separator at offset " + strconv.Itoa(i)
		}
	}
	addr, bad := parseOffsets(s, [6]int{0, 3, 6, 9, 12, 15})
	return addr, bad, ""
}

// parseOffsets 按给定偏移读取六个十六进制字节对。
func parseOffsets(s string, offsets [6]int) (Addr, int) {
	var addr Addr
	for i, off := range offsets {
		hi, ok := unhex(s[off])
		if !ok {
			return Addr{}, off
		}
		lo, ok := unhex(s[off+1])
		if !ok {
			return Addr{}, off + 1
		}
		addr.bytes[i] = hi<<4 | lo
	}
	return addr, -1
}

// countOctets 判断 s 是否为冒号/短线分隔的十六进制八位组序列，并返回组数。
// 用于把 "aa:bb:cc" 或 EUI-64 这类"语法正确但长度不对"的输入归类为 ErrInvalidLength。
func countOctets(s string) (int, bool) {
	if len(s) < 2 || (len(s)+1)%3 != 0 {
		return 0, false
	}
	var sep byte
	if len(s) > 2 {
		sep = s[2]
		if sep != ':' && sep != '-' {
			return 0, false
		}
	}
	for i := 0; i < len(s); i += 3 {
		if _, ok := unhex(s[i]); !ok {
			return 0, false
		}
		if _, ok := unhex(s[i+1]); !ok {
			return 0, false
		}
		if i+2 < len(s) && s[i+2] != sep {
			return 0, false
		}
	}
	return (len(s) + 1) / 3, true
}

// unhex 返回十六进制字符的数值。
func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
