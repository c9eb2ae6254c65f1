package xmac

import (
	"encoding/binary"
	"fmt"
	"net"
)

// MaxOrdinal 是 48 位地址空间的最大序数（ff:ff:ff:ff:ff:ff）。
const MaxOrdinal uint64 = 1<<48 - 1

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 零值就是地址 00:00:00:00:00:00，是地址空间中的合法一点
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//
// 使用 [Parse]、[MustParse] 或 [AddrFromUint64] 创建：
//
//	addr, err := xmac.Parse("aa:bb:cc:dd:ee:ff")
//	addr := xmac.AddrFromUint64(0xaabbccddeeff)
type Addr struct {
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// AddrFromUint64 从 48 位序数创建 MAC 地址，是 [Addr.Uint64] 的逆运算。
//
// v 必须位于 [0, MaxOrdinal]，超出范围视为调用方违反前置条件并 panic。
// 范围运算内部只会产生合法序数。
func AddrFromUint64(v uint64) Addr {
	if v > MaxOrdinal {
		panic(fmt.Sprintf("xmac: ordinal %#x exceeds 48 bits", v))
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	var a Addr
	copy(a.bytes[:], buf[2:])
	return a
}

// Uint64 返回地址的 48 位序数：六个字节按大端序解释，第 0 字节为最高位。
func (a Addr) Uint64() uint64 {
	var buf [8]byte
	copy(buf[2:], a.bytes[:])
	return binary.BigEndian.Uint64(buf[:])
}

// Bytes 返回 MAC 地址的字节表示（长度始终为 6）。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// Compare 按序数比较两个地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	x, y := a.Uint64(), b.Uint64()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Less 报告 a 的序数是否小于 b。
func (a Addr) Less(b Addr) bool {
	return a.Compare(b) < 0
}

// Next 返回下一个地址（序数 +1）。
// a 为 ff:ff:ff:ff:ff:ff 时返回 [ErrOverflow]。
func (a Addr) Next() (Addr, error) {
	v := a.Uint64()
	if v == MaxOrdinal {
		return Addr{}, ErrOverflow
	}
	return AddrFromUint64(v + 1), nil
}

// Prev 返回前一个地址（序数 -1）。
// a 为 00:00:00:00:00:00 时返回 [ErrUnderflow]。
func (a Addr) Prev() (Addr, error) {
	v := a.Uint64()
	if v == 0 {
		return Addr{}, ErrUnderflow
	}
	return AddrFromUint64(v - 1), nil
}

// HardwareAddr 返回 [net.HardwareAddr] 表示。
// 返回副本，修改不影响原值。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.bytes[:])
	return hw
}
