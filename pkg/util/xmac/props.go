package xmac

// 第一字节中的标志位。
const (
	bitGroup = 0x01 // I/G：1 表示组播
	bitLocal = 0x02 // U/L：1 表示本地管理
)

// Broadcast 返回广播地址 ff:ff:ff:ff:ff:ff。
func Broadcast() Addr {
	return AddrFromUint64(MaxOrdinal)
}

// IsZero 报告 a 是否为全零地址 00:00:00:00:00:00。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsBroadcast 报告 a 是否为广播地址。
func (a Addr) IsBroadcast() bool {
	return a.Uint64() == MaxOrdinal
}

// IsUnicast 报告 a 是否为单播地址（I/G 位为 0）。
func (a Addr) IsUnicast() bool {
	return a.bytes[0]&bitGroup == 0
}

// IsMulticast 报告 a 是否为组播地址（I/G 位为 1）。广播地址也属于组播。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&bitGroup != 0
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA，U/L 位为 1）。
// 虚拟机、容器网卡通常使用 LAA。
func (a Addr) IsLocallyAdministered() bool {
	return a.bytes[0]&bitLocal != 0
}

// IsUniversallyAdministered 报告 a 是否为全球唯一地址（UAA，U/L 位为 0）。
func (a Addr) IsUniversallyAdministered() bool {
	return a.bytes[0]&bitLocal == 0
}

// OUI 返回前 3 字节，即 IEEE 分配给厂商的组织唯一标识符。
func (a Addr) OUI() [3]byte {
	return [3]byte(a.bytes[:3])
}

// NIC 返回后 3 字节，由厂商分配。
func (a Addr) NIC() [3]byte {
	return [3]byte(a.bytes[3:])
}
