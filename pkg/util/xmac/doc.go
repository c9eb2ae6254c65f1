// Package xmac 把 MAC 地址视为 48 位线性地址空间上的点，提供解析、格式化和区间运算。
//
// 每个 [Addr] 与一个 48 位无符号序数一一对应：六个字节按大端序解释，
// 第 0 字节为最高位。序数给地址空间定义了全序，区间运算都建立在序数之上。
//
// # 解析与格式化
//
//	addr, err := xmac.Parse("AA-BB-CC-DD-EE-FF")
//	fmt.Println(xmac.Format(addr))                 // aa:bb:cc:dd:ee:ff
//	fmt.Println(addr.FormatString(xmac.StyleDot))  // aabb.ccdd.eeff
//	xmac.IsValid("aa:bb:cc:dd:ee:gg")              // false
//
// 只接受冒号或短线分隔的六个八位组，大小写不敏感，不修剪空白。
// 点分、无分隔等写法只用于输出。解析失败返回 [*ParseError]，
// 其 Err 字段为 [ErrEmpty]、[ErrInvalidFormat] 或 [ErrInvalidLength]，可用 errors.Is 判断。
//
// # 序数
//
//	n := addr.Uint64()            // 0xaabbccddeeff
//	back := xmac.AddrFromUint64(n) // back == addr
//
// # 区间
//
// 区间总是闭区间，端点顺序无关：
//
//	xmac.Count(a, b) == xmac.Count(b, a)
//	xmac.Enumerate(b, a)  // 与 Enumerate(a, b) 相同，按序数升序
//
//	n, err := xmac.CountText("00:00:00:00:00:00", "00:00:00:00:00:ff")  // 256
//	ss, err := xmac.EnumerateTextStrings("00:00:00:00:00:01", "00:00:00:00:00:00")
//	// ["00:00:00:00:00:00", "00:00:00:00:00:01"]
//
// [Enumerate] 把整个区间物化为切片，内存与区间大小成正比。
// 大区间应先用 [Count] 检查，或使用惰性的 [Iter] / [Range.All]。
//
// # 零值
//
// 零值 Addr{} 就是 00:00:00:00:00:00，可以参与所有运算并正常格式化。
// 需要区分"未设置"时请使用指针或 sql.Null[Addr]。
//
// 所有函数都是纯函数，可并发调用。
//
// 仅支持 EUI-48，不支持 EUI-64。
package xmac
