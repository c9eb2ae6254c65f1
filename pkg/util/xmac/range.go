package xmac

import "iter"

// Range 表示闭区间 [Lo, Hi]，Lo 的序数不大于 Hi。
//
// 使用 [NewRange] 构造，端点顺序会自动归一化。
// 零值 Range{} 是只包含 00:00:00:00:00:00 的单点区间。
type Range struct {
	Lo, Hi Addr
}

// NewRange 返回以 a、b 为端点的闭区间，与参数顺序无关。
func NewRange(a, b Addr) Range {
	if b.Less(a) {
		a, b = b, a
	}
	return Range{Lo: a, Hi: b}
}

// ParseRange 解析两个端点文本并构造区间。
// 先解析 from，再解析 to；任一失败直接返回该 [*ParseError]。
func ParseRange(from, to string) (Range, error) {
	a, err := Parse(from)
	if err != nil {
		return Range{}, err
	}
	b, err := Parse(to)
	if err != nil {
		return Range{}, err
	}
	return NewRange(a, b), nil
}

// Len 返回区间内的地址数量，恒 ≥ 1，最大为 1<<48。
func (r Range) Len() uint64 {
	return r.Hi.Uint64() - r.Lo.Uint64() + 1
}

// Contains 报告 a 是否位于区间内（含端点）。
func (r Range) Contains(a Addr) bool {
	v := a.Uint64()
	return r.Lo.Uint64() <= v && v <= r.Hi.Uint64()
}

// All 返回按序数升序遍历区间的惰性迭代器。
func (r Range) All() iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		lo, hi := r.Lo.Uint64(), r.Hi.Uint64()
		for v := lo; ; v++ {
			if !yield(AddrFromUint64(v)) || v == hi {
				return
			}
		}
	}
}

// Addrs 把区间完整展开为升序切片。
//
// 内存占用与 [Range.Len] 成正比，接近 1<<48 的区间无法展开；
// 调用方应先检查 Len，或改用 [Range.All] / [CollectN]。
func (r Range) Addrs() []Addr {
	out := make([]Addr, 0, r.Len())
	for a := range r.All() {
		out = append(out, a)
	}
	return out
}

// String 返回 "lo-hi" 形式的文本，端点为规范格式。
func (r Range) String() string {
	return r.Lo.String() + "-" + r.Hi.String()
}

// Count 返回 a、b 之间（含两端）的地址数量。
//
// 对称：Count(a, b) == Count(b, a)；a == b 时返回 1。
// 结果最大为 1<<48，因此使用 uint64。
func Count(a, b Addr) uint64 {
	return NewRange(a, b).Len()
}

// CountText 解析两个端点后调用 [Count]。
// 任一端点解析失败时返回该错误，不做计算。
func CountText(from, to string) (uint64, error) {
	r, err := ParseRange(from, to)
	if err != nil {
		return 0, err
	}
	return r.Len(), nil
}

// Enumerate 返回 a、b 之间（含两端）的全部地址，按序数升序排列。
//
// Enumerate(a, b) 与 Enumerate(b, a) 结果相同，长度等于 Count(a, b)。
// 结果完整物化在内存中，见 [Range.Addrs]。
func Enumerate(a, b Addr) []Addr {
	return NewRange(a, b).Addrs()
}

// EnumerateText 解析两个端点后调用 [Enumerate]。
func EnumerateText(from, to string) ([]Addr, error) {
	r, err := ParseRange(from, to)
	if err != nil {
		return nil, err
	}
	return r.Addrs(), nil
}

// EnumerateTextStrings 同 [EnumerateText]，但每个地址以规范格式输出，顺序不变。
func EnumerateTextStrings(from, to string) ([]string, error) {
	addrs, err := EnumerateText(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out, nil
}

// Iter 返回 a、b 之间地址的惰性升序迭代器，与参数顺序无关。
//
//	for addr := range xmac.Iter(from, to) {
//	    fmt.Println(addr)
//	}
func Iter(a, b Addr) iter.Seq[Addr] {
	return NewRange(a, b).All()
}

// CollectN 将迭代器中的地址收集到切片中，最多 maxCount 个。
// maxCount ≤ 0 表示不限制数量。
//
// 预分配容量上限为 1<<20，防止极端 maxCount 直接触发大内存分配。
func CollectN(seq iter.Seq[Addr], maxCount int) []Addr {
	var out []Addr
	if maxCount > 0 {
		out = make([]Addr, 0, min(maxCount, 1<<20))
	}
	for a := range seq {
		if maxCount > 0 && len(out) >= maxCount {
			break
		}
		out = append(out, a)
	}
	return out
}
