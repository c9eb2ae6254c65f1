// Package xqs 把键值数据编码为 URL 查询字符串（application/x-www-form-urlencoded）。
//
// 三个入口，按输入形态选择：
//
//   - [FromPairs]：有序键值对，输出保持输入顺序，允许重复键
//   - [FromMap]：map，输出按键排序，结果稳定
//   - [FromStruct]：结构体，按 `url` 标签编码，委托 github.com/google/go-querystring
//
// 示例：
//
//	xqs.FromPairs([][2]string{{"foo", "bar"}, {"baz", "quux"}})  // foo=bar&baz=quux
//
//	type Query struct {
//	    From  string `url:"from"`
//	    To    string `url:"to"`
//	    Limit int    `url:"limit,omitempty"`
//	}
//	s, err := xqs.FromStruct(Query{From: "00:00:00:00:00:00", To: "00:00:00:00:00:01"})
//	// from=00%3A00%3A00%3A00%3A00%3A00&to=00%3A00%3A00%3A00%3A00%3A01
package xqs
