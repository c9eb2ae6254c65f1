package xqs

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/go-querystring/query"
)

// FromPairs 按输入顺序编码键值对，重复键原样保留。
//
// 与 url.Values.Encode 不同，这里不排序：调用方给出的顺序就是输出顺序。
func FromPairs(pairs [][2]string) string {
	var sb strings.Builder
	for i, kv := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv[0]))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv[1]))
	}
	return sb.String()
}

// FromMap 编码 map，输出按键排序。nil 或空 map 返回空字符串。
func FromMap(m map[string]string) string {
	v := make(url.Values, len(m))
	for k, val := range m {
		v.Set(k, val)
	}
	return v.Encode()
}

// FromStruct 按 `url` 结构体标签编码，输出按键排序。
//
// 标签语法见 github.com/google/go-querystring/query，常用的有 omitempty、comma、int。
// v 为 nil、nil 指针或非结构体时返回 [ErrInvalidInput]。
func FromStruct(v any) (string, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", ErrInvalidInput
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: got %T", ErrInvalidInput, v)
	}

	values, err := query.Values(v)
	if err != nil {
		return "", fmt.Errorf("xqs: encode %T: %w", v, err)
	}
	return values.Encode(), nil
}
