package xjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMarshal 表示值无法序列化为 JSON。
var ErrMarshal = errors.New("xjson: marshal failed")

// PrettyE 将任意值序列化为两空格缩进的 JSON 字符串。
// 失败时返回空字符串和 [ErrMarshal] 包装的错误。
func PrettyE(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return string(data), nil
}

// Pretty 是 [PrettyE] 的便捷版本，用于日志和调试输出。
// 序列化失败时返回 "<marshal error: ...>"。
func Pretty(v any) string {
	s, err := PrettyE(v)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return s
}

// Write 把 v 编码后写入 w，末尾带换行。
// pretty 为 true 时缩进输出，否则输出单行紧凑格式。
// 不转义 HTML 字符，输出面向终端而非网页。
func Write(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		var se *json.UnsupportedTypeError
		var ve *json.UnsupportedValueError
		var me *json.MarshalerError
		if errors.As(err, &se) || errors.As(err, &ve) || errors.As(err, &me) {
			return fmt.Errorf("%w: %w", ErrMarshal, err)
		}
		return fmt.Errorf("xjson: write: %w", err)
	}
	return nil
}
