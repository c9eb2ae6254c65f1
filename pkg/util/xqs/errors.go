package xqs

import "errors"

// ErrInvalidInput 表示 FromStruct 的输入不是结构体或结构体指针。
var ErrInvalidInput = errors.New("xqs: input must be a struct or pointer to struct")
