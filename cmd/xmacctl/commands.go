package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/xmackit/pkg/observability/xlog"
	"github.com/omeyang/xmackit/pkg/util/xmac"
	"github.com/urfave/cli/v3"
)

// exitError 表示输出已完成、只需设置退出码的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，对应退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// errRangeTooLarge 表示 list 的区间超过 range.max_list。
var errRangeTooLarge = errors.New("区间过大")

// ctxCheckEvery 是 list 检查取消信号的间隔。
const ctxCheckEvery = 4096

// onUsageError 挂在根命令和每个子命令上，把选项解析错误统一转成 usageError。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// cliUsageMarkers 是 urfave/cli 参数错误的已知文本。
// 只在错误绕过 OnUsageError 时用于兜底识别，文本随库版本可能变化。
var cliUsageMarkers = []string{
	"flag provided but not defined",
	"flag needs an argument",
	"No help topic for",
}

// isCLIUsageError 兜底识别未经 OnUsageError 转换的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, s := range cliUsageMarkers {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// rootAction 只在没有匹配到子命令时执行。
func rootAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return &usageError{msg: fmt.Sprintf("未知命令 %q，使用 --help 查看可用命令", cmd.Args().First())}
	}
	return &usageError{msg: "缺少命令，使用 --help 查看可用命令"}
}

func createCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:         "valid",
			Aliases:      []string{"v"},
			Usage:        "逐个校验地址，存在无效地址时退出码为 1",
			ArgsUsage:    "<mac>...",
			OnUsageError: onUsageError,
			Action:       withEnv(cmdValid),
		},
		{
			Name:         "parse",
			Aliases:      []string{"p"},
			Usage:        "解析地址并显示规范形式、序号与属性",
			ArgsUsage:    "<mac>",
			OnUsageError: onUsageError,
			Action:       withEnv(cmdParse),
		},
		{
			Name:         "count",
			Aliases:      []string{"c"},
			Usage:        "统计闭区间内的地址数量",
			ArgsUsage:    "<from> <to>",
			OnUsageError: onUsageError,
			Action:       withEnv(cmdCount),
		},
		{
			Name:         "list",
			Aliases:      []string{"l", "ls"},
			Usage:        "按升序列出闭区间内的全部地址",
			ArgsUsage:    "<from> <to>",
			OnUsageError: onUsageError,
			Action:       withEnv(cmdList),
		},
		{
			Name:         "ordinal",
			Aliases:      []string{"o"},
			Usage:        "把 48 位序号（十进制或 0x 十六进制）转换为地址",
			ArgsUsage:    "<n>",
			OnUsageError: onUsageError,
			Action:       withEnv(cmdOrdinal),
		},
	}
}

func requireArgs(cmd *cli.Command, n int) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) != n {
		return nil, &usageError{msg: fmt.Sprintf("%s 命令需要 %d 个参数 %s，实际 %d 个", cmd.Name, n, cmd.ArgsUsage, len(args))}
	}
	return args, nil
}

func cmdValid(ctx context.Context, cmd *cli.Command, e *env) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return &usageError{msg: "valid 命令至少需要一个地址"}
	}

	r := &validReport{Results: make([]validItem, 0, len(args))}
	invalid := 0
	for _, s := range args {
		item := validItem{Input: s, Valid: xmac.IsValid(s)}
		if !item.Valid {
			invalid++
			if _, err := xmac.Parse(s); err != nil {
				item.Error = err.Error()
			}
		}
		r.Results = append(r.Results, item)
	}

	if err := render(e, r); err != nil {
		return err
	}
	if invalid > 0 {
		e.logger.Info(ctx, "存在无效地址", xlog.Count(uint64(invalid)))
		return &exitError{code: 1}
	}
	return nil
}

func cmdParse(ctx context.Context, cmd *cli.Command, e *env) error {
	args, err := requireArgs(cmd, 1)
	if err != nil {
		return err
	}
	a, err := xmac.Parse(args[0])
	if err != nil {
		return err
	}
	e.logger.Debug(ctx, "已解析", xlog.Input(args[0]), macAttr(a))
	return render(e, newParseReport(args[0], a, e.style))
}

func cmdCount(ctx context.Context, cmd *cli.Command, e *env) error {
	args, err := requireArgs(cmd, 2)
	if err != nil {
		return err
	}
	n, err := xmac.CountText(args[0], args[1])
	if err != nil {
		return err
	}
	e.logger.Debug(ctx, "已统计", xlog.Count(n))
	return render(e, &countReport{From: args[0], To: args[1], Count: n})
}

func cmdList(ctx context.Context, cmd *cli.Command, e *env) error {
	args, err := requireArgs(cmd, 2)
	if err != nil {
		return err
	}
	r, err := xmac.ParseRange(args[0], args[1])
	if err != nil {
		return err
	}

	n := r.Len()
	if limit := e.settings.Range.MaxList; limit > 0 && n > uint64(limit) {
		e.logger.Warn(ctx, "拒绝列出过大的区间", rangeAttr(r), xlog.Count(n))
		return fmt.Errorf("%w: %s 含 %d 个地址，上限 %d (range.max_list)", errRangeTooLarge, r, n, limit)
	}

	addrs := make([]string, 0, min(n, defaultMaxList))
	for a := range r.All() {
		if len(addrs)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		addrs = append(addrs, a.FormatString(e.style))
	}
	e.logger.Debug(ctx, "已列出", rangeAttr(r), xlog.Count(n))

	return render(e, &listReport{
		From:  r.Lo.FormatString(e.style),
		To:    r.Hi.FormatString(e.style),
		Count: n,
		Addrs: addrs,
	})
}

func cmdOrdinal(_ context.Context, cmd *cli.Command, e *env) error {
	args, err := requireArgs(cmd, 1)
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil || v > xmac.MaxOrdinal {
		return &usageError{msg: fmt.Sprintf("无效序号 %q，取值范围 0~%#x", args[0], xmac.MaxOrdinal)}
	}
	return render(e, &ordinalReport{
		Ordinal: v,
		MAC:     xmac.AddrFromUint64(v).FormatString(e.style),
	})
}
