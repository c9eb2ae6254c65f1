// xmacctl 是 MAC 地址解析与区间计算的命令行工具。
//
// 用法:
//
//	xmacctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     配置文件路径 (.yaml/.yml/.json)，也可通过 XMACCTL_CONFIG 指定
//	    --log-level  日志级别 (debug/info/warn/error)
//	-o, --output     输出格式 (text/json/query)
//	    --style      输出地址的书写格式 (colon/dash/dot/bare 及其 -upper 变体)
//
// 命令:
//
//	valid <mac>...       逐个校验地址
//	parse <mac>          解析地址并显示其属性
//	count <from> <to>    统计闭区间内的地址数量
//	list <from> <to>     列出闭区间内的全部地址
//	ordinal <n>          把 48 位序号转换为地址
//
// 区间两端的先后顺序不影响结果。
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（valid 命令: 存在无效地址）
//	2: 参数错误
//
// 示例:
//
//	xmacctl valid aa:bb:cc:dd:ee:ff AA-BB-CC-DD-EE-FF
//	xmacctl count 00:00:00:00:00:00 00:00:00:00:00:ff
//	xmacctl -o json list 00:1a:2b:00:00:00 00:1a:2b:00:00:0f
//	xmacctl --style dot parse AA-BB-CC-DD-EE-FF
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xmacctl",
		Usage:     "MAC 地址解析与区间计算",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径",
				Sources: cli.EnvVars("XMACCTL_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出格式 (text/json/query)",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: "地址书写格式 (colon/dash/dot/bare，可加 -upper 后缀)",
			},
		},
		Commands:     createCommands(),
		Action:       rootAction,
		OnUsageError: onUsageError,
		// 退出码统一由 run 映射，不让 urfave/cli 直接调用 os.Exit
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := createApp(stdout, stderr).Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		// 详情已由 ExitErrHandler 输出
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
