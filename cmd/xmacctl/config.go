package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/omeyang/xmackit/pkg/config/xconf"
	"github.com/omeyang/xmackit/pkg/observability/xlog"
	"github.com/omeyang/xmackit/pkg/util/xmac"
	"github.com/urfave/cli/v3"
)

// defaultMaxList 是 list 命令默认允许的最大地址数。
const defaultMaxList = 65536

type settings struct {
	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
		File   string `koanf:"file"`
	} `koanf:"log"`
	Range struct {
		MaxList int `koanf:"max_list"`
	} `koanf:"range"`
	Output struct {
		Format string `koanf:"format"`
		Style  string `koanf:"style"`
		Pretty bool   `koanf:"pretty"`
	} `koanf:"output"`
}

func defaultSettings() map[string]any {
	return map[string]any{
		"log.level":      "warn",
		"log.format":     "text",
		"log.file":       "",
		"range.max_list": defaultMaxList,
		"output.format":  formatText,
		"output.style":   xmac.StyleColon.String(),
		"output.pretty":  false,
	}
}

// flagKeys 把全局选项映射到配置键，非空的选项覆盖配置文件。
var flagKeys = [][2]string{
	{"log-level", "log.level"},
	{"output", "output.format"},
	{"style", "output.style"},
}

// loadSettings 按 默认值 < 配置文件 < 命令行选项 的优先级合成配置。
func loadSettings(cmd *cli.Command) (*settings, error) {
	opts := []xconf.Option{xconf.WithDefaults(defaultSettings())}

	var (
		cfg xconf.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = xconf.New(path, opts...)
	} else {
		cfg, err = xconf.NewFromBytes(nil, xconf.FormatYAML, opts...)
	}
	if err != nil {
		return nil, err
	}

	for _, fk := range flagKeys {
		if v := cmd.String(fk[0]); v != "" {
			if err := cfg.Set(fk[1], v); err != nil {
				return nil, err
			}
		}
	}

	var s settings
	if err := cfg.Unmarshal("", &s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *settings) validate() error {
	if _, err := xlog.ParseLevel(s.Log.Level); err != nil {
		return &usageError{msg: err.Error()}
	}
	if _, err := xmac.ParseStyle(s.Output.Style); err != nil {
		return &usageError{msg: err.Error()}
	}
	switch s.Output.Format {
	case formatText, formatJSON, formatQuery:
	default:
		return &usageError{msg: fmt.Sprintf("未知输出格式 %q (可选 text/json/query)", s.Output.Format)}
	}
	if s.Range.MaxList < 0 {
		return &usageError{msg: fmt.Sprintf("range.max_list 不能为负数: %d", s.Range.MaxList)}
	}
	return nil
}

// env 是单次命令执行所需的上下文。
type env struct {
	settings *settings
	style    xmac.Style
	logger   xlog.Logger
	out      io.Writer
	errOut   io.Writer
	cleanup  func() error
}

func newEnv(cmd *cli.Command) (*env, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	style, err := xmac.ParseStyle(s.Output.Style)
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}

	root := cmd.Root()
	logger, cleanup, err := xlog.New().
		SetOutput(root.ErrWriter).
		SetLevelString(s.Log.Level).
		SetFormat(s.Log.Format).
		SetRotation(s.Log.File).
		SetAttrs(xlog.Component(root.Name)).
		Build()
	if err != nil {
		return nil, fmt.Errorf("初始化日志: %w", err)
	}

	return &env{
		settings: s,
		style:    style,
		logger:   logger.With(xlog.Operation(cmd.Name)),
		out:      root.Writer,
		errOut:   root.ErrWriter,
		cleanup:  cleanup,
	}, nil
}

// close 释放日志资源。logger 的输出此时可能已关闭，失败只能直接写到 errOut。
func (e *env) close() {
	if err := e.cleanup(); err != nil {
		fmt.Fprintf(e.errOut, "警告: 关闭日志文件失败: %v\n", err)
	}
}

// withEnv 为命令动作准备配置与日志，并在动作结束后释放。
func withEnv(fn func(ctx context.Context, cmd *cli.Command, e *env) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		e.logger.Debug(ctx, "命令开始",
			slog.Any("args", cmd.Args().Slice()),
			slog.String("output", e.settings.Output.Format),
			slog.String("style", e.style.String()),
		)
		return fn(ctx, cmd, e)
	}
}
