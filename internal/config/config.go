package config

import (
	"os"
	"path/filepath"
	"strings"

	"memlist/consts"
	"memlist/internal/errs"
	"memlist/internal/logx"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

const (
	OpMalloc = "malloc"
	OpFree   = "free"
	OpDefrag = "defrag"
)

// Default 返回默认配置。
func Default() *Config {
	return &Config{
		Space: SpaceConfig{Size: consts.DefaultSpaceSize, Align: consts.DefaultAlign},
		Log:   LogConfig{MaxSizeMB: consts.DefaultLogMaxSizeMB, MaxAgeDays: consts.DefaultLogMaxAgeDays},
	}
}

// Load 按扩展名读取 .yml/.yaml 或 .ini，未给出的字段保持默认值。
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		cfg, err = loadYAML(path)
	case ".ini":
		cfg, err = loadINI(path)
	default:
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "unsupported config file %s", path)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logx.Debug("CONFIG", "loaded ", path, ": space=", cfg.Space, " steps=", len(cfg.Script))
	return cfg, nil
}

func loadYAML(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := Default()
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return cfg, nil
}

func loadINI(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := f.Section("space").MapTo(&cfg.Space); err != nil {
		return nil, errors.Wrap(err, "section space")
	}
	if err := f.Section("log").MapTo(&cfg.Log); err != nil {
		return nil, errors.Wrap(err, "section log")
	}
	return cfg, nil
}

// Validate 检查空间参数与脚本。
func (c *Config) Validate() error {
	if c.Space.Size <= 0 {
		return errors.Wrapf(errs.ErrInvalidArgument, "space size %d", c.Space.Size)
	}
	if c.Space.Align <= 0 {
		return errors.Wrapf(errs.ErrInvalidArgument, "space align %d", c.Space.Align)
	}
	for i, s := range c.Script {
		switch s.Op {
		case OpMalloc, OpFree, OpDefrag:
		default:
			return errors.Wrapf(errs.ErrInvalidArgument, "script step %d: unknown op %q", i, s.Op)
		}
	}
	return nil
}

// LogOptions 转成 logx 的参数。
func (c *Config) LogOptions() logx.Options {
	return logx.Options{
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxAgeDays: c.Log.MaxAgeDays,
		Debug:      c.Log.Debug,
	}
}
