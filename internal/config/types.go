package config

// SpaceConfig 模拟内存空间参数。
type SpaceConfig struct {
	Size  int  `yaml:"size" ini:"size"`
	Align int  `yaml:"align" ini:"align"`
	Arena bool `yaml:"arena" ini:"arena"`
}

// LogConfig 日志参数，File 为空时写 stderr。
type LogConfig struct {
	File       string `yaml:"file" ini:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" ini:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days" ini:"max_age_days"`
	Debug      bool   `yaml:"debug" ini:"debug"`
}

// Step 脚本中的一步：malloc <length> / free <address> / defrag。
type Step struct {
	Op  string `yaml:"op"`
	Arg int    `yaml:"arg"`
}

// Config 顶层配置。
type Config struct {
	Space  SpaceConfig `yaml:"space"`
	Log    LogConfig   `yaml:"log"`
	Script []Step      `yaml:"script"`
}
