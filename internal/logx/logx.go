package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
)

// Options 日志输出配置；File 为空时写 stderr。
type Options struct {
	File       string
	MaxSizeMB  int
	MaxAgeDays int
	Debug      bool
}

var (
	mu      sync.Mutex
	logger  = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	closer  io.Closer
	debugOn bool
)

// Init 按 opts 重建 logger，之前打开的文件会被关闭。
func Init(opts Options) {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	var out io.Writer = os.Stderr
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename: opts.File,
			MaxSize:  opts.MaxSizeMB, // megabytes
			MaxAge:   opts.MaxAgeDays, // days
		}
		out, closer = lj, lj
	}
	logger = log.New(out, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugOn = opts.Debug
}

// SetOutput 直接替换输出，测试用。
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

func write(color, level, category string, content []interface{}) {
	message := fmt.Sprint(content...)
	coloredCategory := fmt.Sprintf("%s[%s][%s]%s", color, level, category, ColorReset)
	mu.Lock()
	logger.Printf("%s: %s", coloredCategory, message)
	mu.Unlock()
}

func Info(category string, content ...interface{}) {
	write(ColorGreen, "INFO", category, content)
}

func Error(category string, content ...interface{}) {
	write(ColorRed, "ERROR", category, content)
}

func Warn(category string, content ...interface{}) {
	write(ColorYellow, "WARN", category, content)
}

// Debug 仅在 Options.Debug 打开时输出。
func Debug(category string, content ...interface{}) {
	mu.Lock()
	on := debugOn
	mu.Unlock()
	if !on {
		return
	}
	write(ColorBlue, "DEBUG", category, content)
}
