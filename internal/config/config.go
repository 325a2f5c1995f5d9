package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config tava 项目配置
type Config struct {
	Project ProjectConfig `toml:"project"`
	Build   BuildConfig   `toml:"build"`
}

// ProjectConfig 项目配置
type ProjectConfig struct {
	Name string `toml:"name"` // 项目名，同时是默认的 class 名
}

// BuildConfig 构建配置
type BuildConfig struct {
	Output          string `toml:"output"`            // class 文件输出目录
	Optimize        bool   `toml:"optimize"`          // 预留：指令优化
	Debug           bool   `toml:"debug"`             // 预留：调试信息
	Verbose         bool   `toml:"verbose"`           // 详细输出
	ContinueOnError bool   `toml:"continue_on_error"` // 语法错误后仍然继续语义分析
	MaxErrors       int    `toml:"max_errors"`        // 打印的诊断上限，0 为不限
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Name: "Main",
		},
		Build: BuildConfig{
			Output:    ".",
			MaxErrors: 20,
		},
	}
}

// FindAndLoad 从指定目录向上查找 tava.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 tava.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, "tava.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}

	// 空字段回落到默认值
	if config.Project.Name == "" {
		config.Project.Name = "Main"
	}
	if config.Build.Output == "" {
		config.Build.Output = "."
	}

	return config, nil
}

// GetProjectRoot 获取项目根目录（tava.toml 所在目录）
func GetProjectRoot(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}
