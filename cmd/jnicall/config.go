package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tinyrange/jni"
	"gopkg.in/yaml.v3"
)

// LaunchConfig describes how to start the JVM and what to run in it.
type LaunchConfig struct {
	JavaHome           string   `yaml:"java_home"`
	Library            string   `yaml:"library"` // overrides java_home
	Version            string   `yaml:"version"`
	Options            []string `yaml:"options"`
	IgnoreUnrecognized bool     `yaml:"ignore_unrecognized"`

	Call         *CallConfig `yaml:"call"`
	Capabilities []string    `yaml:"capabilities"`
}

// CallConfig names a static method and its arguments.
type CallConfig struct {
	Class     string   `yaml:"class"`
	Method    string   `yaml:"method"`
	Signature string   `yaml:"signature"`
	Args      []string `yaml:"args"`
}

const maxConfigSize = 1024 * 1024

// LoadLaunchConfig reads a YAML launch config from path.
func LoadLaunchConfig(path string) (LaunchConfig, error) {
	var cfg LaunchConfig

	info, err := os.Stat(path)
	if err != nil {
		return cfg, err
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config %s is too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	slog.Debug("loaded launch config", "path", path, "options", len(cfg.Options))
	return cfg, nil
}

// ParseVersion accepts "1.8", "8", "21" or a hex constant like
// "0x00150000".
func ParseVersion(s string) (jni.Version, error) {
	if s == "" {
		return jni.Version1_8, nil
	}
	if strings.HasPrefix(s, "0x") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad version %q: %w", s, err)
		}
		return jni.Version(int32(v)), nil
	}
	if minor, ok := strings.CutPrefix(s, "1."); ok {
		n, err := strconv.Atoi(minor)
		if err != nil || n <= 0 || n > 8 {
			return 0, fmt.Errorf("bad version %q", s)
		}
		return jni.Version(0x00010000 | n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("bad version %q", s)
	}
	if n <= 8 {
		return jni.Version(0x00010000 | n), nil
	}
	return jni.Version(n << 16), nil
}
