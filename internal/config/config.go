// Package config loads the .term2md.yaml configuration file and merges it
// with command-line flags and environment variables. The engine itself
// never reads configuration from disk; it receives an already-validated
// convert.Config from here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/term2md/pkg/convert"
	"github.com/dkoosis/term2md/pkg/style"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Strip        int
	InlineMax    int
	FenceLang    string
	DefaultFg    string
	NoCodeDetect bool
	NoUnderline  bool
	Debug        bool

	// Flags to track if they were explicitly set by the user
	StripSet        bool
	InlineMaxSet    bool
	FenceLangSet    bool
	DefaultFgSet    bool
	NoCodeDetectSet bool
	NoUnderlineSet  bool
	DebugSet        bool
}

// AppConfig represents the configuration read from .term2md.yaml. Pointer
// fields distinguish "absent" from an explicit zero value, since several
// options default to true.
type AppConfig struct {
	StripLeadingSpaces  *int   `yaml:"strip_leading_spaces"`
	DetectCodeBlocks    *bool  `yaml:"detect_code_blocks"`
	InlineCodeMaxLength *int   `yaml:"inline_code_max_length"`
	DefaultFgColor      string `yaml:"default_fg_color"`
	IncludeUnderline    *bool  `yaml:"include_underline"`
	CodeFenceLanguage   string `yaml:"code_fence_language"`
	Debug               bool   `yaml:"debug"`
}

const configFileName = ".term2md.yaml"

// LoadConfig loads the .term2md.yaml configuration, returning an empty
// AppConfig when no file is found. A malformed file degrades to defaults
// with a warning rather than aborting the conversion.
func LoadConfig() *AppConfig {
	appCfg := &AppConfig{}
	initialDebug := os.Getenv("TERM2MD_DEBUG") != ""

	configPath := getConfigPath()
	if configPath == "" {
		if initialDebug {
			fmt.Fprintln(os.Stderr, "[DEBUG LoadConfig] No .term2md.yaml found, using defaults only.")
		}
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file %s: %v. Using defaults.\n", configPath, err)
		}
		return appCfg
	}

	if err := yaml.Unmarshal(yamlFile, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error unmarshalling config file %s: %v. Using defaults.\n", configPath, err)
		return &AppConfig{}
	}

	if initialDebug {
		fmt.Fprintf(os.Stderr, "[DEBUG LoadConfig] Loaded config from %s.\n", configPath)
	}
	return appCfg
}

// getConfigPath tries to find the .term2md.yaml configuration file.
// It checks the local directory first, then XDG UserConfigDir (if valid).
func getConfigPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		if os.Getenv("TERM2MD_DEBUG") != "" {
			absLocalPath, _ := filepath.Abs(configFileName)
			fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] Using local config file: %s\n", absLocalPath)
		}
		return configFileName
	}

	configHome, err := os.UserConfigDir()
	if err == nil && configHome != "" && configHome != "/" {
		xdgPath := filepath.Join(configHome, "term2md", configFileName)
		if _, errStat := os.Stat(xdgPath); errStat == nil {
			if os.Getenv("TERM2MD_DEBUG") != "" {
				fmt.Fprintf(os.Stderr, "[DEBUG getConfigPath] Using XDG config file: %s\n", xdgPath)
			}
			return xdgPath
		}
	}
	return ""
}

// ParseColor parses a configured color value. Recognized forms: "auto"
// or "" (nil result, modal inference), "default", "indexed:N", a bare
// palette index, or "#RRGGBB".
func ParseColor(s string) (*style.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "auto":
		return nil, nil
	case "default":
		c := style.Default
		return &c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return nil, fmt.Errorf("config: invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("config: invalid hex color %q", s)
		}
		c := style.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
		return &c, nil
	}
	idx := strings.TrimPrefix(s, "indexed:")
	v, err := strconv.ParseUint(idx, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("config: invalid color %q (expected auto, default, indexed:N, or #RRGGBB)", s)
	}
	c := style.Indexed(uint8(v))
	return &c, nil
}

// MergeWithFlags resolves the final convert.Config. Precedence, highest
// first: CLI flags, environment (TERM2MD_DEBUG), the YAML file, built-in
// defaults.
func MergeWithFlags(appCfg *AppConfig, cliFlags CliFlags) (convert.Config, error) {
	cfg := convert.DefaultConfig()

	if appCfg.StripLeadingSpaces != nil && *appCfg.StripLeadingSpaces >= 0 {
		cfg.StripLeadingSpaces = *appCfg.StripLeadingSpaces
	}
	if appCfg.DetectCodeBlocks != nil {
		cfg.DetectCodeBlocks = *appCfg.DetectCodeBlocks
	}
	if appCfg.InlineCodeMaxLength != nil && *appCfg.InlineCodeMaxLength > 0 {
		cfg.InlineCodeMaxLength = *appCfg.InlineCodeMaxLength
	}
	if appCfg.IncludeUnderline != nil {
		cfg.IncludeUnderline = *appCfg.IncludeUnderline
	}
	cfg.CodeFenceLanguage = appCfg.CodeFenceLanguage
	cfg.Debug = appCfg.Debug

	fgSource := appCfg.DefaultFgColor

	if envDebug := os.Getenv("TERM2MD_DEBUG"); envDebug != "" {
		if bVal, err := strconv.ParseBool(envDebug); err == nil {
			cfg.Debug = bVal
		} else {
			cfg.Debug = true
		}
	}

	if cliFlags.StripSet && cliFlags.Strip >= 0 {
		cfg.StripLeadingSpaces = cliFlags.Strip
	}
	if cliFlags.InlineMaxSet && cliFlags.InlineMax > 0 {
		cfg.InlineCodeMaxLength = cliFlags.InlineMax
	}
	if cliFlags.FenceLangSet {
		cfg.CodeFenceLanguage = cliFlags.FenceLang
	}
	if cliFlags.NoCodeDetectSet {
		cfg.DetectCodeBlocks = !cliFlags.NoCodeDetect
	}
	if cliFlags.NoUnderlineSet {
		cfg.IncludeUnderline = !cliFlags.NoUnderline
	}
	if cliFlags.DebugSet {
		cfg.Debug = cliFlags.Debug
	}
	if cliFlags.DefaultFgSet {
		fgSource = cliFlags.DefaultFg
	}

	fg, err := ParseColor(fgSource)
	if err != nil {
		return convert.Config{}, err
	}
	cfg.DefaultFg = fg

	if cfg.Debug || os.Getenv("TERM2MD_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG MergeWithFlags] strip=%d detect=%t inline_max=%d underline=%t fence_lang=%q\n",
			cfg.StripLeadingSpaces, cfg.DetectCodeBlocks, cfg.InlineCodeMaxLength, cfg.IncludeUnderline, cfg.CodeFenceLanguage)
	}

	return cfg, nil
}
