package config

import (
	"fmt"
	"os"
	"path"

	"github.com/abcfe/ethutils/common/utils"
	prt "github.com/abcfe/ethutils/protocol"
	"github.com/naoina/toml"
)

type Common struct {
	Level       string // local, dev, prod
	ServiceName string
}

type LogInfo struct {
	Path       string // empty: no log file
	MaxAgeHour int
	RotateHour int
}

// Convert 변환 기본값 (명령행 플래그가 우선)
type Convert struct {
	Format   string `toml:"Format"` // checksum | plain
	Tolerate bool   `toml:"Tolerate"`
	Strict   bool   `toml:"Strict"`
}

type Config struct {
	Common  Common
	LogInfo LogInfo
	Convert Convert
}

// DefaultPath ~/.ethutils/config.toml
func DefaultPath() string {
	return path.Join(utils.HomeDir(), ".ethutils", "config.toml")
}

func Default() *Config {
	return &Config{
		Common:  Common{Level: "prod", ServiceName: "ethutils"},
		LogInfo: LogInfo{MaxAgeHour: 24 * 7, RotateHour: 24},
		Convert: Convert{Format: prt.FormatChecksum.String()},
	}
}

// NewConfig reads filepath; with an empty filepath the default location is
// used when present, otherwise built-in defaults are returned. Never writes.
func NewConfig(filepath string) (*Config, error) {
	if filepath == "" {
		filepath = DefaultPath()
		if !utils.FileExists(filepath) {
			return Default(), nil
		}
	}

	if file, err := os.Open(filepath); err != nil {
		return nil, err
	} else {
		defer file.Close()

		c := Default()
		if err := toml.NewDecoder(file).Decode(c); err != nil {
			return nil, fmt.Errorf("config %s: %w", filepath, err)
		} else if err := c.sanitize(); err != nil {
			return nil, fmt.Errorf("config %s: %w", filepath, err)
		}
		return c, nil
	}
}

func (p *Config) sanitize() error {
	p.LogInfo.Path = utils.ExpandHome(p.LogInfo.Path)
	if p.LogInfo.RotateHour <= 0 {
		p.LogInfo.RotateHour = 24
	}
	if p.Convert.Format == "" {
		p.Convert.Format = prt.FormatChecksum.String()
	}
	if _, ok := prt.ParseAddressFormat(p.Convert.Format); !ok {
		return fmt.Errorf("unknown Convert.Format %q (want checksum or plain)", p.Convert.Format)
	}
	return nil
}

// AddressFormat Convert.Format as a value, checksum if unset
func (p *Config) AddressFormat() prt.AddressFormat {
	f, _ := prt.ParseAddressFormat(p.Convert.Format)
	return f
}

func (p *Config) GetLogInfoConfig() *LogInfo {
	return &p.LogInfo
}
