package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTools(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTools() error {
	if c.Tools.Samtools == "" {
		return errors.New("tools.samtools must be set")
	}
	if c.Tools.Java == "" {
		return errors.New("tools.java must be set")
	}
	if c.Tools.Rscript == "" {
		return errors.New("tools.rscript must be set")
	}
	if strings.TrimSpace(c.Tools.VarScanJar) == "" {
		return errors.New("tools.varscan_jar must be set")
	}
	if strings.TrimSpace(c.Tools.ArmSplitScript) == "" {
		return errors.New("tools.arm_split_script must be set (create a config with 'copycall config init')")
	}
	if strings.TrimSpace(c.Tools.SegmentScript) == "" {
		return errors.New("tools.segment_script must be set (create a config with 'copycall config init')")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
