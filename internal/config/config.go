package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools names the external programs and helper scripts the pipeline wraps.
// Binaries are resolved through PATH unless given as absolute paths; the
// VarScan jar and the two R helper scripts must be files on disk.
type Tools struct {
	Samtools       string `toml:"samtools"`
	Java           string `toml:"java"`
	VarScanJar     string `toml:"varscan_jar"`
	Rscript        string `toml:"rscript"`
	ArmSplitScript string `toml:"arm_split_script"`
	SegmentScript  string `toml:"segment_script"`
}

// Logging contains configuration for diagnostic output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for copycall.
type Config struct {
	Tools   Tools   `toml:"tools"`
	Logging Logging `toml:"logging"`
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/copycall/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is not
// an error: defaults apply and exists reports false.
func Load(path string) (cfg *Config, resolvedPath string, exists bool, err error) {
	loaded := Default()

	resolvedPath, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, openErr := os.Open(resolvedPath)
		if openErr != nil {
			return nil, "", false, fmt.Errorf("open config: %w", openErr)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if decodeErr := decoder.Decode(&loaded); decodeErr != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", decodeErr)
		}
	}

	if err = loaded.normalize(); err != nil {
		return nil, "", false, err
	}
	if err = loaded.Validate(); err != nil {
		return nil, "", false, err
	}

	return &loaded, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err = os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("copycall.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"tools.varscan_jar", &c.Tools.VarScanJar},
		{"tools.arm_split_script", &c.Tools.ArmSplitScript},
		{"tools.segment_script", &c.Tools.SegmentScript},
	} {
		if strings.TrimSpace(*field.value) == "" {
			continue
		}
		if *field.value, err = expandPath(*field.value); err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
	}

	c.Tools.Samtools = strings.TrimSpace(c.Tools.Samtools)
	c.Tools.Java = strings.TrimSpace(c.Tools.Java)
	c.Tools.Rscript = strings.TrimSpace(c.Tools.Rscript)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
