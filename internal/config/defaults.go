package config

const (
	defaultSamtools   = "samtools"
	defaultJava       = "java"
	defaultRscript    = "Rscript"
	defaultVarScanJar = "/opt/varscan/VarScan.jar"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults. The helper
// script paths have no sensible defaults and must come from the config file.
func Default() Config {
	return Config{
		Tools: Tools{
			Samtools:   defaultSamtools,
			Java:       defaultJava,
			Rscript:    defaultRscript,
			VarScanJar: defaultVarScanJar,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
