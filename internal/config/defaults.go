package config

// Default configuration values.
const (
	DefaultPath     = "."
	DefaultGitDir   = ".git"
	DefaultParallel = 1
	DefaultLogLevel = "warn"
)

// DefaultFormatters returns the formatter list used when none is configured.
func DefaultFormatters() []string {
	return []string{"pretty"}
}
