// File: pkg/concat/config.go
package concat

// Config holds the two settings a concatenation run needs.
type Config struct {
	RootDirectory string // Directory tree to walk.
	OutputPath    string // Destination of the concatenated output.
}

// Defaults used when a Config field is left empty.
const (
	DefaultRootDirectory = "."
	DefaultOutputPath    = "concatenated_code.txt"
)

// Output framing.
const (
	TitleLabel     = "Code Concatenation - Generated on "
	TimeLayout     = "2006-01-02 15:04:05"
	SeparatorWidth = 80
)

// DefaultConfig returns a Config that concatenates the current directory
// into DefaultOutputPath.
func DefaultConfig() Config {
	return Config{
		RootDirectory: DefaultRootDirectory,
		OutputPath:    DefaultOutputPath,
	}
}

// withDefaults fills empty fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.RootDirectory == "" {
		c.RootDirectory = DefaultRootDirectory
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	return c
}
