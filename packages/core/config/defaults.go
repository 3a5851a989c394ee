package config

const (
	OutputConsole = "console"
	OutputJSON    = "json"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		EnvFile: "",
		Output:  OutputConsole,
		NoColor: BoolPtr(false),
		Verbose: BoolPtr(false),
		Timeout: 0, // unset, matches a freshly built request
	}
}
