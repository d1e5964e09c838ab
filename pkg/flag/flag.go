package flag

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// StringVarEnv registers a string flag whose default can be overridden by
// an environment variable derived from the flag name, e.g. --trivia-url
// falls back to TRIVIA_URL (with an optional prefix).
func StringVarEnv(fs *pflag.FlagSet, p *string, envPrefix string, name string, value string, usage string) {
	if env, ok := lookupEnv(envPrefix, name); ok {
		value = env
	}
	fs.StringVar(p, name, value, usage)
}

func Int64VarEnv(fs *pflag.FlagSet, p *int64, envPrefix string, name string, value int64, usage string) {
	if env, ok := lookupEnv(envPrefix, name); ok {
		if parsed, err := strconv.ParseInt(env, 10, 64); err == nil {
			value = parsed
		}
	}
	fs.Int64Var(p, name, value, usage)
}

func Float64VarEnv(fs *pflag.FlagSet, p *float64, envPrefix string, name string, value float64, usage string) {
	if env, ok := lookupEnv(envPrefix, name); ok {
		if parsed, err := strconv.ParseFloat(env, 64); err == nil {
			value = parsed
		}
	}
	fs.Float64Var(p, name, value, usage)
}

func lookupEnv(envPrefix string, name string) (string, bool) {
	envName := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	if envPrefix != "" {
		envName = strings.ToUpper(envPrefix) + "_" + envName
	}
	return os.LookupEnv(envName)
}
