package cmd

import (
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/spf13/pflag"

	"github.com/npillmayer/deque"
)

const (
	flagBlockCapacity = "block-capacity"
	flagTraceLevel    = "trace"

	configKeyTraceLevel = "tracing.level"
)

// flagKeys maps configuration keys to command line flags.
var flagKeys = map[string]string{
	deque.ConfigKeyBlockCapacity: flagBlockCapacity,
	configKeyTraceLevel:          flagTraceLevel,
}

// flagConfig serves an application configuration from command line flags.
// Flags left at their defaults count as set, as they carry the tool's
// defaults.
type flagConfig struct {
	flags *pflag.FlagSet
}

var _ schuko.Configuration = flagConfig{}

func (c flagConfig) lookup(key string) *pflag.Flag {
	name, ok := flagKeys[key]
	if !ok {
		return nil
	}
	return c.flags.Lookup(name)
}

func (c flagConfig) InitDefaults() {}

func (c flagConfig) IsSet(key string) bool {
	return c.lookup(key) != nil
}

func (c flagConfig) GetString(key string) string {
	if f := c.lookup(key); f != nil {
		return f.Value.String()
	}
	return ""
}

func (c flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

func (c flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

func (c flagConfig) IsInteractive() bool { return false }
