package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds each named flag to the viper key of the same name.
func bindFlags(v *viper.Viper, lookup func(string) *pflag.Flag, names ...string) {
	for _, name := range names {
		// flags are registered by the caller, so the lookup never fails
		_ = v.BindPFlag(name, lookup(name))
	}
}
