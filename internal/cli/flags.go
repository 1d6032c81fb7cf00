package cli

import "github.com/spf13/pflag"

// anyChanged reports whether the user set at least one of the named flags.
// Edit-style commands use it to reject invocations that would do nothing.
func anyChanged(fs *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}
