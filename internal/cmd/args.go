package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// legacyFlags maps single-dash multi-letter flags accepted by earlier
// releases onto their cobra spellings. pflag would otherwise read "-ic" as the
// shorthand cluster "-i -c".
var legacyFlags = map[string]string{
	"-ic": "--ignore-case",
}

// NormalizeArgs rewrites legacy flag spellings in raw command-line arguments
// (without the program name). The token following a flag of c that takes a
// value is that flag's value and is kept as is, so "--dir -ic" still searches
// a directory named "-ic". Arguments after a "--" terminator are positional
// and left untouched.
func NormalizeArgs(c *cobra.Command, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if repl, ok := legacyFlags[arg]; ok {
			out = append(out, repl)
			continue
		}
		out = append(out, arg)
		if takesValue(c, arg) && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// takesValue reports whether arg names a flag of c whose value is the next
// argument.
func takesValue(c *cobra.Command, arg string) bool {
	switch {
	case strings.HasPrefix(arg, "--"):
		name := arg[2:]
		if strings.Contains(name, "=") {
			return false
		}
		flag := c.Flags().Lookup(name)
		return flag != nil && flag.NoOptDefVal == ""
	case len(arg) == 2 && arg[0] == '-':
		flag := c.Flags().ShorthandLookup(arg[1:])
		return flag != nil && flag.NoOptDefVal == ""
	}
	return false
}
