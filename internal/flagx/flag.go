// Package flagx helps several config layers share os.Args: each layer keeps
// only the flags it owns before handing them to its own flag.FlagSet.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args made of the allowed flags and their
// values. Both "-f value" and "-f=value" forms are recognised, and "--f" is
// the same flag as "-f", as in package flag. A value is consumed only if it
// does not itself start with "-". The result is never nil.
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		known[canonical(f)] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if known[canonical(name)] {
				out = append(out, arg)
			}
			continue
		}

		if !strings.HasPrefix(arg, "-") || !known[canonical(arg)] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// canonical maps "--name" to "-name". The bare "--" terminator is left alone.
func canonical(f string) string {
	if f != "--" && strings.HasPrefix(f, "--") {
		return f[1:]
	}
	return f
}

// ConfigPath extracts the JSON config file path given with -c or -config
// (either with one or two dashes).
// It returns "" when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
