// Package flagx lets each configuration stage parse only the command-line
// flags it owns, so the JSON, env-file and flag loaders can share os.Args.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args made of allowed flags and their values.
//
// Both "-f value" and "-f=value" forms are recognised. A token following an
// allowed flag is treated as its value unless it starts with "-". The result
// is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// stringFlag extracts the value of a string flag known under several names.
// The last occurrence wins; an empty string means the flag is absent.
func stringFlag(args []string, names ...string) string {
	var value string

	dashed := make([]string, len(names))
	for i, n := range names {
		dashed[i] = "-" + n
	}

	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(discard{})
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, dashed))
	return value
}

// JsonConfigFlags returns the JSON config path given by -c or -config.
func JsonConfigFlags() string {
	return stringFlag(os.Args[1:], "c", "config")
}

// EnvFileFlag returns the dotenv file path given by -e or -env-file.
func EnvFileFlag() string {
	return stringFlag(os.Args[1:], "e", "env-file")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
