package launcher

import (
	"regexp"
	"strings"
)

var (
	percentVar = regexp.MustCompile(`%([^%\s]+)%`)
	dollarVar  = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)
)

// ExpandEnv replaces %VAR%, $VAR and ${VAR} references that lookup resolves.
// Unknown references are left as written.
func ExpandEnv(s string, lookup func(string) (string, bool)) string {
	if s == "" {
		return s
	}

	s = percentVar.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := lookup(m[1 : len(m)-1]); ok {
			return v
		}
		return m
	})

	return dollarVar.ReplaceAllStringFunc(s, func(m string) string {
		name := strings.Trim(m[1:], "{}")
		if v, ok := lookup(name); ok {
			return v
		}
		return m
	})
}

// SplitArgs splits an argument string on spaces. Single or double quotes
// group words; the quote characters are dropped.
func SplitArgs(s string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if inArg {
		args = append(args, current.String())
	}
	return args
}

// quoteArg wraps an argument in double quotes when it contains whitespace
func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t") {
		return `"` + arg + `"`
	}
	return arg
}

// psQuote renders s as a PowerShell single-quoted literal
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
