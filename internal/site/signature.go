package site

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erpdoc/cli/internal/metadata"
)

// FormatMethodArguments renders a method signature such as
// "(self, cr, uid, ids, context=None, *args, **kwargs)".
//
// A method without positional arguments renders as "()". The trailing
// arguments receive the defaults in order. String defaults are quoted unless
// they already read as a literal.
func FormatMethodArguments(m *metadata.Method) string {
	if m == nil || len(m.Args) == 0 {
		return "()"
	}

	split := len(m.Args) - len(m.Defaults)
	if split < 0 {
		split = 0
	}

	parts := make([]string, 0, len(m.Args)+2)
	parts = append(parts, m.Args[:split]...)
	for i, arg := range m.Args[split:] {
		parts = append(parts, arg+"="+formatDefault(m.Defaults[i]))
	}

	if m.Vararg != nil && *m.Vararg != "" {
		parts = append(parts, "*"+*m.Vararg)
	}
	if m.Kwarg != nil && *m.Kwarg != "" {
		parts = append(parts, "**"+*m.Kwarg)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatDefault(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		if isLiteral(v) {
			return v
		}
		return "'" + v + "'"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return formatFloat(v)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = formatDefault(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

func isLiteral(s string) bool {
	switch s {
	case "None", "True", "False":
		return true
	}
	if isDigits(s) {
		return true
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// formatFloat keeps a trailing ".0" on integral values, so 1.0 stays "1.0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
