package report

import "strings"

// parseContext replaces @Name@ variables with values from vars. A variable
// may carry a default as @Name:default@. When a variable can't be resolved
// the result is empty unless ignoreUnparsable is set, in which case the
// variable is replaced with an empty string and parsing continues.
func parseContext(vars map[string]string, text string, ignoreUnparsable bool) string {
	if !strings.Contains(text, "@") {
		return text
	}

	var out strings.Builder
	in := text
	for {
		i := strings.IndexByte(in, '@')
		if i < 0 {
			break
		}
		out.WriteString(in[:i])
		in = in[i+1:]

		j := strings.IndexByte(in, '@')
		if j < 0 {
			// unbalanced tag
			return ""
		}
		token := in[:j]
		in = in[j+1:]

		name, def, hasDefault := strings.Cut(token, ":")
		value, ok := lookupVar(vars, name)
		switch {
		case ok && value != "":
			out.WriteString(value)
		case hasDefault:
			out.WriteString(def)
		case !ignoreUnparsable:
			return ""
		}
	}
	out.WriteString(in)

	return out.String()
}

func lookupVar(vars map[string]string, name string) (string, bool) {
	if v, ok := vars[name]; ok {
		return v, true
	}
	for k, v := range vars {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
