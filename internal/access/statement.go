package access

import (
	"strings"
	"unicode"
)

// clauseEnds are the keywords closing a WHERE clause.
var clauseEnds = []string{"GROUP BY", "HAVING", "ORDER BY", "LIMIT", "OFFSET"}

// insertRestriction adds restriction in front of the top level WHERE clause
// of stmt. The existing conditions are parenthesized so that an OR among
// them cannot bypass the restriction.
func insertRestriction(stmt, restriction string) string {
	where := findTopLevel(stmt, "WHERE", 0)
	if where < 0 {
		end := clauseEnd(stmt, 0)
		return strings.TrimRight(stmt[:end], " ") + " WHERE " + restriction + suffix(stmt[end:])
	}

	start := where + len("WHERE")
	end := clauseEnd(stmt, start)
	conditions := strings.TrimSpace(stmt[start:end])
	if conditions == "" {
		return strings.TrimRight(stmt[:where], " ") + " WHERE " + restriction + suffix(stmt[end:])
	}
	return strings.TrimRight(stmt[:where], " ") + " WHERE " + restriction + " AND (" + conditions + ")" + suffix(stmt[end:])
}

func suffix(rest string) string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ""
	}
	return " " + rest
}

// clauseEnd returns the position of the first top level keyword ending the
// clause starting at from, or the length of stmt.
func clauseEnd(stmt string, from int) int {
	end := len(stmt)
	for _, kw := range clauseEnds {
		if i := findTopLevel(stmt, kw, from); i >= 0 && i < end {
			end = i
		}
	}
	return end
}

// findTopLevel returns the position of keyword in stmt outside of quotes and
// parentheses, or -1. Keywords match case-insensitively on word boundaries
// and any run of spaces matches the single space in keyword.
func findTopLevel(stmt, keyword string, from int) int {
	depth := 0
	var quote rune
	for i := from; i < len(stmt); i++ {
		c := rune(stmt[i])
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (i == 0 || !isWordChar(rune(stmt[i-1]))):
			if n := matchKeyword(stmt[i:], keyword); n > 0 {
				return i
			}
		}
	}
	return -1
}

// matchKeyword returns the length of the keyword match at the start of s,
// or 0.
func matchKeyword(s, keyword string) int {
	n := 0
	for _, word := range strings.Fields(keyword) {
		if n > 0 {
			spaces := len(s[n:]) - len(strings.TrimLeftFunc(s[n:], unicode.IsSpace))
			if spaces == 0 {
				return 0
			}
			n += spaces
		}
		if len(s)-n < len(word) || !strings.EqualFold(s[n:n+len(word)], word) {
			return 0
		}
		n += len(word)
	}
	if n < len(s) && isWordChar(rune(s[n])) {
		return 0
	}
	return n
}

func isWordChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
