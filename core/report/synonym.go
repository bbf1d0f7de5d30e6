package report

import "strings"

// synonym is a short table alias handed to each lookup projection. The
// sequence is A..Z, then AA, BB, .. ZZ, then AAA and so on. X is never used.
type synonym string

const firstSynonym synonym = "A"

func (s synonym) String() string {
	return string(s)
}

func (s synonym) next() synonym {
	if s == "" {
		return firstSynonym
	}

	length := len(s)
	c := s[0]
	if c == 'Z' {
		c = 'A'
		length++
	} else {
		c++
		if c == 'X' {
			c++
		}
	}

	return synonym(strings.Repeat(string(c), length))
}
