package shot

import (
	"fmt"
	"strconv"
	"strings"
)

// Token is one normalized identity component. Episode, sequence and shot
// tokens are lowercased and split into prefix, number and an optional
// single-letter suffix ("SQ010a" → "sq", 10, "a"). Project tokens keep
// their original case and carry no number.
type Token struct {
	Text    string
	Prefix  string
	Number  int
	Digits  int // width of the digit run as written
	Numeric bool
	Suffix  string
}

// IsZero reports whether the token is absent.
func (t Token) IsZero() bool { return t.Text == "" }

func (t Token) String() string { return t.Text }

// Padded renders the token with its number zero-padded to width digits,
// keeping prefix and suffix. Non-numeric tokens are returned unchanged.
func (t Token) Padded(width int) string {
	if !t.Numeric {
		return t.Text
	}
	return fmt.Sprintf("%s%0*d%s", t.Prefix, width, t.Number, t.Suffix)
}

// newToken builds a numeric token from a regex match split into its letter
// prefix, digit run, trailing letters and the digit after them, if any.
// Trailing letters only count as a suffix when there is exactly one of them
// and no digit follows: "sh020b" keeps "b", "sh020v003" is a version tag.
func newToken(prefix, digits, trailing, next string) Token {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Token{}
	}
	suffix := ""
	if len(trailing) == 1 && next == "" {
		suffix = strings.ToLower(trailing)
	}
	prefix = strings.ToLower(prefix)
	return Token{
		Text:    prefix + digits + suffix,
		Prefix:  prefix,
		Number:  n,
		Digits:  len(digits),
		Numeric: true,
		Suffix:  suffix,
	}
}

// Identity is the (project, episode, sequence, shot) tuple identifying a
// unit of production work. Values returned by [Extract] are always complete.
type Identity struct {
	Project  Token
	Episode  Token
	Sequence Token
	Shot     Token
}

// Complete reports whether all four components are present.
func (id Identity) Complete() bool {
	return !id.Project.IsZero() && !id.Episode.IsZero() &&
		!id.Sequence.IsZero() && !id.Shot.IsZero()
}

func (id Identity) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", id.Project, id.Episode, id.Sequence, id.Shot)
}
