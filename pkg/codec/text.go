package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/pgxcube/pkg/cube"
)

// ParseError reports cube text that does not follow the extension's syntax.
// Dimension mismatches between two syntactically valid corner lists are not
// ParseErrors; they surface as *cube.FormatError.
type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: invalid cube representation %q: %s", e.Input, e.Message)
}

// Parse reads a cube from the extension's text syntax: one or two
// comma-separated coordinate lists, each optionally parenthesized, the
// whole optionally bracketed. A single list yields a point cube.
//
//	1,2,3
//	(1, 2)
//	(0, 0),(1, 1)
//	[(0),(1)]
func Parse(input string) (cube.Cube, error) {
	s := strings.TrimSpace(input)

	switch {
	case s == "":
		return cube.Cube{}, &ParseError{Input: input, Message: "empty input"}

	case strings.HasPrefix(s, "["):
		if !strings.HasSuffix(s, "]") {
			return cube.Cube{}, &ParseError{Input: input, Message: "missing closing bracket"}
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		lowerLeft, rest, err := parseParenList(inner, input)
		if err != nil {
			return cube.Cube{}, err
		}
		return parseSecondCorner(lowerLeft, rest, input)

	case strings.HasPrefix(s, "("):
		lowerLeft, rest, err := parseParenList(s, input)
		if err != nil {
			return cube.Cube{}, err
		}
		if rest == "" {
			return cube.NewPoint(lowerLeft), nil
		}
		return parseSecondCorner(lowerLeft, rest, input)

	default:
		coords, err := parseCoords(s, input)
		if err != nil {
			return cube.Cube{}, err
		}
		return cube.NewPoint(coords), nil
	}
}

// MustParse is like Parse but panics on error. It simplifies fixed cube
// literals in tests and tooling.
func MustParse(input string) cube.Cube {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders a cube in the extension's output syntax, matching
// cube_out: "(x1, x2)" for points, "(l1, l2),(u1, u2)" otherwise.
func Format(c cube.Cube) string {
	var b strings.Builder
	writeCorner(&b, c.LowerLeft())
	if !c.IsPoint() {
		b.WriteByte(',')
		writeCorner(&b, c.UpperRight())
	}
	return b.String()
}

// parseSecondCorner consumes ",(...)" after a first corner list and builds
// the final cube. Corner length validation belongs to cube.New.
func parseSecondCorner(lowerLeft []float64, rest, input string) (cube.Cube, error) {
	if !strings.HasPrefix(rest, ",") {
		return cube.Cube{}, &ParseError{Input: input, Message: "expected ',' between corners"}
	}
	upperRight, rest, err := parseParenList(strings.TrimSpace(rest[1:]), input)
	if err != nil {
		return cube.Cube{}, err
	}
	if rest != "" {
		return cube.Cube{}, &ParseError{Input: input, Message: fmt.Sprintf("unexpected trailing %q", rest)}
	}
	return cube.New(lowerLeft, upperRight)
}

// parseParenList reads a parenthesized coordinate list from the front of s
// and returns the remainder with surrounding space trimmed.
func parseParenList(s, input string) ([]float64, string, error) {
	if !strings.HasPrefix(s, "(") {
		return nil, "", &ParseError{Input: input, Message: "expected '('"}
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return nil, "", &ParseError{Input: input, Message: "missing closing parenthesis"}
	}
	coords, err := parseCoords(s[1:end], input)
	if err != nil {
		return nil, "", err
	}
	return coords, strings.TrimSpace(s[end+1:]), nil
}

func parseCoords(s, input string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		// Zero-dimensional corner, as in "()".
		return []float64{}, nil
	}

	parts := strings.Split(s, ",")
	coords := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, &ParseError{Input: input, Message: fmt.Sprintf("invalid coordinate %q", part)}
		}
		coords = append(coords, v)
	}
	return coords, nil
}

func writeCorner(b *strings.Builder, coords []float64) {
	b.WriteByte('(')
	for i, v := range coords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(')')
}
