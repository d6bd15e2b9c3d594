package codec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pgxcube/pkg/cube"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDims  int
		wantPoint bool
		want      cube.Cube
	}{
		{
			name:      "bare list",
			input:     "1,2,3",
			wantDims:  3,
			wantPoint: true,
			want:      cube.Point(1, 2, 3),
		},
		{
			name:      "parenthesized point",
			input:     "(1, 2)",
			wantDims:  2,
			wantPoint: true,
			want:      cube.Point(1, 2),
		},
		{
			name:      "two corners",
			input:     "(0, 0),(1, 1)",
			wantDims:  2,
			wantPoint: false,
			want:      MustParse("(0,0),(1,1)"),
		},
		{
			name:      "bracketed box",
			input:     "[(0),(1)]",
			wantDims:  1,
			wantPoint: false,
		},
		{
			name:      "surrounding whitespace",
			input:     "  ( 1 , 2 ) , ( 3 , 4 )  ",
			wantDims:  2,
			wantPoint: false,
		},
		{
			name:      "equal corners are a point",
			input:     "(1, 2),(1, 2)",
			wantDims:  2,
			wantPoint: true,
		},
		{
			name:      "negative and fractional coordinates",
			input:     "(-3.5, 0.25)",
			wantDims:  2,
			wantPoint: true,
			want:      cube.Point(-3.5, 0.25),
		},
		{
			name:      "scientific notation",
			input:     "(1e3),(2e-3)",
			wantDims:  1,
			wantPoint: false,
		},
		{
			name:      "zero-dimensional cube",
			input:     "()",
			wantDims:  0,
			wantPoint: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDims, got.Dimensions())
			assert.Equal(t, tt.wantPoint, got.IsPoint())
			if tt.want.Dimensions() > 0 {
				assert.True(t, got.Equal(tt.want), "parsed cube should equal %v", Format(tt.want))
			}
		})
	}
}

func TestParse_Infinity(t *testing.T) {
	c, err := Parse("(-Infinity),(Infinity)")
	require.NoError(t, err)
	assert.True(t, math.IsInf(c.LowerLeft()[0], -1))
	assert.True(t, math.IsInf(c.UpperRight()[0], 1))
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "unterminated paren", input: "(1, 2"},
		{name: "unterminated bracket", input: "[(1),(2)"},
		{name: "bracketed single corner", input: "[(1)]"},
		{name: "missing comma between corners", input: "(1)(2)"},
		{name: "trailing garbage", input: "(1),(2)x"},
		{name: "non-numeric coordinate", input: "(1, banana)"},
		{name: "bare list with parenthesized tail", input: "1,(2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %v", err)
		})
	}
}

func TestParse_DimensionMismatch(t *testing.T) {
	_, err := Parse("(0, 0),(1)")
	require.Error(t, err)

	var formatErr *cube.FormatError
	assert.True(t, errors.As(err, &formatErr), "expected *cube.FormatError, got %v", err)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		c    cube.Cube
		want string
	}{
		{name: "point", c: cube.Point(1, 2), want: "(1, 2)"},
		{name: "box", c: MustParse("(0,0),(1,1)"), want: "(0, 0),(1, 1)"},
		{name: "fractional", c: cube.Point(3.5, -2), want: "(3.5, -2)"},
		{name: "equal-corner box prints as point", c: MustParse("(7, 8),(7, 8)"), want: "(7, 8)"},
		{name: "zero-dimensional", c: cube.Cube{}, want: "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.c))
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	inputs := []string{
		"(1, 2)",
		"(0, 0),(1, 1)",
		"(-3.5, 0.25, 1e10),(0, 0, 0)",
	}

	for _, input := range inputs {
		c, err := Parse(input)
		require.NoError(t, err)

		again, err := Parse(Format(c))
		require.NoError(t, err)
		assert.True(t, c.Equal(again), "round-trip of %q changed the value", input)
	}
}

func TestMustParse_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a cube") })
}
