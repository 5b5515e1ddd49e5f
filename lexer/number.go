package lexer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aledsdavies/duro/combinator"
	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/aledsdavies/duro/value"
)

var (
	hexRe   = regexp.MustCompile(`^0x[0-9A-Fa-f_]+`)
	octRe   = regexp.MustCompile(`^0o[0-7_]+`)
	binRe   = regexp.MustCompile(`^0b[01_]+`)
	infRe   = regexp.MustCompile(`^[+-]?inf`)
	nanRe   = regexp.MustCompile(`^[+-]?nan`)
	numberRe = regexp.MustCompile(`^[+-]?[0-9][0-9_]*(\.[0-9][0-9_]*)?([eE][+-]?[0-9][0-9_]*)?`)
)

// followedByIdentChar reports whether the byte of rest right after a
// matched prefix of length n continues an identifier - used to reject
// ambiguous tokenizations like "0x1f_oo" or "infinity" being mistaken for
// the inf literal.
func followedByIdentChar(rest string, n int) bool {
	if n >= len(rest) {
		return false
	}
	b := rest[n]
	return b < 128 && isIdentPart[b]
}

// Number recognizes, in priority order, hex/octal/binary integers, the
// inf/nan special floats, decimal floats, and signed decimal integers.
// Underscores inside the matched body are stripped before conversion via
// strconv, the host's numeric parsing primitive.
func Number(c *cursor.Cursor) (*value.Value, bool) {
	rest := c.Remaining()

	if m := hexRe.FindString(rest); m != "" && !followedByIdentChar(rest, len(m)) {
		digits := strings.ReplaceAll(m[2:], "_", "")
		u, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return nil, false
		}
		c.Consume(len(m))
		return value.NewInteger(int64(u)), true
	}
	if m := octRe.FindString(rest); m != "" && !followedByIdentChar(rest, len(m)) {
		digits := strings.ReplaceAll(m[2:], "_", "")
		u, err := strconv.ParseUint(digits, 8, 64)
		if err != nil {
			return nil, false
		}
		c.Consume(len(m))
		return value.NewInteger(int64(u)), true
	}
	if m := binRe.FindString(rest); m != "" && !followedByIdentChar(rest, len(m)) {
		digits := strings.ReplaceAll(m[2:], "_", "")
		u, err := strconv.ParseUint(digits, 2, 64)
		if err != nil {
			return nil, false
		}
		c.Consume(len(m))
		return value.NewInteger(int64(u)), true
	}
	if m := infRe.FindString(rest); m != "" && !followedByIdentChar(rest, len(m)) {
		c.Consume(len(m))
		if strings.HasPrefix(m, "-") {
			return value.NewFloat(math.Inf(-1)), true
		}
		return value.NewFloat(math.Inf(1)), true
	}
	if m := nanRe.FindString(rest); m != "" && !followedByIdentChar(rest, len(m)) {
		c.Consume(len(m))
		return value.NewFloat(math.NaN()), true
	}
	if m := numberRe.FindString(rest); m != "" && !followedByIdentChar(rest, len(m)) {
		clean := strings.ReplaceAll(m, "_", "")
		if strings.ContainsAny(m, ".eE") {
			f, err := strconv.ParseFloat(clean, 64)
			if err != nil {
				return nil, false
			}
			c.Consume(len(m))
			return value.NewFloat(f), true
		}
		i, err := strconv.ParseInt(clean, 10, 64)
		if err != nil {
			return nil, false
		}
		c.Consume(len(m))
		return value.NewInteger(i), true
	}
	return nil, false
}

// NumberParser adapts Number to the combinator.Parser shape.
var NumberParser = combinator.Match(Number, "number")
