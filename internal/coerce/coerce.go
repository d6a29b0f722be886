// Package coerce converts loosely typed JSON values into numbers using the
// same rules as JavaScript's Number() conversion, which is what clients of
// the loan API have always relied on.
package coerce

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrNaN is returned when a value does not convert to a finite number.
var ErrNaN = errors.New("value is not a finite number")

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	hexLiteral     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	octalLiteral   = regexp.MustCompile(`^0[oO][0-7]+$`)
	binaryLiteral  = regexp.MustCompile(`^0[bB][01]+$`)
)

// Number converts a raw JSON value to a finite float64.
//
//	null, "", []        -> 0
//	true / false        -> 1 / 0
//	" 42 ", "1e3"       -> 42, 1000
//	"0x1F", "0b11"      -> 31, 3
//	["7"]               -> 7
//	"abc", {}, [1, 2]   -> ErrNaN
//
// Infinite results are rejected with ErrNaN as well.
func Number(raw json.RawMessage) (float64, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}

	n := fromValue(v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, ErrNaN
	}
	return n, nil
}

func fromValue(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case json.Number:
		return fromString(x.String())
	case string:
		return fromString(x)
	case []any:
		return fromArray(x)
	default:
		return math.NaN()
	}
}

// fromArray follows the array -> string -> number path: [] is "", [x] is
// String(x), anything longer contains a comma.
func fromArray(items []any) float64 {
	switch len(items) {
	case 0:
		return 0
	case 1:
		switch x := items[0].(type) {
		case nil:
			return 0
		case bool:
			return math.NaN()
		default:
			return fromValue(x)
		}
	default:
		return math.NaN()
	}
}

func fromString(s string) float64 {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	switch {
	case hexLiteral.MatchString(s):
		return fromInteger(s[2:], 16)
	case octalLiteral.MatchString(s):
		return fromInteger(s[2:], 8)
	case binaryLiteral.MatchString(s):
		return fromInteger(s[2:], 2)
	case decimalLiteral.MatchString(s):
		// Out-of-range values come back as ±Inf together with ErrRange.
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN()
		}
		return f
	}

	return math.NaN()
}

func fromInteger(digits string, base int) float64 {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
