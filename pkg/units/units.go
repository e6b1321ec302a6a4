// Package units converts between decimal token amounts and the atomic
// integer units used on chain.
package units

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// Decimals is the precision of both the native currency and the TRU token.
const Decimals = 18

var unit = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// ParseToken converts a non-negative decimal string such as "100" or "0.5"
// into atomic units. More than Decimals fractional digits is an error rather
// than a silent truncation.
func ParseToken(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, errors.Errorf("negative amount %q", s)
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac, hasPoint := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, errors.Errorf("invalid amount %q", s)
	}
	if hasPoint && frac == "" {
		return nil, errors.Errorf("invalid amount %q: missing fractional digits", s)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, errors.Errorf("invalid amount %q", s)
	}
	if len(frac) > Decimals {
		return nil, errors.Errorf("amount %q has more than %d fractional digits", s, Decimals)
	}

	digits := whole + frac + strings.Repeat("0", Decimals-len(frac))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// FormatToken renders atomic units as a decimal string with trailing
// fractional zeros removed.
func FormatToken(v *big.Int) string {
	if v == nil {
		return "0"
	}
	sign := ""
	abs := new(big.Int).Set(v)
	if abs.Sign() < 0 {
		sign = "-"
		abs.Neg(abs)
	}

	whole, frac := new(big.Int).QuoRem(abs, unit, new(big.Int))
	if frac.Sign() == 0 {
		return sign + whole.String()
	}
	fracStr := frac.String()
	fracStr = strings.Repeat("0", Decimals-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")
	return sign + whole.String() + "." + fracStr
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
