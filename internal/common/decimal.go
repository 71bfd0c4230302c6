package common

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	CollateralDecimals = 6 // EdgeX collateral (USDT) has 6 decimals (micro)
)

// MicroToAmount converts signed micro units to a collateral amount string
// without float precision loss
func MicroToAmount(micro int64) string {
	if micro < 0 {
		return "-" + formatWithDecimals(uint64(-micro), CollateralDecimals)
	}
	return formatWithDecimals(uint64(micro), CollateralDecimals)
}

// AmountToMicro converts a signed collateral amount string to micro units
// without float precision loss
func AmountToMicro(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	neg := strings.HasPrefix(amount, "-")
	if neg {
		amount = amount[1:]
	}
	n, err := parseWithDecimals(amount, CollateralDecimals)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(n), nil
	}
	return int64(n), nil
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 6) = "24.981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("24.981836", 6) = 24981836
func parseWithDecimals(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		// No decimal point - multiply by 10^decimals
		n, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return 0, err
		}
		for i := 0; i < decimals; i++ {
			n *= 10
		}
		return n, nil
	}

	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := parts[1]

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	// Combine and parse
	combined := whole + frac
	return strconv.ParseUint(combined, 10, 64)
}

// CompareAbsAmounts compares the absolute values of two collateral amount
// strings without float precision loss.
// Returns: -1 if |a| < |b|, 0 if |a| == |b|, 1 if |a| > |b|, and error if parsing fails
func CompareAbsAmounts(a, b string) (int, error) {
	aVal, err := AmountToMicro(a)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := AmountToMicro(b)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	if aVal < 0 {
		aVal = -aVal
	}
	if bVal < 0 {
		bVal = -bVal
	}

	if aVal < bVal {
		return -1, nil
	}
	if aVal > bVal {
		return 1, nil
	}
	return 0, nil
}
