package utils

import (
	"fmt"
	"strings"

	"github.com/arlopurcell/ledgy/internal/constants"
)

func FormatFromCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/float64(constants.CentsPerUnit))
}

// ParseToCents converts a decimal amount string into integer cents.
// Fractional digits beyond two are truncated, never rounded, to match the
// server's cent-exact bookkeeping.
func ParseToCents(amountStr string) (int64, error) {
	var dollars, cents int64

	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" || amountStr == "." {
		return 0, fmt.Errorf("amount is empty")
	}

	// Handle formats: "150", "150.5", "150.50"
	parts := strings.Split(amountStr, ".")

	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	if parts[0] != "" {
		if _, err := fmt.Sscanf(parts[0], "%d", &dollars); err != nil {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
		if dollars < 0 {
			return 0, fmt.Errorf("amount must not be negative: %s", amountStr)
		}
	}

	if len(parts) == 2 && parts[1] != "" {
		centStr := parts[1]
		// Pad or truncate to 2 digits
		if len(centStr) == 1 {
			centStr += "0" // "150.5" -> "50"
		} else if len(centStr) > 2 {
			centStr = centStr[:2]
		}

		if _, err := fmt.Sscanf(centStr, "%d", &cents); err != nil {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
		if cents < 0 {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
	}

	total := dollars*int64(constants.CentsPerUnit) + cents
	return total, nil
}
