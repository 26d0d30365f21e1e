package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatDisplayID constructs a customer display ID from its components.
func formatDisplayID(year, sequence int) string {
	return fmt.Sprintf("LC-%d-CUST-%04d", year, sequence)
}

// GenerateDisplayID creates the next human-readable customer ID, e.g.
// "LC-2026-CUST-0001". The counter restarts every year; the next value is
// found by scanning existing display IDs for the current year's prefix.
func GenerateDisplayID(app *pocketbase.PocketBase, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("LC-%d-CUST-", year)

	customers, err := app.FindRecordsByFilter(
		"customers",
		"display_id != ''",
		"", 0, 0,
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("scan display IDs: %w", err)
	}

	maxNum := 0
	for _, rec := range customers {
		displayID := rec.GetString("display_id")
		if !strings.HasPrefix(displayID, prefix) {
			continue
		}
		num, err := strconv.Atoi(displayID[len(prefix):])
		if err != nil {
			continue
		}
		if num > maxNum {
			maxNum = num
		}
	}

	return formatDisplayID(year, maxNum+1), nil
}
