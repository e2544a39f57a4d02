package report

import "shiftbot/internal/domain"

// NextNumber returns the next unused report number for a crew: 1 when
// the crew has no prior reports, otherwise max+1. Allocation is not
// transactionally safe against two sessions finalizing for the same
// crew at once; with one operator per crew this is an accepted risk.
func NextNumber(existing []domain.Report) int {
	max := 0
	for _, r := range existing {
		if r.Number > max {
			max = r.Number
		}
	}
	return max + 1
}
