package digits

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SortDigits orders one partition buffer by (time bin, row, pad), ascending.
// Sorting is idempotent and is re-applied before every duplicate pass since
// the buffer may have been appended to in between.
func SortDigits(buffer []Digit) {
	slices.SortStableFunc(buffer, func(a, b Digit) int {
		if a.TimeBin != b.TimeBin {
			return a.TimeBin - b.TimeBin
		}
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Pad - b.Pad
	})
}

// CheckDuplicates sorts a partition buffer and handles digits sharing the
// same (time bin, row, pad) address. The charge is not part of the key: a
// re-delivered hit with a different charge still duplicates the first one.
// In removal mode all but the first of each run are dropped; otherwise they
// are only counted. Returns the number of duplicates.
func CheckDuplicates(partition int, buffer *[]Digit, remove bool) int {
	SortDigits(*buffer)

	isEqual := func(a, b Digit) bool {
		if (a.TimeBin == b.TimeBin) && (a.Row == b.Row) && (a.Pad == b.Pad) {
			if configuration.Verbosity > 1 {
				message := fmt.Sprintf("digit found twice at cru %3d, row %3d, pad %3d, time %6d, ADC %.2f (other: %.2f)",
					b.CRU, b.Row, b.Pad, b.TimeBin, b.Charge, a.Charge)
				logger.Info(message, "dedup")
			}
			return true
		}
		return false
	}

	nDuplicates := 0
	digits := *buffer
	if remove {
		compacted := slices.CompactFunc(digits, isEqual)
		nDuplicates = len(digits) - len(compacted)
		*buffer = compacted
	} else {
		for i := 1; i < len(digits); i++ {
			if isEqual(digits[i-1], digits[i]) {
				nDuplicates++
			}
		}
	}

	if nDuplicates > 0 {
		what := "found"
		if remove {
			what = "removed"
		}
		message := fmt.Sprintf("%s %d duplicate digits in partition %d", what, nDuplicates, partition)
		logger.Info(message, "dedup")
	}
	return nDuplicates
}
