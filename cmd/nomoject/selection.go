package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/junglivre/nomoject/internal/device"
)

// parseSelection turns a list like "1,3,5-7" of 1-based indices into
// 0-based indices into a list of n items. Order follows first mention and
// duplicates are dropped.
func parseSelection(spec string, n int) ([]int, error) {
	var out []int
	seen := make(map[int]bool)

	add := func(i int) error {
		if i < 1 || i > n {
			return fmt.Errorf("device %d out of range 1-%d", i, n)
		}
		if !seen[i] {
			seen[i] = true
			out = append(out, i-1)
		}
		return nil
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid device index %q", part)
		}
		last := first
		if isRange {
			if last, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil || last < first {
				return nil, fmt.Errorf("invalid device range %q", part)
			}
		}

		for i := first; i <= last; i++ {
			if err := add(i); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func pick(records []device.Record, indices []int) []device.Record {
	out := make([]device.Record, 0, len(indices))
	for _, i := range indices {
		out = append(out, records[i])
	}
	return out
}
