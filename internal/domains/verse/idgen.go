package verse

import (
	"fmt"
	"regexp"
	"strconv"
)

// IDPattern matches store-unique verse ids: "V" + 4-digit zero-padded
// sequence + optional single lowercase suffix (V0001, V0012a). The suffix
// form exists for interpolated verses sharing a sequence number.
var IDPattern = regexp.MustCompile(`^V(\d{4})([a-z]?)$`)

// NextID derives the next available verse id from the ids currently live in
// a work. Non-matching names (partial writes, editor droppings) are ignored.
// The returned order value equals the new numeric sequence.
//
// Fresh numbers always come out in the bare form: the suffix scan below only
// matters if a caller ever pre-assigns suffixed ids at max+1. Known
// limitation: trash is not consulted, so a deleted verse's number can be
// reissued.
func NextID(existing []string) (string, int) {
	maxIndex := 0
	suffixes := make(map[int]map[string]bool)

	for _, id := range existing {
		m := IDPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if number > maxIndex {
			maxIndex = number
		}
		if suffixes[number] == nil {
			suffixes[number] = make(map[string]bool)
		}
		suffixes[number][m[2]] = true
	}

	next := maxIndex + 1
	taken := suffixes[next]

	suffix := ""
	if taken[""] {
		for c := 'a'; c <= 'z'; c++ {
			if !taken[string(c)] {
				suffix = string(c)
				break
			}
		}
	}

	return fmt.Sprintf("V%04d%s", next, suffix), next
}
