package commentary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// IDPattern matches store-unique commentary ids such as C-SATYAN-V0001-0001.
var IDPattern = regexp.MustCompile(`^C-([A-Z0-9]+)-(V\d{4}[a-z]?)-(\d{4})$`)

const workCodeLen = 6

// WorkCode derives the id segment for a work: separators stripped,
// uppercased, truncated to six characters.
func WorkCode(workID string) string {
	code := strings.ToUpper(strings.ReplaceAll(workID, "-", ""))
	code = strings.ReplaceAll(code, "_", "")
	if len(code) > workCodeLen {
		code = code[:workCodeLen]
	}
	return code
}

// NextID scans the existing ids in one (work, verse) scope and returns the
// next sequential commentary id. verseID is "work" for work-scoped
// commentary. Non-matching names are ignored; trashed ids are not consulted.
func NextID(workID, verseID string, existing []string) string {
	scope := verseID
	if scope == "" {
		scope = "work"
	}
	maxSeq := 0
	for _, id := range existing {
		m := IDPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("C-%s-%s-%04d", WorkCode(workID), scope, maxSeq+1)
}
