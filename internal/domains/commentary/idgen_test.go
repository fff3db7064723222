package commentary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"corpus-backend/internal/domains/commentary"
)

func TestWorkCode(t *testing.T) {
	assert.Equal(t, "SATYAN", commentary.WorkCode("satyanusaran"))
	assert.Equal(t, "ABCDEF", commentary.WorkCode("ab-cd-ef-gh"))
	assert.Equal(t, "GITA", commentary.WorkCode("gita"))
}

func TestNextIDFirstInScope(t *testing.T) {
	id := commentary.NextID("satyanusaran", "V0001", nil)
	assert.Equal(t, "C-SATYAN-V0001-0001", id)
}

func TestNextIDIncrementsWithinScope(t *testing.T) {
	id := commentary.NextID("satyanusaran", "V0001", []string{"C-SATYAN-V0001-0001"})
	assert.Equal(t, "C-SATYAN-V0001-0002", id)
}

func TestNextIDIgnoresGarbageAndForeignNames(t *testing.T) {
	id := commentary.NextID("satyanusaran", "V0001", []string{
		"C-SATYAN-V0001-0003",
		"C-partial",
		"notes",
		"C-SATYAN-V0001-(copy)",
	})
	assert.Equal(t, "C-SATYAN-V0001-0004", id)
}

func TestNextIDAcceptsSuffixedVerseSegment(t *testing.T) {
	id := commentary.NextID("satyanusaran", "V0004a", []string{"C-SATYAN-V0004a-0001"})
	assert.Equal(t, "C-SATYAN-V0004a-0002", id)
}
