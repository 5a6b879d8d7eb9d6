package textparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentBlocksBlankLines(t *testing.T) {
	raw := "Nama: Budi\n2x Pocky @30000\n\n\nNama: Siti\n1x Chitato @15000"
	blocks := SegmentBlocks(raw)
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "Budi")
	assert.Contains(t, blocks[1], "Siti")
}

func TestSegmentBlocksSeparatorLines(t *testing.T) {
	tests := []string{"===", "=====", "---", "--------"}
	for _, sep := range tests {
		raw := "Nama: Budi\n2x Pocky @30000\n" + sep + "\nNama: Siti\n1x Chitato @15000"
		blocks := SegmentBlocks(raw)
		require.Len(t, blocks, 2, "separator %q", sep)
	}
}

func TestSegmentBlocksNumberedRecipientEntry(t *testing.T) {
	raw := "1. Nama: Budi\nHP: 081234567890\n2. Nama: Siti\nHP: 089876543210"
	blocks := SegmentBlocks(raw)
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "Budi")
	assert.Contains(t, blocks[1], "Siti")
}

func TestSegmentBlocksDiscardsNoise(t *testing.T) {
	blocks := SegmentBlocks("ok\n\nNama: Budi Santoso\n2x Pocky @30000")
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "Budi")
}

func TestSegmentBlocksEmptyInput(t *testing.T) {
	assert.Empty(t, SegmentBlocks(""))
	assert.Empty(t, SegmentBlocks("\n\n\n"))
}

func TestSegmentBlocksSingleBlock(t *testing.T) {
	raw := "Nama: Budi\nHP: 081234567890\n2x Pocky @30000"
	blocks := SegmentBlocks(raw)
	require.Len(t, blocks, 1)
	assert.Equal(t, raw, blocks[0])
}
