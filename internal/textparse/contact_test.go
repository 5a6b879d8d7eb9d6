package textparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitContactLabeledFields(t *testing.T) {
	c := SplitContact("Nama: Budi\nHP: 0812-3456-7890\nAlamat: Jl. Sudirman No. 1")
	assert.Equal(t, "Budi", c.Name)
	assert.Equal(t, "081234567890", c.Phone)
	assert.Equal(t, "Jl. Sudirman No. 1", c.Address)
}

func TestSplitContactLabelSynonyms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Contact
	}{
		{
			name: "english labels",
			in:   "Name: John\nPhone: 081234567890\nAddress: 5th Street Block A",
			want: Contact{Name: "John", Phone: "081234567890", Address: "5th Street Block A"},
		},
		{
			name: "dash separator",
			in:   "Penerima - Siti Aminah\nWA - 089876543210",
			want: Contact{Name: "Siti Aminah", Phone: "089876543210"},
		},
		{
			name: "no separator",
			in:   "Nama Budi Santoso",
			want: Contact{Name: "Budi Santoso"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitContact(tt.in))
		})
	}
}

func TestSplitContactUnlabeledPhone(t *testing.T) {
	c := SplitContact("Budi\n081234567890\nJl. Melati Blok C2")
	assert.Equal(t, "Budi", c.Name)
	assert.Equal(t, "081234567890", c.Phone)
	assert.Equal(t, "Jl. Melati Blok C2", c.Address)
}

func TestSplitContactFirstLabeledValueWins(t *testing.T) {
	c := SplitContact("Nama: Budi\nNama: Siti\nHP: 081234567890\n082111111111")
	assert.Equal(t, "Budi", c.Name)
	assert.Equal(t, "081234567890", c.Phone)
}

func TestSplitContactFallbackAddressJoin(t *testing.T) {
	c := SplitContact("Budi\nJl. Kenanga No. 5\nRT 03 RW 05 Kelurahan Sukamaju")
	assert.Equal(t, "Budi", c.Name)
	assert.Equal(t, "Jl. Kenanga No. 5, RT 03 RW 05 Kelurahan Sukamaju", c.Address)
}

func TestSplitContactOnlyFirstUntouchedLineBecomesName(t *testing.T) {
	// the second untouched line goes to address even without markers
	c := SplitContact("Budi\ndekat pasar lama")
	assert.Equal(t, "Budi", c.Name)
	assert.Equal(t, "dekat pasar lama", c.Address)
}

func TestSplitContactHeaderLinesDiscarded(t *testing.T) {
	c := SplitContact("Pesanan:\nBudi")
	assert.Equal(t, "Budi", c.Name)
	assert.Empty(t, c.Address)
}

func TestSplitContactEmptyInput(t *testing.T) {
	c := SplitContact("")
	assert.Equal(t, Contact{}, c)
}

func TestSplitContactAddressMarkerLineNeverName(t *testing.T) {
	c := SplitContact("Jl. Anggrek No. 12\nBudi")
	assert.Empty(t, c.Name)
	assert.Contains(t, c.Address, "Jl. Anggrek")
	assert.Contains(t, c.Address, "Budi")
}
