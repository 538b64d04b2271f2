package naming

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name     string
		copied   string
		existing []string
		pending  []string
		want     string
	}{
		{
			name:     "first copy gets bare suffix",
			copied:   "a",
			existing: []string{"b"},
			want:     "a copy",
		},
		{
			name:     "copy of a copy",
			copied:   "a copy",
			existing: []string{"a copy"},
			want:     "a copy 2",
		},
		{
			name:     "next after numbered copy",
			copied:   "a",
			existing: []string{"a", "a copy 2"},
			want:     "a copy 3",
		},
		{
			name:     "pending names count",
			copied:   "a",
			existing: []string{"a", "a copy 2"},
			pending:  []string{"a copy 3"},
			want:     "a copy 4",
		},
		{
			name:     "gaps are not refilled",
			copied:   "a",
			existing: []string{"a", "a copy 3"},
			want:     "a copy 4",
		},
		{
			name:     "gaps are not refilled with pending",
			copied:   "a",
			existing: []string{"a", "a copy 3"},
			pending:  []string{"a copy 4"},
			want:     "a copy 5",
		},
		{
			name:     "pending only",
			copied:   "a",
			existing: []string{"a"},
			pending:  []string{"a copy 2", "a copy 3", "a copy 4"},
			want:     "a copy 5",
		},
		{
			name:     "copy of numbered copy",
			copied:   "a copy 2",
			existing: []string{"a copy 2"},
			pending:  []string{"a copy 3"},
			want:     "a copy 4",
		},
		{
			name:     "numbers compare numerically",
			copied:   "a copy 9",
			existing: []string{"a copy 9"},
			pending:  []string{"a copy 10"},
			want:     "a copy 11",
		},
		{
			name:     "two digit copy",
			copied:   "a copy 10",
			existing: []string{"a copy 10"},
			want:     "a copy 11",
		},
		{
			name:     "mixed existing and pending",
			copied:   "a",
			existing: []string{"a", "a copy 3"},
			pending:  []string{"a copy 4"},
			want:     "a copy 5",
		},
		{
			name:     "other roots ignored",
			copied:   "a",
			existing: []string{"ab copy 7", "b copy 9", "a copy x"},
			want:     "a copy",
		},
		{
			name:     "empty key",
			copied:   "",
			existing: []string{""},
			want:     " copy",
		},
		{
			name:     "copy inside root",
			copied:   "copy machine",
			existing: []string{"copy machine"},
			want:     "copy machine copy",
		},
		{
			name:     "zero is not a copy number",
			copied:   "a copy 0",
			existing: []string{"a copy 0"},
			want:     "a copy 0 copy",
		},
		{
			name:     "regex metacharacters in root",
			copied:   "price (usd)",
			existing: []string{"price (usd) copy", "price Xusd) copy 5"},
			want:     "price (usd) copy 2",
		},
		{
			name:     "invalid UTF-8 in root",
			copied:   "logo\xff",
			existing: []string{"logo\xff", "logo\xff copy"},
			want:     "logo\xff copy 2",
		},
		{
			name:     "invalid UTF-8 copy of a copy",
			copied:   "\xfe\xff copy 3",
			existing: []string{"\xfe\xff copy 3"},
			want:     "\xfe\xff copy 4",
		},
		{
			name:     "numbers beyond int64",
			copied:   "a",
			existing: []string{"a copy 99999999999999999999"},
			want:     "a copy 100000000000000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.copied, tt.existing, tt.pending)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, tt.existing, got)
			assert.NotContains(t, tt.pending, got)
		})
	}
}

func TestAllocate_NeverCollides(t *testing.T) {
	taken := []string{
		"title", "title copy", "title copy 2", "title copy 7",
		"logo copy", "logo copy 1", "", " copy", "copy", "x copy 3",
		"bad\xff", "bad\xff copy", "bad\xff copy 2",
	}
	for _, copied := range append(slices.Clone(taken), "new", "title copy 40") {
		got := Allocate(copied, taken, []string{"title copy 8"})
		assert.NotContains(t, taken, got, "copied %q", copied)
		assert.NotEqual(t, "title copy 8", got, "copied %q", copied)
	}
}

func TestAllocate_PreservesRoot(t *testing.T) {
	for _, key := range []string{"a copy", "a copy 2", "a copy 10", "x y copy 3", " copy"} {
		t.Run(key, func(t *testing.T) {
			got := Allocate(key, nil, nil)
			assert.Equal(t, Root(key), Root(got))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		key    string
		want   Copy
		wantOK bool
	}{
		{key: "a copy", want: Copy{Root: "a", Number: "1"}, wantOK: true},
		{key: "a copy 2", want: Copy{Root: "a", Number: "2"}, wantOK: true},
		{key: "a copy copy", want: Copy{Root: "a copy", Number: "1"}, wantOK: true},
		{key: "a copy 2 copy 3", want: Copy{Root: "a copy 2", Number: "3"}, wantOK: true},
		{key: " copy", want: Copy{Root: "", Number: "1"}, wantOK: true},
		{key: "a", wantOK: false},
		{key: "a copy 01", wantOK: false},
		{key: "a copy2", wantOK: false},
		{key: "a copy ", wantOK: false},
		{key: "acopy", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Parse(tt.key)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecimalHelpers(t *testing.T) {
	assert.Equal(t, "2", incrementDecimal("1"))
	assert.Equal(t, "10", incrementDecimal("9"))
	assert.Equal(t, "1000", incrementDecimal("999"))
	assert.Equal(t, "130", incrementDecimal("129"))

	assert.Equal(t, 1, compareDecimal("10", "9"))
	assert.Equal(t, -1, compareDecimal("9", "10"))
	assert.Equal(t, 0, compareDecimal("42", "42"))
	assert.Equal(t, -1, compareDecimal("41", "42"))
}
