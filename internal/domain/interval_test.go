package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{name: "identical intervals", a: Interval{540, 570}, b: Interval{540, 570}, want: true},
		{name: "partial overlap", a: Interval{540, 570}, b: Interval{555, 585}, want: true},
		{name: "containment", a: Interval{540, 600}, b: Interval{555, 570}, want: true},
		{name: "touching boundaries do not overlap", a: Interval{540, 570}, b: Interval{570, 600}, want: false},
		{name: "disjoint", a: Interval{540, 570}, b: Interval{600, 630}, want: false},
		{name: "shifted by stride still overlaps", a: Interval{555, 585}, b: Interval{540, 570}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval("09:00", "09:30")
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 540, End: 570}, interval)

	interval, err = NewInterval("23:00", "24:00")
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 1380, End: 1440}, interval)

	_, err = NewInterval("bad", "09:30")
	assert.Error(t, err)
}
