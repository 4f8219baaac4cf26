package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlot_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	slot := NewTimeSlot(base, 30*time.Minute) // 10:00 - 10:30

	tests := []struct {
		name string
		busy BusyInterval
		want bool
	}{
		{
			name: "full overlap",
			busy: BusyInterval{Start: base, End: base.Add(30 * time.Minute)},
			want: true,
		},
		{
			name: "partial overlap at start",
			busy: BusyInterval{Start: base.Add(-15 * time.Minute), End: base.Add(15 * time.Minute)},
			want: true,
		},
		{
			name: "partial overlap at end",
			busy: BusyInterval{Start: base.Add(15 * time.Minute), End: base.Add(45 * time.Minute)},
			want: true,
		},
		{
			name: "busy contained in slot",
			busy: BusyInterval{Start: base.Add(10 * time.Minute), End: base.Add(20 * time.Minute)},
			want: true,
		},
		{
			name: "busy ends exactly at slot start",
			busy: BusyInterval{Start: base.Add(-time.Hour), End: base},
			want: false,
		},
		{
			name: "busy starts exactly at slot end",
			busy: BusyInterval{Start: base.Add(30 * time.Minute), End: base.Add(time.Hour)},
			want: false,
		},
		{
			name: "busy far away",
			busy: BusyInterval{Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.busy))
		})
	}
}

func TestTimeSlot_OverlapsAny(t *testing.T) {
	base := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	slot := NewTimeSlot(base, 30*time.Minute)

	busy := []BusyInterval{
		{Start: base.Add(-time.Hour), End: base}, // touches start, no overlap
		{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)},
	}
	assert.False(t, slot.OverlapsAny(busy))

	busy = append(busy, BusyInterval{Start: base.Add(15 * time.Minute), End: base.Add(20 * time.Minute)})
	assert.True(t, slot.OverlapsAny(busy))

	assert.False(t, slot.OverlapsAny(nil))
}

func TestBusyInterval_Padded(t *testing.T) {
	base := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	busy := BusyInterval{Start: base, End: base.Add(30 * time.Minute)}

	padded := busy.Padded(15 * time.Minute)
	assert.Equal(t, base.Add(-15*time.Minute), padded.Start)
	assert.Equal(t, base.Add(45*time.Minute), padded.End)

	// Нулевой буфер не меняет интервал
	assert.Equal(t, busy, busy.Padded(0))
}

func TestPadBusyIntervals(t *testing.T) {
	base := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	busy := []BusyInterval{
		{Start: base, End: base.Add(30 * time.Minute)},
		{Start: base.Add(time.Hour), End: base.Add(90 * time.Minute)},
	}

	padded := PadBusyIntervals(busy, 10*time.Minute)
	assert.Len(t, padded, 2)
	assert.Equal(t, base.Add(-10*time.Minute), padded[0].Start)
	assert.Equal(t, base.Add(100*time.Minute), padded[1].End)

	// Исходный список не мутируется
	assert.Equal(t, base, busy[0].Start)
}
