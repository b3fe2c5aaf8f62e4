package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 10, hour, min, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    NewInterval(at(10, 0), 30),
			b:    NewInterval(at(10, 0), 30),
			want: true,
		},
		{
			name: "partial overlap",
			a:    NewInterval(at(10, 0), 60),
			b:    NewInterval(at(10, 30), 30),
			want: true,
		},
		{
			name: "contained interval",
			a:    NewInterval(at(9, 0), 120),
			b:    NewInterval(at(9, 30), 30),
			want: true,
		},
		{
			name: "back-to-back does not overlap",
			a:    NewInterval(at(10, 0), 30),
			b:    NewInterval(at(10, 30), 30),
			want: false,
		},
		{
			name: "back-to-back reversed",
			a:    NewInterval(at(10, 30), 30),
			b:    NewInterval(at(10, 0), 30),
			want: false,
		},
		{
			name: "disjoint",
			a:    NewInterval(at(9, 0), 30),
			b:    NewInterval(at(14, 0), 30),
			want: false,
		},
		{
			name: "one minute of shared time",
			a:    NewInterval(at(10, 0), 31),
			b:    NewInterval(at(10, 30), 30),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlap é simétrico
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewInterval(t *testing.T) {
	iv := NewInterval(at(10, 0), 45)
	assert.Equal(t, at(10, 0), iv.Start)
	assert.Equal(t, at(10, 45), iv.End)
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusConfirmed.Blocks())
	assert.False(t, StatusCancelled.Blocks())
	assert.False(t, StatusCompleted.Blocks())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("scheduled").Valid())
	assert.False(t, Status("").Valid())
}
