package queries

import (
	"math"
	"testing"
	"time"

	"schoollunch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPinLatestActive(t *testing.T) {
	base := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	row := func(hoursAgo int, status order.Status) orderRow {
		return orderRow{ID: uuid.New(), Status: int(status), CreatedAt: base.Add(-time.Duration(hoursAgo) * time.Hour)}
	}

	cancelled1 := row(1, order.Cancelled)
	cancelled2 := row(2, order.Cancelled)
	active3 := row(3, order.Active)
	active4 := row(4, order.Active)

	tests := []struct {
		name string
		rows []orderRow
		want []uuid.UUID
	}{
		{name: "empty", rows: nil, want: []uuid.UUID{}},
		{
			name: "latest active moves to the top",
			rows: []orderRow{cancelled1, cancelled2, active3, active4},
			want: []uuid.UUID{active3.ID, cancelled1.ID, cancelled2.ID, active4.ID},
		},
		{
			name: "already first",
			rows: []orderRow{active3, cancelled1},
			want: []uuid.UUID{active3.ID, cancelled1.ID},
		},
		{
			name: "no active order",
			rows: []orderRow{cancelled1, cancelled2},
			want: []uuid.UUID{cancelled1.ID, cancelled2.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderIDs(pinLatestActive(tt.rows))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, paginate(items, 1, 2))
	assert.Equal(t, []int{5}, paginate(items, 3, 2))
	assert.Empty(t, paginate(items, 4, 2))
	assert.Equal(t, items, paginate(items, 1, 20))
	assert.Empty(t, paginate([]int{}, 1, 20))
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for _, page := range []int{math.MaxInt64/4 + 2, math.MaxInt64} {
		assert.NotPanics(t, func() {
			assert.Empty(t, paginate(items, page, 4))
		}, "page %d", page)
	}
	assert.Equal(t, []int{5, 6, 7, 8}, paginate(items, 2, 4))
	assert.Empty(t, paginate(items, 3, 4))
}
