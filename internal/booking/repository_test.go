package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking/internal/room"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}

func stay(t *testing.T, userID, roomNumber int, checkIn, checkOut string) *Booking {
	t.Helper()
	return &Booking{
		ID:                "ref-" + checkIn,
		UserID:            userID,
		RoomNumber:        roomNumber,
		CategoryAtBooking: room.CategoryStandard,
		PriceAtBooking:    1000,
		CheckIn:           day(t, checkIn),
		CheckOut:          day(t, checkOut),
		Nights:            1,
		TotalCost:         1000,
		BalanceAtBooking:  5000,
	}
}

func TestCreateSharesOneValueAcrossViews(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	b := stay(t, 1, 101, "2026-07-07", "2026-07-08")
	require.NoError(t, repo.Create(ctx, b))

	ledger, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	byRoom, err := repo.ListByRoom(ctx, 101)
	require.NoError(t, err)
	byUser, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)

	require.Len(t, ledger, 1)
	require.Len(t, byRoom, 1)
	require.Len(t, byUser, 1)

	// One allocation, three views
	assert.Same(t, b, ledger[0])
	assert.Same(t, b, byRoom[0])
	assert.Same(t, b, byUser[0])
}

func TestFindOverlapHalfOpenSemantics(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, stay(t, 1, 101, "2026-07-07", "2026-07-10")))

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		conflict bool
	}{
		{"ends at existing start", "2026-07-05", "2026-07-07", false},
		{"starts at existing end", "2026-07-10", "2026-07-12", false},
		{"identical range", "2026-07-07", "2026-07-10", true},
		{"straddles start", "2026-07-06", "2026-07-08", true},
		{"straddles end", "2026-07-09", "2026-07-11", true},
		{"contained within", "2026-07-08", "2026-07-09", true},
		{"contains existing", "2026-07-06", "2026-07-11", true},
		{"entirely before", "2026-07-01", "2026-07-03", false},
		{"entirely after", "2026-07-12", "2026-07-14", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.FindOverlap(ctx, 101, day(t, tc.checkIn), day(t, tc.checkOut))
			require.NoError(t, err)
			if tc.conflict {
				assert.NotNil(t, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindOverlapIgnoresOtherRooms(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, stay(t, 1, 101, "2026-07-07", "2026-07-10")))

	got, err := repo.FindOverlap(ctx, 102, day(t, "2026-07-07"), day(t, "2026-07-10"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListNewestFirstOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := stay(t, 1, 101, "2026-07-01", "2026-07-02")
	second := stay(t, 2, 101, "2026-07-03", "2026-07-04")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	ledger, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Same(t, second, ledger[0])
	assert.Same(t, first, ledger[1])

	// Per-room view keeps creation order
	byRoom, err := repo.ListByRoom(ctx, 101)
	require.NoError(t, err)
	require.Len(t, byRoom, 2)
	assert.Same(t, first, byRoom[0])
}
