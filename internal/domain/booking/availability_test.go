package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebooking/internal/domain"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                 string
		start, end           time.Time
		existStart, existEnd time.Time
		want                 bool
	}{
		{"touching after existing", day(1, 5), day(1, 10), day(1, 1), day(1, 5), false},
		{"touching before existing", day(1, 1), day(1, 5), day(1, 5), day(1, 10), false},
		{"candidate inside existing", day(2, 3), day(2, 5), day(2, 1), day(2, 10), true},
		{"candidate contains existing", day(2, 1), day(2, 10), day(2, 3), day(2, 5), true},
		{"identical ranges", day(3, 1), day(3, 4), day(3, 1), day(3, 4), true},
		{"candidate starts inside", day(3, 3), day(3, 8), day(3, 1), day(3, 5), true},
		{"candidate ends inside", day(3, 1), day(3, 4), day(3, 3), day(3, 8), true},
		{"same start, shorter", day(4, 1), day(4, 2), day(4, 1), day(4, 5), true},
		{"same end, shorter", day(4, 4), day(4, 5), day(4, 1), day(4, 5), true},
		{"disjoint", day(5, 1), day(5, 2), day(5, 10), day(5, 12), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.start, tc.end, tc.existStart, tc.existEnd))
		})
	}
}

// The three-case decomposition must agree with s < e' && s' < e for every
// pair of non-empty half-open ranges.
func TestOverlaps_AgreesWithIntervalIntersection(t *testing.T) {
	base := day(1, 1)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	const n = 8
	for s := 0; s < n; s++ {
		for e := s + 1; e <= n; e++ {
			for es := 0; es < n; es++ {
				for ee := es + 1; ee <= n; ee++ {
					want := s < ee && es < e
					got := Overlaps(at(s), at(e), at(es), at(ee))
					require.Equalf(t, want, got, "candidate [%d,%d) existing [%d,%d)", s, e, es, ee)
				}
			}
		}
	}
}

type stubFinder struct {
	rows []domain.BookingInquiry
	err  error

	gotVenueID string
	gotExclude string
}

func (f *stubFinder) FindConflicts(_ context.Context, venueID string, _, _ time.Time, excludeID string) ([]domain.BookingInquiry, error) {
	f.gotVenueID = venueID
	f.gotExclude = excludeID
	return f.rows, f.err
}

func TestChecker_CheckAvailability(t *testing.T) {
	finder := &stubFinder{rows: []domain.BookingInquiry{
		{ID: "pending", StartDate: day(2, 1), EndDate: day(2, 10), Status: domain.BookingPending},
		{ID: "cancelled", StartDate: day(2, 1), EndDate: day(2, 10), Status: domain.BookingCancelled},
		{ID: "touching", StartDate: day(1, 25), EndDate: day(2, 3), Status: domain.BookingConfirmed},
		{ID: "excluded", StartDate: day(2, 4), EndDate: day(2, 6), Status: domain.BookingConfirmed},
	}}

	res, err := NewChecker(finder).CheckAvailability(context.Background(), "venue-1", day(2, 3), day(2, 5), "excluded")
	require.NoError(t, err)

	assert.Equal(t, "venue-1", finder.gotVenueID)
	assert.Equal(t, "excluded", finder.gotExclude)
	assert.False(t, res.IsAvailable)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "pending", res.Conflicts[0].ID)
}

func TestChecker_Available(t *testing.T) {
	finder := &stubFinder{rows: []domain.BookingInquiry{
		{ID: "before", StartDate: day(1, 1), EndDate: day(1, 5), Status: domain.BookingPending},
	}}

	res, err := NewChecker(finder).CheckAvailability(context.Background(), "venue-1", day(1, 5), day(1, 10), "")
	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
	assert.Empty(t, res.Conflicts)
}

func TestChecker_PropagatesStorageError(t *testing.T) {
	finder := &stubFinder{err: errors.New("connection reset")}

	res, err := NewChecker(finder).CheckAvailability(context.Background(), "venue-1", day(1, 1), day(1, 2), "")
	assert.Nil(t, res)
	assert.EqualError(t, err, "connection reset")
}
