package venue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"venuebooking/internal/domain"
)

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) List(ctx context.Context, f Filters, limit, offset int) ([]domain.Venue, int64, error) {
	args := m.Called(ctx, f, limit, offset)
	venues, _ := args.Get(0).([]domain.Venue)
	return venues, args.Get(1).(int64), args.Error(2)
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*domain.Venue)
	return v, args.Error(1)
}

func (m *MockVenueRepository) ActiveBookings(ctx context.Context, venueID string) ([]BookingSlot, error) {
	args := m.Called(ctx, venueID)
	slots, _ := args.Get(0).([]BookingSlot)
	return slots, args.Error(1)
}

func TestService_ListVenues_PassesOffset(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVenueRepository)
	svc := NewService(repo)

	filters := Filters{Location: "Denver"}
	repo.On("List", ctx, filters, 10, 20).Return([]domain.Venue{{ID: "v-21"}}, int64(21), nil)

	res, err := svc.ListVenues(ctx, ListQuery{Location: "Denver", Page: intPtr(3)})
	require.NoError(t, err)

	assert.Len(t, res.Data, 1)
	assert.Equal(t, int64(21), res.Pagination.TotalCount)
	assert.Equal(t, 3, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNextPage)
	assert.True(t, res.Pagination.HasPreviousPage)
	repo.AssertExpectations(t)
}

func TestService_ListVenues_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVenueRepository)
	svc := NewService(repo)

	repo.On("List", ctx, Filters{}, 10, 0).Return(nil, int64(0), nil)

	res, err := svc.ListVenues(ctx, ListQuery{})
	require.NoError(t, err)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.Pagination.TotalPages)
}

func TestService_ListVenues_InvalidQuerySkipsStorage(t *testing.T) {
	repo := new(MockVenueRepository)
	svc := NewService(repo)

	_, err := svc.ListVenues(context.Background(), ListQuery{Limit: intPtr(500)})
	require.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetVenue(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVenueRepository)
	svc := NewService(repo)

	repo.On("GetByID", ctx, "v-1").Return(&domain.Venue{ID: "v-1", Name: "Lodge"}, nil)
	repo.On("ActiveBookings", ctx, "v-1").Return([]BookingSlot{{Status: domain.BookingPending}}, nil)

	detail, err := svc.GetVenue(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, "Lodge", detail.Name)
	assert.Len(t, detail.BookingInquiries, 1)
}

func TestService_GetVenue_Errors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockVenueRepository)
	svc := NewService(repo)

	repo.On("GetByID", ctx, "missing").Return(nil, ErrVenueNotFound)
	repo.On("GetByID", ctx, "v-1").Return(&domain.Venue{ID: "v-1"}, nil)
	repo.On("ActiveBookings", ctx, "v-1").Return(nil, errors.New("disk I/O error"))

	_, err := svc.GetVenue(ctx, "missing")
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = svc.GetVenue(ctx, "v-1")
	assert.EqualError(t, err, "disk I/O error")
}
