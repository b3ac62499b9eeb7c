package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/truck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTrucksQueryHandler_Handle_ReturnsPageWithContinuation(t *testing.T) {
	// Arrange
	ctx := t.Context()
	trucks := []*truck.Truck{
		restoreTruck(t, 1, "auth0|a"),
		restoreTruck(t, 2, "auth0|b"),
	}

	query, err := queries.NewGetTrucksQuery(2, 0)
	require.NoError(t, err)

	mockRepo := new(MockTruckRepository)
	mockUoW := new(MockTruckReadUoW)
	mockFactory := new(MockTruckReadUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TruckRepository").Return(mockRepo).Once(),
		mockRepo.On("GetList", ctx, 2, 0).Return(trucks, true, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := queries.NewGetTrucksQueryHandler(mockFactory)

	// Act
	page, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	require.Len(t, page.Trucks, 2)
	assert.True(t, page.Trucks[0].ID.IsEqual(mustEntityID(t, 1)))
	assert.True(t, page.Trucks[1].ID.IsEqual(mustEntityID(t, 2)))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestGetTrucksQueryHandler_Handle_EmptyPage(t *testing.T) {
	// Arrange
	ctx := t.Context()
	query, err := queries.NewGetTrucksQuery(5, 100)
	require.NoError(t, err)

	mockRepo := new(MockTruckRepository)
	mockUoW := new(MockTruckReadUoW)
	mockFactory := new(MockTruckReadUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TruckRepository").Return(mockRepo).Once(),
		mockRepo.On("GetList", ctx, 5, 100).Return([]*truck.Truck{}, false, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := queries.NewGetTrucksQueryHandler(mockFactory)

	// Act
	page, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.Trucks)
	assert.NotNil(t, page.Trucks)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
