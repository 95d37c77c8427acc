//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"villabook/internal/infra"
	"villabook/internal/pkg/clock"
	"villabook/internal/usecase/queries"
	"villabook/tests/common/builder"
	queriesmock "villabook/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockRoomReadStore
	clock     *clock.MockClock
	queries   queries.RoomQueries
}

func (s *RoomQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockRoomReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewRoomQueries(s.mockStore, s.clock)
}

func (s *RoomQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomQueriesSuite(t *testing.T) {
	suite.Run(t, new(RoomQueriesTestSuite))
}

func (s *RoomQueriesTestSuite) TestSearch() {
	s.Run("returns store results", func() {
		want := []*queries.RoomView{builder.NewRoomBuilder().BuildView()}
		s.mockStore.EXPECT().
			Search(gomock.Any(), queries.RoomSearchFilters{}).
			Return(want, nil)

		got, err := s.queries.Search(context.Background(), queries.RoomSearchFilters{})

		s.NoError(err)
		s.Equal(want, got)
	})

	s.Run("normalizes nil result to empty slice", func() {
		s.mockStore.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		got, err := s.queries.Search(context.Background(), queries.RoomSearchFilters{})

		s.NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("serves demo rooms when rooms table is not provisioned", func() {
		storeErr := infra.WrapRepoErr("select rooms", errors.New("relation does not exist"), infra.KindNotProvisioned)
		s.mockStore.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(nil, storeErr)

		got, err := s.queries.Search(context.Background(), queries.RoomSearchFilters{})

		s.NoError(err)
		s.Equal(queries.DemoRooms(s.clock.Now()), got)
		s.Len(got, 3)
	})

	s.Run("degrades to empty slice on other store failures", func() {
		storeErr := infra.WrapRepoErr("select rooms", errors.New("connection refused"), infra.KindDBFailure)
		s.mockStore.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(nil, storeErr)

		got, err := s.queries.Search(context.Background(), queries.RoomSearchFilters{})

		s.NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})
}

func (s *RoomQueriesTestSuite) TestFeatured() {
	s.Run("requests the featured limit ordered by price", func() {
		want := []*queries.RoomView{builder.NewRoomBuilder().WithPrice(60).BuildView()}
		s.mockStore.EXPECT().
			Featured(gomock.Any(), int32(queries.FeaturedLimit)).
			Return(want, nil)

		got, err := s.queries.Featured(context.Background())

		s.NoError(err)
		s.Equal(want, got)
	})

	s.Run("serves demo rooms when rooms table is not provisioned", func() {
		storeErr := infra.WrapRepoErr("select featured rooms", errors.New("relation does not exist"), infra.KindNotProvisioned)
		s.mockStore.EXPECT().
			Featured(gomock.Any(), gomock.Any()).
			Return(nil, storeErr)

		got, err := s.queries.Featured(context.Background())

		s.NoError(err)
		s.Equal(queries.DemoRooms(s.clock.Now()), got)
	})

	s.Run("degrades to empty slice on other store failures", func() {
		storeErr := infra.WrapRepoErr("select featured rooms", errors.New("timeout"), infra.KindDBFailure)
		s.mockStore.EXPECT().
			Featured(gomock.Any(), gomock.Any()).
			Return(nil, storeErr)

		got, err := s.queries.Featured(context.Background())

		s.NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})
}
