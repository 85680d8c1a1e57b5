package transit_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvl-transit/transitway/catalogue"
	"github.com/lvl-transit/transitway/transit"
)

type RouterSuite struct {
	suite.Suite
}

func (s *RouterSuite) buildTwoStopRoundtrip() *transit.Router {
	cat := catalogue.New()
	a := cat.AddStop("Biryulyovo Zapadnoye", 55.611087, 37.208290)
	b := cat.AddStop("Biryusinka", 55.595884, 37.209755)
	cat.SetDistance(a, b, 3900)
	cat.SetDistance(b, a, 3900)

	_, err := cat.AddBus("256", []catalogue.StopID{a, b, a}, true)
	s.Require().NoError(err)

	r := transit.New(cat)
	s.Require().NoError(r.Init(transit.Settings{BusVelocityKMH: 40, BusWaitTimeMin: 6}))
	return r
}

// Scenario 1 (spec §8): ride from A to B, one wait and one ride leg.
func (s *RouterSuite) TestSimpleRoute() {
	require := require.New(s.T())
	r := s.buildTwoStopRoundtrip()

	result, err := r.Route("Biryulyovo Zapadnoye", "Biryusinka")
	require.NoError(err)
	require.NotNil(result)
	require.Len(result.Items, 2)

	wait, ok := result.Items[0].(transit.WaitStep)
	require.True(ok)
	require.Equal("Biryulyovo Zapadnoye", wait.Stop)
	require.InDelta(6.0, wait.Time, 1e-9)

	ride, ok := result.Items[1].(transit.RideStep)
	require.True(ok)
	require.Equal("256", ride.Bus)
	require.Equal(1, ride.SpanCount)
	require.InDelta(5.85, ride.Time, 1e-6)

	require.InDelta(11.85, result.TotalMinutes, 1e-6)
}

// Scenario 2 (spec §8): a query from a stop to itself is free and
// immediate, bypassing the table entirely.
func (s *RouterSuite) TestSameStopIsFree() {
	require := require.New(s.T())
	r := s.buildTwoStopRoundtrip()

	result, err := r.Route("Biryusinka", "Biryusinka")
	require.NoError(err)
	require.Equal(0.0, result.TotalMinutes)
	require.Empty(result.Items)
}

// Scenario 3 (spec §8): an isolated stop served by no bus is
// unreachable, not an error.
func (s *RouterSuite) TestUnreachableStopReturnsNilResult() {
	require := require.New(s.T())
	cat := catalogue.New()
	a := cat.AddStop("A", 0, 0)
	b := cat.AddStop("B", 0, 1)
	c := cat.AddStop("C", 0, 2)
	cat.SetDistance(a, b, 100)
	cat.SetDistance(b, a, 100)
	_, err := cat.AddBus("1", []catalogue.StopID{a, b, a}, true)
	require.NoError(err)

	r := transit.New(cat)
	require.NoError(r.Init(transit.Settings{BusVelocityKMH: 40, BusWaitTimeMin: 6}))

	result, err := r.Route("A", "C")
	require.NoError(err)
	require.Nil(result)
}

func (s *RouterSuite) TestRouteBeforeInitReturnsNotInitialized() {
	require := require.New(s.T())
	cat := catalogue.New()
	r := transit.New(cat)

	_, err := r.Route("A", "B")
	require.ErrorIs(err, transit.ErrNotInitialized)
}

func (s *RouterSuite) TestDoubleInitReturnsAlreadyInitialized() {
	require := require.New(s.T())
	r := s.buildTwoStopRoundtrip()

	err := r.Init(transit.Settings{BusVelocityKMH: 40, BusWaitTimeMin: 6})
	require.ErrorIs(err, transit.ErrAlreadyInitialized)
}

func (s *RouterSuite) TestRouteUnknownStopWraps() {
	require := require.New(s.T())
	r := s.buildTwoStopRoundtrip()

	_, err := r.Route("Nowhere", "Biryusinka")
	require.ErrorIs(err, catalogue.ErrStopNotFound)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}
