package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvl-transit/transitway/catalogue"
)

type CatalogueSuite struct {
	suite.Suite
	c *catalogue.Catalogue
}

func (s *CatalogueSuite) SetupTest() {
	s.c = catalogue.New()
}

// Scenario 1 (spec §8): two stops, roundtrip bus, BusStat derivation.
func (s *CatalogueSuite) TestRoundtripBusStat() {
	require := require.New(s.T())

	a := s.c.AddStop("A", 55.611087, 37.208290)
	b := s.c.AddStop("B", 55.595884, 37.209755)
	s.c.SetDistance(a, b, 3900)
	s.c.SetDistance(b, a, 3900)

	busID, err := s.c.AddBus("256", []catalogue.StopID{a, b, a}, true)
	require.NoError(err)

	bus := s.c.Bus(busID)
	require.Equal(3, bus.Stat.StopCount)
	require.Equal(2, bus.Stat.UniqueStops)
	require.InDelta(7800.0, bus.Stat.RoadLength, 1e-9)
	require.Greater(bus.Stat.Curvature, 1.0)
}

// Scenario 4 (spec §8): non-roundtrip expansion.
func (s *CatalogueSuite) TestNonRoundtripExpansion() {
	require := require.New(s.T())

	tolstopaltsevo := s.c.AddStop("Tolstopaltsevo", 55.611087, 37.208290)
	marushkino := s.c.AddStop("Marushkino", 55.595884, 37.209755)
	rasskazovka := s.c.AddStop("Rasskazovka", 55.632761, 37.333324)

	for _, pair := range [][2]catalogue.StopID{{tolstopaltsevo, marushkino}, {marushkino, rasskazovka}} {
		s.c.SetDistance(pair[0], pair[1], 2000)
		s.c.SetDistance(pair[1], pair[0], 2000)
	}

	busID, err := s.c.AddBus("750", []catalogue.StopID{tolstopaltsevo, marushkino, rasskazovka}, false)
	require.NoError(err)

	bus := s.c.Bus(busID)
	require.Equal(5, bus.Stat.StopCount)
	require.Equal(3, bus.Stat.UniqueStops)
	require.Equal(rasskazovka, bus.Terminal)
}

func (s *CatalogueSuite) TestDistanceFallback() {
	require := require.New(s.T())
	a := s.c.AddStop("A", 0, 0)
	b := s.c.AddStop("B", 0, 1)
	s.c.SetDistance(a, b, 500)

	d, err := s.c.GetDistance(b, a)
	require.NoError(err)
	require.Equal(500.0, d)
}

func (s *CatalogueSuite) TestUnknownDistanceIsFatalForAddBus() {
	require := require.New(s.T())
	a := s.c.AddStop("A", 0, 0)
	b := s.c.AddStop("B", 0, 1)

	_, err := s.c.AddBus("X", []catalogue.StopID{a, b}, true)
	require.ErrorIs(err, catalogue.ErrUnknownDistance)
}

func (s *CatalogueSuite) TestBusesForStopSortedAndEmptyForUnservedStop() {
	require := require.New(s.T())
	a := s.c.AddStop("A", 0, 0)
	b := s.c.AddStop("B", 0, 1)
	c := s.c.AddStop("C", 0, 2)
	s.c.SetDistance(a, b, 100)
	s.c.SetDistance(b, a, 100)

	_, err := s.c.AddBus("Zeta", []catalogue.StopID{a, b, a}, true)
	require.NoError(err)
	_, err = s.c.AddBus("Alpha", []catalogue.StopID{a, b, a}, true)
	require.NoError(err)

	buses, err := s.c.BusesForStop("A")
	require.NoError(err)
	require.Equal([]string{"Alpha", "Zeta"}, buses)

	empty, err := s.c.BusesForStop("C")
	require.NoError(err)
	require.Empty(empty)
	_ = c
}

func (s *CatalogueSuite) TestFindStopAndBusNotFound() {
	require := require.New(s.T())
	_, err := s.c.FindStop("nope")
	require.ErrorIs(err, catalogue.ErrStopNotFound)

	_, err = s.c.FindBus("nope")
	require.ErrorIs(err, catalogue.ErrBusNotFound)
}

func TestCatalogueSuite(t *testing.T) {
	suite.Run(t, new(CatalogueSuite))
}
