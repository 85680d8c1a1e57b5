package routepath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvl-transit/transitway/graphx"
	"github.com/lvl-transit/transitway/routepath"
)

type FloydSuite struct {
	suite.Suite
}

func (s *FloydSuite) TestChainReconstruction() {
	require := require.New(s.T())

	g := graphx.New(4)
	e0 := g.AddEdge(graphx.Edge{From: 0, To: 1, Weight: 1})
	e1 := g.AddEdge(graphx.Edge{From: 1, To: 2, Weight: 1})
	e2 := g.AddEdge(graphx.Edge{From: 2, To: 3, Weight: 1})

	table, err := routepath.Precompute(g)
	require.NoError(err)

	route, ok := table.BuildRoute(0, 3)
	require.True(ok)
	require.InDelta(3.0, route.Weight, 1e-9)
	require.Equal([]graphx.EdgeID{e0, e1, e2}, route.Edges)
}

func (s *FloydSuite) TestUnreachableReturnsFalse() {
	require := require.New(s.T())
	g := graphx.New(2)
	table, err := routepath.Precompute(g)
	require.NoError(err)

	_, ok := table.BuildRoute(0, 1)
	require.False(ok)
}

func (s *FloydSuite) TestShortestOverLonger() {
	require := require.New(s.T())
	g := graphx.New(3)
	direct := g.AddEdge(graphx.Edge{From: 0, To: 2, Weight: 5})
	g.AddEdge(graphx.Edge{From: 0, To: 1, Weight: 10})
	g.AddEdge(graphx.Edge{From: 1, To: 2, Weight: 10})

	table, err := routepath.Precompute(g)
	require.NoError(err)

	route, ok := table.BuildRoute(0, 2)
	require.True(ok)
	require.InDelta(5.0, route.Weight, 1e-9)
	require.Equal([]graphx.EdgeID{direct}, route.Edges)
}

func (s *FloydSuite) TestTieBreakPrefersEarlierEdge() {
	require := require.New(s.T())
	g := graphx.New(2)
	first := g.AddEdge(graphx.Edge{From: 0, To: 1, Weight: 5})
	g.AddEdge(graphx.Edge{From: 0, To: 1, Weight: 5})

	table, err := routepath.Precompute(g)
	require.NoError(err)

	route, ok := table.BuildRoute(0, 1)
	require.True(ok)
	require.Equal([]graphx.EdgeID{first}, route.Edges)
}

func (s *FloydSuite) TestNegativeWeightErrors() {
	require := require.New(s.T())
	g := graphx.New(2)
	g.AddEdge(graphx.Edge{From: 0, To: 1, Weight: -1})

	_, err := routepath.Precompute(g)
	require.ErrorIs(err, routepath.ErrNegativeWeight)
}

func TestFloydSuite(t *testing.T) {
	suite.Run(t, new(FloydSuite))
}
