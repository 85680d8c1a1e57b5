package graphx_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvl-transit/transitway/graphx"
)

type GraphSuite struct {
	suite.Suite
	g *graphx.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = graphx.New(3)
}

func (s *GraphSuite) TestAddEdgeAssignsSequentialIDs() {
	require := require.New(s.T())
	e0 := s.g.AddEdge(graphx.Edge{From: 0, To: 1, Weight: 1})
	e1 := s.g.AddEdge(graphx.Edge{From: 0, To: 2, Weight: 2})

	require.Equal(graphx.EdgeID(0), e0)
	require.Equal(graphx.EdgeID(1), e1)
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestEdgesFromPreservesInsertionOrder() {
	require := require.New(s.T())
	first := s.g.AddEdge(graphx.Edge{From: 0, To: 1, Weight: 1})
	second := s.g.AddEdge(graphx.Edge{From: 0, To: 2, Weight: 2})

	require.Equal([]graphx.EdgeID{first, second}, s.g.EdgesFrom(0))
	require.Empty(s.g.EdgesFrom(1))
}

func (s *GraphSuite) TestVertexCount() {
	require := require.New(s.T())
	require.Equal(3, s.g.VertexCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
