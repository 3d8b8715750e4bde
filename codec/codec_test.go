// Package codec_test validates the wire contract: round-trip fidelity,
// order preservation, default-weight semantics, and tolerance of unknown
// fields.
package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphloom/digraph/codec"
	"github.com/graphloom/digraph/core"
	"github.com/graphloom/digraph/dfs"
)

func TestRoundTrip_PreservesGraphContent(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", core.WithWeight(2), core.WithData(core.Metadata{"kind": "rail"}))
	g.AddEdge("A", "C")
	g.AddEdge("A", "B") // parallel edge, shares the stored pair attributes
	g.AddNode("D")      // isolated node, no outgoing links

	rt := codec.Deserialize(codec.Serialize(g))

	assert.Equal(t, g.Nodes(), rt.Nodes())
	for _, id := range g.Nodes() {
		assert.Equal(t, g.Adjacent(id), rt.Adjacent(id), "adjacency of %s", id)
	}
	assert.Equal(t, 2.0, rt.GetEdgeWeight("A", "B"))
	assert.Equal(t, "rail", rt.GetEdgeData("A", "B")["kind"])
	assert.Equal(t, core.DefaultEdgeWeight, rt.GetEdgeWeight("A", "C"))
	assert.True(t, rt.HasNode("D"))
	assert.Empty(t, rt.Adjacent("D"))
}

func TestRoundTrip_PreservesTraversalResults(t *testing.T) {
	// Link replay order preserves adjacency order, so DFS and topological
	// sort agree before and after the trip.
	g := core.NewGraph()
	g.AddEdge("A", "C").AddEdge("A", "B").AddEdge("C", "D").AddEdge("B", "D")

	rt := codec.Deserialize(codec.Serialize(g))

	assert.Equal(t, dfs.DepthFirstSearch(g), dfs.DepthFirstSearch(rt))
	assert.Equal(t, dfs.TopologicalSort(g), dfs.TopologicalSort(rt))
}

func TestSerialize_LinkShape(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", core.WithWeight(3))

	doc := codec.Serialize(g)
	require.Len(t, doc.Nodes, 2)
	require.Len(t, doc.Links, 1)

	l := doc.Links[0]
	assert.Equal(t, "A", l.Source)
	assert.Equal(t, "B", l.Target)
	require.NotNil(t, l.Weight)
	assert.Equal(t, 3.0, *l.Weight)
}

func TestSerialize_ParallelEdgesShareAttributes(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", core.WithWeight(4)).AddEdge("A", "B")

	doc := codec.Serialize(g)
	require.Len(t, doc.Links, 2)
	for _, l := range doc.Links {
		require.NotNil(t, l.Weight)
		assert.Equal(t, 4.0, *l.Weight)
	}
}

func TestDecode_AbsentWeightDefaultsToOne(t *testing.T) {
	raw := `{
		"nodes": [{"id":"A"},{"id":"B"}],
		"links": [{"source":"A","target":"B"}]
	}`

	g, err := codec.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.GetEdgeWeight("A", "B"))
}

func TestDecode_AbsentWeightKeepsEarlierAssignment(t *testing.T) {
	// The default applies only if the pair was never otherwise set: a
	// later weightless link must not reset an earlier assignment.
	raw := `{
		"nodes": [{"id":"A"},{"id":"B"}],
		"links": [
			{"source":"A","target":"B","weight":9},
			{"source":"A","target":"B"}
		]
	}`

	g, err := codec.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 9.0, g.GetEdgeWeight("A", "B"))
	assert.Equal(t, []string{"B", "B"}, g.Adjacent("A"))
}

func TestDecode_ExplicitZeroWeightIsNotAbsent(t *testing.T) {
	raw := `{"nodes":[{"id":"A"},{"id":"B"}],"links":[{"source":"A","target":"B","weight":0}]}`

	g, err := codec.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.GetEdgeWeight("A", "B"))
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 7,
		"nodes": [{"id":"A","color":"red"},{"id":"B"}],
		"links": [{"source":"A","target":"B","weight":2,"directed":true}]
	}`

	g, err := codec.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, g.Nodes())
	assert.Equal(t, 2.0, g.GetEdgeWeight("A", "B"))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := codec.Decode(strings.NewReader("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codec: decode")
}

func TestEncodeDecode_Stream(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", core.WithWeight(2.5))

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, g))

	rt, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2.5, rt.GetEdgeWeight("A", "B"))
	assert.Equal(t, g.Nodes(), rt.Nodes())
}

func TestDeserialize_NilAndEmpty(t *testing.T) {
	assert.Empty(t, codec.Deserialize(nil).Nodes())
	assert.Empty(t, codec.Deserialize(&codec.Document{}).Nodes())
}
