package brdgraph

import (
	"github.com/cadenceboard/brdreader/internal/brdmodel"
	"github.com/cadenceboard/brdreader/internal/brdparse"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// buildZone implements spec.md §4.4.d for a single T28 shape. The bool
// return reports whether the shape should be emitted at all (a
// BOARD_GEOMETRY shape whose ordinal is not the board edge, or any
// family other than copper, board geometry and silk, is discarded
// silently; every silk shape is emitted, unknown silk ordinals landing
// on LayerUser3).
func buildZone(idx *brdparse.Index, s brdtypes.Shape, copperLayerCount int) (brdmodel.PolygonShape, string, bool) {
	outline, _, _ := shapeStartingAt(idx, s.OutlineHead)

	switch s.Family {
	case brdtypes.ZoneFamilyCopper:
		net := idx.String(netNameRef(idx, s.Net))
		zone := brdmodel.PolygonShape{
			Layer:   etchLayer(s.Ordinal, copperLayerCount),
			Net:     net,
			Filled:  true,
			Outline: outline,
			Cutouts: collectCutouts(idx, s.CutoutHead),
		}
		return zone, net, true

	case brdtypes.ZoneFamilyBoardGeometry:
		if s.Ordinal != brdtypes.BoardEdgeOrdinal {
			return brdmodel.PolygonShape{}, "", false
		}
		return brdmodel.PolygonShape{
			Layer:   LayerBoardEdge,
			Filled:  false,
			Outline: outline,
		}, "", true

	case brdtypes.ZoneFamilySilk:
		return brdmodel.PolygonShape{
			Layer:   silkLayer(s.Ordinal),
			Filled:  true,
			Outline: outline,
		}, "", true

	default:
		return brdmodel.PolygonShape{}, "", false
	}
}

// netNameRef resolves a net record's name-string key given the net
// record's own key; s.Net on a Shape is a direct net reference (T1B key)
// per spec.md §3, not a name-string key, so it must be dereferenced
// through the Net record first.
func netNameRef(idx *brdparse.Index, netKey brdtypes.Key) brdtypes.Key {
	rec, ok := idx.Records[netKey]
	if !ok {
		return brdtypes.NilKey
	}
	n, ok := rec.(brdtypes.Net)
	if !ok {
		return brdtypes.NilKey
	}
	return n.NameRef
}

// collectCutouts walks a T34 cutout chain, keeping only holes with at
// least 3 points, per spec.md §4.4.d.
func collectCutouts(idx *brdparse.Index, head brdtypes.Key) [][]brdmodel.Point {
	var cutouts [][]brdmodel.Point
	key := head
	for key != brdtypes.NilKey {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		c, ok := rec.(brdtypes.Cutout)
		if !ok {
			break
		}
		points, _, _ := shapeStartingAt(idx, c.OutlineHead)
		if len(points) >= 3 {
			cutouts = append(cutouts, points)
		}
		key = c.Next
	}
	return cutouts
}
