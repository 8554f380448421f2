package brdgraph

import (
	"io"
	"log"

	"github.com/cadenceboard/brdreader/internal/brdmodel"
	"github.com/cadenceboard/brdreader/internal/brdparse"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// discardLogger is the default sink for soft-anomaly warnings when a
// caller passes no logger, per spec.md §7 ("warnings are logged, not
// surfaced").
var discardLogger = log.New(io.Discard, "", 0)

// Build runs the GraphBuilder's eight traversal steps over idx, in the
// order spec.md §4.4 fixes: layers, nets/geometry, free zones, free
// annotations, footprints, free text, free rectangles/zones. A nil
// logger discards soft-anomaly warnings (missing pad number, unresolved
// font, unknown pad-component shape tag).
func Build(idx *brdparse.Index, sink brdmodel.Sink, logger *log.Logger) {
	if logger == nil {
		logger = discardLogger
	}

	copperLayerCount := resolveLayers(idx, sink)

	walkNets(idx, sink, copperLayerCount)
	walkFreeZones(idx, sink, copperLayerCount)
	walkFreeAnnotations(idx, sink)
	walkFootprints(idx, sink, copperLayerCount, logger)
	walkFreeText(idx, sink, copperLayerCount, logger)
	walkFreeRectZones(idx, sink, copperLayerCount)
}

// walkNets implements spec.md §4.4 step 3: walk the T1B net ring, and
// for each net its T04 assignment ring, emitting the geometry each
// assignment reaches (a track, via, or zone) tagged with the net's
// name. Only the record an assignment's geometry pointer names is
// examined; records chained after it are not followed, and a GroupLink
// or PlacedPad found there emits nothing — a net's pads are emitted
// later, from the footprint walk.
func walkNets(idx *brdparse.Index, sink brdmodel.Sink, copperLayerCount int) {
	netKey := idx.Header.Nets.Head
	for netKey != brdtypes.NilKey && netKey != idx.Header.Nets.Tail {
		rec, ok := idx.Records[netKey]
		if !ok {
			break
		}
		net, ok := rec.(brdtypes.Net)
		if !ok {
			break
		}
		name := idx.String(net.NameRef)

		if _, ok := sink.FindNet(name); !ok && name != "" {
			sink.NewNet(name)
		}

		assignKey := net.AssignHead
		for assignKey != brdtypes.NilKey {
			arec, ok := idx.Records[assignKey]
			if !ok {
				break
			}
			assign, ok := arec.(brdtypes.NetAssignment)
			if !ok {
				break
			}
			emitNetGeometry(idx, sink, name, assign.Geometry, copperLayerCount)
			assignKey = assign.Next
		}

		netKey = net.Next
	}
}

// emitNetGeometry dispatches on the record a net assignment's geometry
// pointer resolves to: a track materialises into a polyline, a via
// emits directly, a zone routes through buildZone, and a pass-through
// node (group link or placed pad) is skipped since it carries no
// independent geometry of its own here.
func emitNetGeometry(idx *brdparse.Index, sink brdmodel.Sink, netName string, key brdtypes.Key, copperLayerCount int) {
	rec, ok := idx.Records[key]
	if !ok {
		return
	}
	switch v := rec.(type) {
	case brdtypes.Track:
		points, width, arcs := shapeStartingAt(idx, v.Head)
		sink.AddTrack(brdmodel.Track{
			Layer:  etchLayer(v.Layer, copperLayerCount),
			Net:    netName,
			Width:  width,
			Points: points,
		})
		for _, a := range arcs {
			a.Layer = etchLayer(v.Layer, copperLayerCount)
			sink.AddArc(a)
		}
	case brdtypes.Via:
		scale := idx.ScaleFactor
		sink.AddVia(brdmodel.Via{
			Layer: etchLayer(v.Layer, copperLayerCount),
			Net:   netName,
			X:     scale * float64(v.X),
			Y:     -scale * float64(v.Y),
		})
	case brdtypes.Shape:
		if zone, _, ok := buildZone(idx, v, copperLayerCount); ok {
			zone.Net = netName
			sink.AddZone(zone)
		}
	case brdtypes.GroupLink, brdtypes.PlacedPad:
		// pass-through: no independent geometry to emit here
	}
}

// walkFreeZones implements spec.md §4.4 step 4: zones not attached to
// any net.
func walkFreeZones(idx *brdparse.Index, sink brdmodel.Sink, copperLayerCount int) {
	zones := walkZoneChain(idx, idx.Header.FreeZones.Head, idx.Header.FreeZones.Tail, copperLayerCount)
	for _, z := range zones {
		sink.AddZone(z)
	}
}

// walkFreeAnnotations implements spec.md §4.4 step 5: the board-level
// T14 annotation list.
func walkFreeAnnotations(idx *brdparse.Index, sink brdmodel.Sink) {
	key := idx.Header.FreeAnnotations.Head
	for key != brdtypes.NilKey && key != idx.Header.FreeAnnotations.Tail {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		ann, ok := rec.(brdtypes.Annotation)
		if !ok {
			break
		}
		walkAnnotationChain(idx, ann.Head, int(ann.Layer), sink)
		key = ann.Next
	}
}

// walkFootprints implements spec.md §4.4 step 6: every library
// footprint's placement chain.
func walkFootprints(idx *brdparse.Index, sink brdmodel.Sink, copperLayerCount int, logger *log.Logger) {
	key := idx.Header.Footprints.Head
	for key != brdtypes.NilKey && key != idx.Header.Footprints.Tail {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		fp, ok := rec.(brdtypes.Footprint)
		if !ok {
			break
		}

		plKey := fp.PlacementHead
		for plKey != brdtypes.NilKey {
			prec, ok := idx.Records[plKey]
			if !ok {
				break
			}
			pl, ok := prec.(brdtypes.Placement)
			if !ok {
				break
			}
			sink.AddFootprint(buildFootprintPlacement(idx, fp, pl, copperLayerCount, logger))
			plKey = pl.Next
		}

		key = fp.Next
	}
}

// walkFreeText implements spec.md §4.4 step 7: the board-level free-text
// list, which interleaves T03 bookkeeping nodes (skipped) with T30 text
// wrappers (emitted).
func walkFreeText(idx *brdparse.Index, sink brdmodel.Sink, copperLayerCount int, logger *log.Logger) {
	key := idx.Header.FreeText.Head
	for key != brdtypes.NilKey && key != idx.Header.FreeText.Tail {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		switch v := rec.(type) {
		case brdtypes.FreeTextMarker:
			key = v.Next
		case brdtypes.TextWrapper:
			sink.AddText(resolveText(idx, v, copperLayerCount, logger))
			key = v.Next
		default:
			return
		}
	}
}

// walkFreeRectZones implements spec.md §4.4 step 8: the board-level list
// mixing T24 board-edge rectangles with T28 zones.
func walkFreeRectZones(idx *brdparse.Index, sink brdmodel.Sink, copperLayerCount int) {
	scale := idx.ScaleFactor
	key := idx.Header.FreeRectZones.Head
	for key != brdtypes.NilKey && key != idx.Header.FreeRectZones.Tail {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		switch v := rec.(type) {
		case brdtypes.Rectangle:
			sink.AddShape(brdmodel.PolygonShape{
				Layer:  LayerBoardEdge,
				Filled: false,
				Outline: []brdmodel.Point{
					scalePoint(scale, v.X0, v.Y0),
					scalePoint(scale, v.X1, v.Y0),
					scalePoint(scale, v.X1, v.Y1),
					scalePoint(scale, v.X0, v.Y1),
				},
			})
			key = v.Next
		case brdtypes.Shape:
			if zone, _, ok := buildZone(idx, v, copperLayerCount); ok {
				sink.AddShape(zone)
			}
			key = v.Next
		default:
			return
		}
	}
}
