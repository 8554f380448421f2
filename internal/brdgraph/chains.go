package brdgraph

import (
	"github.com/cadenceboard/brdreader/internal/brdmodel"
	"github.com/cadenceboard/brdreader/internal/brdparse"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// scalePoint applies the file's scale factor and negates Y, per
// spec.md §3: "Y coordinates are negated (file's +Y is screen-down;
// model's +Y is up)."
func scalePoint(scale float64, x, y int32) brdmodel.Point {
	return brdmodel.Point{X: scale * float64(x), Y: -scale * float64(y)}
}

// scalePointF is scalePoint for fields already decoded as float64, such
// as an Arc's CADENCE_FP center coordinates.
func scalePointF(scale, x, y float64) brdmodel.Point {
	return brdmodel.Point{X: scale * x, Y: -scale * y}
}

// shapeStartingAt implements spec.md §4.4.b: walk a T01/T15/T16/T17
// chain from head, seeding the polyline with the first record's start
// point and appending each subsequent endpoint. Arc elements are also
// returned individually so the caller can emit them as their own entity
// alongside the flattened polyline. The walk stops at an unexpected tag
// or a nil key, closing the chain.
func shapeStartingAt(idx *brdparse.Index, head brdtypes.Key) (points []brdmodel.Point, width float64, arcs []brdmodel.Arc) {
	scale := idx.ScaleFactor
	key := head
	seeded := false

	for key != brdtypes.NilKey {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		switch v := rec.(type) {
		case brdtypes.Arc:
			if !seeded {
				points = append(points, scalePoint(scale, v.StartX, v.StartY))
				width = scale * float64(v.Width)
				seeded = true
			}
			points = append(points, scalePoint(scale, v.EndX, v.EndY))
			arcs = append(arcs, brdmodel.Arc{
				Start:     scalePoint(scale, v.StartX, v.StartY),
				End:       scalePoint(scale, v.EndX, v.EndY),
				Center:    scalePointF(scale, v.CenterX, v.CenterY),
				Radius:    scale * v.Radius,
				Width:     scale * float64(v.Width),
				Clockwise: v.Clockwise,
			})
			key = v.Next
		case brdtypes.Segment:
			if !seeded {
				points = append(points, scalePoint(scale, v.StartX, v.StartY))
				width = scale * float64(v.Width)
				seeded = true
			}
			points = append(points, scalePoint(scale, v.EndX, v.EndY))
			key = v.Next
		default:
			return points, width, arcs
		}
	}
	return points, width, arcs
}

// walkAnnotationChain implements spec.md §4.4.c: identical traversal to
// shapeStartingAt, but every element is emitted as its own LineShape
// instead of being folded into a single polyline.
func walkAnnotationChain(idx *brdparse.Index, head brdtypes.Key, layer int, sink brdmodel.Sink) {
	scale := idx.ScaleFactor
	key := head
	for key != brdtypes.NilKey {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		switch v := rec.(type) {
		case brdtypes.Arc:
			center := scalePointF(scale, v.CenterX, v.CenterY)
			sink.AddLineShape(brdmodel.LineShape{
				Layer:  layer,
				Start:  scalePoint(scale, v.StartX, v.StartY),
				End:    scalePoint(scale, v.EndX, v.EndY),
				Center: &center,
				Arc:    true,
			})
			key = v.Next
		case brdtypes.Segment:
			sink.AddLineShape(brdmodel.LineShape{
				Layer: layer,
				Start: scalePoint(scale, v.StartX, v.StartY),
				End:   scalePoint(scale, v.EndX, v.EndY),
			})
			key = v.Next
		default:
			return
		}
	}
}
