package brdgraph

import (
	"fmt"
	"log"

	"github.com/cadenceboard/brdreader/internal/brdmodel"
	"github.com/cadenceboard/brdreader/internal/brdparse"
	"github.com/cadenceboard/brdreader/internal/brdtypes"
)

// nominalPadMil is the fixed size assigned to custom-polygon pads, per
// spec.md §4.4.a ("assign a nominal 1-mil size").
const nominalPadMil = 0.001

// resolveRefdes follows inst_ref → T07 → refdes_string_ref, defaulting
// to "A0" when the chain is absent or dangling (spec.md §4.4 step 6.b).
func resolveRefdes(idx *brdparse.Index, instRef brdtypes.Key) string {
	if instRef == brdtypes.NilKey {
		return "A0"
	}
	link, ok := idx.Records[instRef].(brdtypes.RefdesLink)
	if !ok {
		return "A0"
	}
	name := idx.String(link.RefdesStringRef)
	if name == "" {
		return "A0"
	}
	return name
}

// buildPad implements spec.md §4.4.a for one pad-stack component placed
// at a pad's raw (unscaled) position. An unrecognised shape tag falls
// back to a circle and logs a soft-anomaly warning (spec.md §7).
func buildPad(idx *brdparse.Index, comp brdtypes.PadStackComponent, kind string, rawX, rawY int32, logger *log.Logger) brdmodel.Pad {
	scale := idx.ScaleFactor
	p := brdmodel.Pad{Kind: kind}

	p.OffsetX = scale * float64(comp.OffsetX)
	p.OffsetY = -scale * float64(comp.OffsetY)
	p.X = scale*float64(rawX) + p.OffsetX
	p.Y = -scale*float64(rawY) + p.OffsetY

	switch {
	case brdtypes.IsRectangle(comp.Tag):
		p.Shape = brdmodel.PadShapeRectangle
		p.Width = scale * float64(comp.W)
		p.Height = scale * float64(comp.H)
	case brdtypes.IsRoundedRectangle(comp.Tag):
		p.Shape = brdmodel.PadShapeRoundedRect
		p.Width = scale * float64(comp.W)
		p.Height = scale * float64(comp.H)
	case comp.Tag == brdtypes.PadShapeCustomPolygon:
		p.Shape = brdmodel.PadShapeCustomPolygon
		p.Width = nominalPadMil
		p.Height = nominalPadMil
		if shapeRec, ok := idx.Records[comp.StrPtr]; ok {
			if shape, ok := shapeRec.(brdtypes.Shape); ok {
				outline, _, _ := shapeStartingAt(idx, shape.OutlineHead)
				p.Outline = outline
			}
		}
	case comp.Tag == brdtypes.PadShapeCircle:
		p.Shape = brdmodel.PadShapeCircle
		p.Width = scale * float64(comp.W)
		p.Height = scale * float64(comp.H)
	default:
		logger.Printf("pad-stack component: unknown shape tag 0x%02X, treating as circle", comp.Tag)
		p.Shape = brdmodel.PadShapeCircle
		p.Width = scale * float64(comp.W)
		p.Height = scale * float64(comp.H)
	}
	return p
}

// collectPads walks a T32 chain, resolving each pad's backing T0D → T1C
// pad-stack and emitting its primary/mask/paste components, per spec.md
// §4.4 step 6.b.
func collectPads(idx *brdparse.Index, head brdtypes.Key, logger *log.Logger) []brdmodel.Pad {
	var pads []brdmodel.Pad
	primaryIdx := brdtypes.PrimaryComponentIndex(idx.Magic)
	maskIdx := brdtypes.MaskComponentIndex(idx.Magic)
	pasteIdx := brdtypes.PasteComponentIndex(idx.Magic)

	key := head
	for key != brdtypes.NilKey {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		pad, ok := rec.(brdtypes.PlacedPad)
		if !ok {
			break
		}

		if link, ok := idx.Records[pad.LinkRef].(brdtypes.PlacedPadLink); ok {
			if stack, ok := idx.Records[link.PadStackRef].(brdtypes.PadStack); ok {
				for _, kind := range []struct {
					name string
					idx  int
				}{
					{"primary", primaryIdx},
					{"mask", maskIdx},
					{"paste", pasteIdx},
				} {
					comp, ok := stack.ComponentAt(kind.idx)
					if ok && comp.Tag != 0 {
						pads = append(pads, buildPad(idx, comp, kind.name, pad.X, pad.Y, logger))
					}
				}
			}
		}

		key = pad.Next
	}
	return pads
}

// collectAnnotationChain is the per-footprint counterpart of
// walkAnnotationChain: it accumulates LineShapes instead of pushing them
// straight to the sink, since footprint annotations live on the
// Footprint entity rather than the board directly.
func collectAnnotationChain(idx *brdparse.Index, head brdtypes.Key, layer int) []brdmodel.LineShape {
	var shapes []brdmodel.LineShape
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
			shapes = append(shapes, brdmodel.LineShape{
				Layer: layer, Start: scalePoint(scale, v.StartX, v.StartY),
				End: scalePoint(scale, v.EndX, v.EndY), Center: &center, Arc: true,
			})
			key = v.Next
		case brdtypes.Segment:
			shapes = append(shapes, brdmodel.LineShape{
				Layer: layer, Start: scalePoint(scale, v.StartX, v.StartY),
				End: scalePoint(scale, v.EndX, v.EndY),
			})
			key = v.Next
		default:
			return shapes
		}
	}
	return shapes
}

// resolveText builds a Text entity from a T30 wrapper, resolving its
// T31 string graphic and, when possible, a size from its T36 font
// table. An unresolvable font leaves Size at its zero value, which the
// emitter treats as "use the default text size", and logs a soft-anomaly
// warning (spec.md §7).
func resolveText(idx *brdparse.Index, w brdtypes.TextWrapper, copperLayerCount int, logger *log.Logger) brdmodel.Text {
	scale := idx.ScaleFactor
	content := ""
	if g, ok := idx.Records[w.StringRef].(brdtypes.TextGraphic); ok {
		content = idx.String(g.StringRef)
	}
	size := 0.0
	if ft, ok := idx.FontTables[w.FontRef]; ok && len(ft.Glyphs) > 0 {
		size = scale * float64(ft.Glyphs[0].Height)
	} else {
		logger.Printf("text wrapper %d: unresolvable font %d, using default text size", w.Key, w.FontRef)
	}
	return brdmodel.Text{
		Layer:    etchLayer(w.Layer, copperLayerCount),
		Content:  content,
		X:        scale * float64(w.X),
		Y:        -scale * float64(w.Y),
		Rotation: float64(w.Rotation) / 1000.0,
		Mirror:   w.Mirror,
		Size:     size,
	}
}

// collectTextChain walks a pure T30 chain (a footprint's text list
// carries no T03 markers, unlike the board-level free-text list).
func collectTextChain(idx *brdparse.Index, head brdtypes.Key, copperLayerCount int, logger *log.Logger) []brdmodel.Text {
	var texts []brdmodel.Text
	key := head
	for key != brdtypes.NilKey {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		w, ok := rec.(brdtypes.TextWrapper)
		if !ok {
			break
		}
		texts = append(texts, resolveText(idx, w, copperLayerCount, logger))
		key = w.Next
	}
	return texts
}

// walkZoneChain walks a chain that interleaves T0E pass-through links
// with T28 zone shapes, per spec.md §4.4 step 4 and step 6.b's ptr4[1].
// tail may be brdtypes.NilKey when the chain has no header-level tail
// sentinel (a footprint's own zone chain).
func walkZoneChain(idx *brdparse.Index, head, tail brdtypes.Key, copperLayerCount int) []brdmodel.PolygonShape {
	var zones []brdmodel.PolygonShape
	key := head
	for key != brdtypes.NilKey && key != tail {
		rec, ok := idx.Records[key]
		if !ok {
			break
		}
		switch v := rec.(type) {
		case brdtypes.GroupLink:
			key = v.Next
		case brdtypes.Shape:
			if zone, _, ok := buildZone(idx, v, copperLayerCount); ok {
				zones = append(zones, zone)
			}
			key = v.Next
		default:
			return zones
		}
	}
	return zones
}

// buildFootprintPlacement implements spec.md §4.4 step 6.b for one T2D
// placement belonging to footprint fp.
func buildFootprintPlacement(idx *brdparse.Index, fp brdtypes.Footprint, pl brdtypes.Placement, copperLayerCount int, logger *log.Logger) brdmodel.Footprint {
	scale := idx.ScaleFactor

	layer := 0
	if pl.Layer != 0 && copperLayerCount > 0 {
		layer = copperLayerCount - 1
	}

	out := brdmodel.Footprint{
		Name:        idx.String(fp.NameRef),
		Refdes:      resolveRefdes(idx, pl.InstRef),
		X:           scale * float64(pl.X),
		Y:           -scale * float64(pl.Y),
		Orientation: pl.Orientation(),
		Layer:       layer,
		AllegroID:   fmt.Sprintf("%X", uint32(pl.Key)),
	}

	out.Pads = collectPads(idx, pl.FirstPadPtr, logger)
	out.Annotations = collectAnnotationChain(idx, pl.AnnotHead, layer)
	out.Text = collectTextChain(idx, pl.TextHead, copperLayerCount, logger)
	out.Zones = walkZoneChain(idx, pl.ZoneHead, brdtypes.NilKey, copperLayerCount)
	return out
}
