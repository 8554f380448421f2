package brdmodel

// NetHandle identifies a net registered with a Sink. Board hands them
// out from 0 in registration order, so the zero value names the first
// registered net.
type NetHandle int

// FootprintHandle identifies a footprint placement registered with a
// Sink, so a caller can attach pads to it (AddPad) after AddFootprint
// returns.
type FootprintHandle int

// Sink is the board-model contract GraphBuilder targets (spec.md §6).
// Every method is a write except FindNet and NetCount; the reader uses
// FindNet to avoid registering a net twice.
type Sink interface {
	SetCopperLayerCount(n int)
	SetLayerName(layerID int, name string)

	AddTrack(t Track)
	AddArc(a Arc)
	AddVia(v Via)
	AddZone(z PolygonShape)
	AddShape(s PolygonShape)
	AddLineShape(l LineShape)
	AddText(t Text)
	AddFootprint(f Footprint) FootprintHandle
	AddPad(fp FootprintHandle, p Pad)

	FindNet(name string) (NetHandle, bool)
	NewNet(name string) NetHandle
	NetCount() int
}
