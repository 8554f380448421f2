package brdmodel

// Board is the reference in-memory Sink: every entity emitted by
// GraphBuilder lands in a typed slice here, append-only, in emission
// order.
type Board struct {
	CopperLayerCount int      `json:"copper_layer_count"`
	LayerNames       []string `json:"layer_names"`

	Tracks     []Track        `json:"tracks,omitempty"`
	Arcs       []Arc          `json:"arcs,omitempty"`
	Vias       []Via          `json:"vias,omitempty"`
	Zones      []PolygonShape `json:"zones,omitempty"`
	Shapes     []PolygonShape `json:"shapes,omitempty"`
	LineShapes []LineShape    `json:"line_shapes,omitempty"`
	Texts      []Text         `json:"texts,omitempty"`
	Footprints []Footprint    `json:"footprints,omitempty"`

	nets     []string
	netIndex map[string]NetHandle
}

// NewBoard returns an empty Board ready to receive entities.
func NewBoard() *Board {
	return &Board{netIndex: make(map[string]NetHandle)}
}

var _ Sink = (*Board)(nil)

func (b *Board) SetCopperLayerCount(n int) {
	b.CopperLayerCount = n
}

func (b *Board) SetLayerName(layerID int, name string) {
	for len(b.LayerNames) <= layerID {
		b.LayerNames = append(b.LayerNames, "")
	}
	b.LayerNames[layerID] = name
}

func (b *Board) AddTrack(t Track)         { b.Tracks = append(b.Tracks, t) }
func (b *Board) AddArc(a Arc)             { b.Arcs = append(b.Arcs, a) }
func (b *Board) AddVia(v Via)             { b.Vias = append(b.Vias, v) }
func (b *Board) AddZone(z PolygonShape)   { b.Zones = append(b.Zones, z) }
func (b *Board) AddShape(s PolygonShape)  { b.Shapes = append(b.Shapes, s) }
func (b *Board) AddLineShape(l LineShape) { b.LineShapes = append(b.LineShapes, l) }
func (b *Board) AddText(t Text)           { b.Texts = append(b.Texts, t) }

func (b *Board) AddFootprint(f Footprint) FootprintHandle {
	b.Footprints = append(b.Footprints, f)
	return FootprintHandle(len(b.Footprints) - 1)
}

func (b *Board) AddPad(fp FootprintHandle, p Pad) {
	if int(fp) < 0 || int(fp) >= len(b.Footprints) {
		return
	}
	b.Footprints[fp].Pads = append(b.Footprints[fp].Pads, p)
}

func (b *Board) FindNet(name string) (NetHandle, bool) {
	h, ok := b.netIndex[name]
	return h, ok
}

func (b *Board) NewNet(name string) NetHandle {
	if h, ok := b.netIndex[name]; ok {
		return h
	}
	b.nets = append(b.nets, name)
	h := NetHandle(len(b.nets) - 1)
	b.netIndex[name] = h
	return h
}

func (b *Board) NetCount() int {
	return len(b.nets)
}
