package brdtypes

// Net is a T1B record: one ring entry in the header's net list, naming a
// net and heading its chain of T04 assignments.
type Net struct {
	Key        Key
	NameRef    Key // string key
	Next       Key // next T1B in the header's net ring
	AssignHead Key // head of this net's T04 assignment ring
}

// NetSize is the fixed on-disk size of a T1B record.
const NetSize = RecordPrefixSize + 4 + 4 + 4

// DecodeNet decodes a T1B record starting at data[0].
func DecodeNet(data []byte) Net {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	n := Net{Key: p.Key}
	n.NameRef = readKey(data, off)
	off += 4
	n.Next = readKey(data, off)
	off += 4
	n.AssignHead = readKey(data, off)
	return n
}

// NetAssignment is a T04 record: one ring entry tying a net to a piece
// of geometry (via, pad, shape, track, or a generic link record).
type NetAssignment struct {
	Key      Key
	NetRef   Key
	Geometry Key // ptr2: head of the geometry chain this assignment reaches
	Next     Key // next T04 in the net's assignment ring
}

// NetAssignmentSize is the fixed on-disk size of a T04 record.
const NetAssignmentSize = RecordPrefixSize + 4 + 4 + 4

// DecodeNetAssignment decodes a T04 record starting at data[0].
func DecodeNetAssignment(data []byte) NetAssignment {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	a := NetAssignment{Key: p.Key}
	a.NetRef = readKey(data, off)
	off += 4
	a.Geometry = readKey(data, off)
	off += 4
	a.Next = readKey(data, off)
	return a
}

// Track is a T05 record: a net/layer-tagged head into a segment/arc
// chain (spec.md §4.4.b materialises the chain into a polyline).
type Track struct {
	Key   Key
	Layer byte
	Net   Key
	Head  Key // head of the T01/T15/T16/T17 chain
	Next  Key // next record reachable from a net's geometry chain
}

// TrackSize is the fixed on-disk size of a T05 record.
const TrackSize = RecordPrefixSize + 1 + 3 + 4 + 4 + 4

// DecodeTrack decodes a T05 record starting at data[0].
func DecodeTrack(data []byte) Track {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	t := Track{Key: p.Key}
	t.Layer = data[off]
	off += 4 // layer byte + 3 bytes padding
	t.Net = readKey(data, off)
	off += 4
	t.Head = readKey(data, off)
	off += 4
	t.Next = readKey(data, off)
	return t
}

// Via is a T33 record: a plated hole tying a net to a position on a
// layer.
type Via struct {
	Key   Key
	Layer byte
	Net   Key
	X     int32
	Y     int32
	Next  Key
}

// ViaSize is the fixed on-disk size of a T33 record.
const ViaSize = RecordPrefixSize + 1 + 3 + 4 + 4 + 4 + 4

// DecodeVia decodes a T33 record starting at data[0].
func DecodeVia(data []byte) Via {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	v := Via{Key: p.Key}
	v.Layer = data[off]
	off += 4
	v.Net = readKey(data, off)
	off += 4
	v.X = readI32(data, off)
	off += 4
	v.Y = readI32(data, off)
	off += 4
	v.Next = readKey(data, off)
	return v
}

// GroupLink is a generic T0E/T2E record: a pass-through node in a
// geometry or placement chain. It is traversed but never itself
// emitted, per spec.md §4.4 step 3.
type GroupLink struct {
	Key  Key
	Ptr  Key
	Next Key
}

// GroupLinkSize is the fixed on-disk size of a T0E/T2E record.
const GroupLinkSize = RecordPrefixSize + 4 + 4

// DecodeGroupLink decodes a T0E/T2E record starting at data[0].
func DecodeGroupLink(data []byte) GroupLink {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	g := GroupLink{Key: p.Key}
	g.Ptr = readKey(data, off)
	off += 4
	g.Next = readKey(data, off)
	return g
}
