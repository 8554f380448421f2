package brdtypes

// Annotation is a T14 record: a layer-tagged chain of segments/arcs
// rendered as individual linear shapes rather than a closed polyline
// (spec.md §4.4.c).
type Annotation struct {
	Key   Key
	Layer byte
	Head  Key // head of the T01/T15/T16/T17 chain
	Next  Key
}

// AnnotationSize is the fixed on-disk size of a T14 record.
const AnnotationSize = RecordPrefixSize + 4 + 4 + 4

// DecodeAnnotation decodes a T14 record starting at data[0].
func DecodeAnnotation(data []byte) Annotation {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	a := Annotation{Key: p.Key}
	a.Layer = data[off]
	off += 4
	a.Head = readKey(data, off)
	off += 4
	a.Next = readKey(data, off)
	return a
}

// FreeTextMarker is a T03 record: a bookkeeping node in the free-text
// list that is walked but never itself emitted (spec.md §4.4 step 7
// "skipping each T03").
type FreeTextMarker struct {
	Key     Key
	Subtype byte
	Next    Key
}

// FreeTextMarkerSize is the fixed on-disk size of a T03 record.
const FreeTextMarkerSize = RecordPrefixSize + 4 + 4

// DecodeFreeTextMarker decodes a T03 record starting at data[0].
func DecodeFreeTextMarker(data []byte) FreeTextMarker {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	m := FreeTextMarker{Key: p.Key}
	m.Subtype = data[off]
	off += 4
	m.Next = readKey(data, off)
	return m
}

// RecognizedFreeTextSubtype reports whether a T03 subtype byte is one of
// the two the source documents; any other value is an UnknownSubtype
// error at parse time.
func RecognizedFreeTextSubtype(subtype byte) bool {
	return subtype == 0x00 || subtype == 0x01
}

// VarRecord is the shared shape of T1E and T1F: a fixed head naming a
// byte length, followed by round_to_word(length) bytes of payload whose
// fields the source marks unknown (spec.md §9). Only the length needed
// to size and skip the record is modelled.
type VarRecord struct {
	Key    Key
	Length uint32
	Next   Key
}

// varRecordFixedSize is the fixed head of a T1E/T1F record.
const varRecordFixedSize = RecordPrefixSize + 4 + 4

// VarRecordSize computes a T1E/T1F record's total on-disk size.
func VarRecordSize(length uint32) int {
	return RoundToWord(varRecordFixedSize + int(length))
}

// DecodeVarRecord decodes a T1E/T1F record's fixed head starting at
// data[0]; it does not attempt to interpret the trailing payload.
func DecodeVarRecord(data []byte) VarRecord {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	v := VarRecord{Key: p.Key}
	v.Length = readU32(data, off)
	off += 4
	v.Next = readKey(data, off)
	return v
}

// MultiShapeSubCount is the number of discriminator slots a T21 record
// carries, per spec.md §4.3 ("multiple sub-shapes keyed by a
// discriminator field r"). The source never documents more than the
// discriminator's existence; this reader models it as a small fixed
// array of chain heads indexed by r.
const MultiShapeSubCount = 4

// MultiShape is a T21 record: a container of up to MultiShapeSubCount
// independent shape chains, selected at traversal time by r.
type MultiShape struct {
	Key       Key
	SubShapes [MultiShapeSubCount]Key
	Next      Key
}

// MultiShapeSize is the fixed on-disk size of a T21 record.
const MultiShapeSize = RecordPrefixSize + MultiShapeSubCount*4 + 4

// DecodeMultiShape decodes a T21 record starting at data[0].
func DecodeMultiShape(data []byte) MultiShape {
	p := DecodeRecordPrefix(data)
	off := RecordPrefixSize
	m := MultiShape{Key: p.Key}
	for i := 0; i < MultiShapeSubCount; i++ {
		m.SubShapes[i] = readKey(data, off)
		off += 4
	}
	m.Next = readKey(data, off)
	return m
}

// SubShapeAt returns the chain head stored at discriminator r, or false
// when r is out of range.
func (m MultiShape) SubShapeAt(r int) (Key, bool) {
	if r < 0 || r >= MultiShapeSubCount {
		return NilKey, false
	}
	return m.SubShapes[r], true
}
