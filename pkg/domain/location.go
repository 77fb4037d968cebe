package domain

import (
	"strconv"
	"strings"
)

// Segment is one step of a Location: either a property name or an array index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a Segment addressing an object property.
func Key(name string) Segment {
	return Segment{key: name}
}

// Index returns a Segment addressing an array element.
func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

// IsIndex reports whether the segment addresses an array element.
func (s Segment) IsIndex() bool { return s.isIndex }

// Key returns the property name. It is empty for index segments.
func (s Segment) Key() string { return s.key }

// Index returns the array index. It is zero for key segments.
func (s Segment) Index() int { return s.index }

// Value returns the segment as a plain string or int.
func (s Segment) Value() any {
	if s.isIndex {
		return s.index
	}
	return s.key
}

func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Location is the path from the root value to the value a failure refers to,
// listed outer to inner.
type Location []Segment

// Prepend returns a new Location with seg in front of l.
// The receiver is never modified.
func (l Location) Prepend(seg Segment) Location {
	out := make(Location, 0, len(l)+1)
	out = append(out, seg)
	return append(out, l...)
}

// Values returns the location as a slice of strings and ints.
func (l Location) Values() []any {
	out := make([]any, len(l))
	for i, seg := range l {
		out[i] = seg.Value()
	}
	return out
}

// String renders the location as a dotted path with bracketed indices,
// e.g. "items[1].name". The root location renders as the empty string.
func (l Location) String() string {
	var b strings.Builder
	for i, seg := range l {
		if seg.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.key)
	}
	return b.String()
}
