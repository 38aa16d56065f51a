package bencode

import (
	"bytes"
	"iter"
	"slices"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	// KindInt is a 64-bit signed integer. It is the zero Kind, so the zero
	// Value is Int(0) and every Value is encodable.
	KindInt Kind = iota
	KindStr
	KindList
	KindDict
)

// Value is a bencode tree node: an integer, a byte string, a list, or a
// dictionary. Values are immutable after construction; build a new tree
// instead of mutating in place.
type Value struct {
	kind Kind
	num  int64
	str  Str
	list List
	dict *Dict
}

// Str is a byte string that is either a borrowed view into an external
// buffer or an independently owned copy. Ownership is a performance detail:
// equality, ordering, and lookup all operate on content only.
type Str struct {
	b     []byte
	owned bool
}

// List is an insertion-ordered sequence of Values.
type List []Value

// Dict maps byte-string keys to Values. Entries are kept in ascending
// byte-lexicographic key order at all times; the sort order is an invariant
// of the container, not something the encoder recomputes.
type Dict struct {
	entries []dictEntry
}

type dictEntry struct {
	key Str
	val Value
}

// BorrowedStr wraps b as a borrowed view. The caller must keep b alive and
// unmodified for as long as the Str (or any tree containing it) is in use.
func BorrowedStr(b []byte) Str {
	return Str{b: b}
}

// OwnedStr copies b into freshly allocated owned storage.
func OwnedStr(b []byte) Str {
	return Str{b: bytes.Clone(b), owned: true}
}

// Bytes returns the string contents. The returned slice must not be
// modified.
func (s Str) Bytes() []byte { return s.b }

// Len returns the content length in bytes.
func (s Str) Len() int { return len(s.b) }

// IsOwned reports whether the contents live in storage owned by this Str
// rather than borrowed from an external buffer.
func (s Str) IsOwned() bool { return s.owned }

// Equal reports content equality, ignoring ownership mode.
func (s Str) Equal(o Str) bool { return bytes.Equal(s.b, o.b) }

// Compare orders by content bytes, ignoring ownership mode.
func (s Str) Compare(o Str) int { return bytes.Compare(s.b, o.b) }

// Detach returns a Str with no tie to any external buffer. Owned strings
// are returned unchanged; borrowed views are copied.
func (s Str) Detach() Str {
	if s.owned {
		return s
	}
	return OwnedStr(s.b)
}

// Int returns an integer Value.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Bytes returns a string Value borrowing b. See BorrowedStr for the
// lifetime contract.
func Bytes(b []byte) Value {
	return StrValue(BorrowedStr(b))
}

// Text returns an owned string Value holding the bytes of s.
func Text(s string) Value {
	return StrValue(Str{b: []byte(s), owned: true})
}

// StrValue wraps a Str as a Value.
func StrValue(s Str) Value {
	return Value{kind: KindStr, str: s}
}

// ListValue wraps items as a list Value. The slice is taken over, not
// copied.
func ListValue(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// DictValue wraps d as a dictionary Value. A nil d is an empty dictionary.
func DictValue(d *Dict) Value {
	if d == nil {
		d = NewDict()
	}
	return Value{kind: KindDict, dict: d}
}

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Equal reports deep content equality. Ownership mode of byte strings is
// ignored; dictionaries compare entry-by-entry in their (shared) canonical
// order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.num == o.num
	case KindStr:
		return v.str.Equal(o.str)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindDict:
		a, b := v.dict.entries, o.dict.entries
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].key.Equal(b[i].key) || !a[i].val.Equal(b[i].val) {
				return false
			}
		}
		return true
	}
	return false
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{}
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Insert adds key → val, keeping entries sorted by key bytes. It returns
// false without modifying the dictionary when an entry with identical key
// bytes already exists; duplicates are a hard failure, never a silent
// overwrite.
func (d *Dict) Insert(key Str, val Value) bool {
	i, found := slices.BinarySearchFunc(d.entries, key, func(e dictEntry, k Str) int {
		return e.key.Compare(k)
	})
	if found {
		return false
	}
	d.entries = slices.Insert(d.entries, i, dictEntry{key: key, val: val})
	return true
}

// Lookup returns the value stored under the given key bytes, or nil when
// absent.
func (d *Dict) Lookup(key []byte) *Value {
	if d == nil {
		return nil
	}
	i, found := slices.BinarySearchFunc(d.entries, key, func(e dictEntry, k []byte) int {
		return bytes.Compare(e.key.b, k)
	})
	if !found {
		return nil
	}
	return &d.entries[i].val
}

// All iterates entries in ascending byte-lexicographic key order. The
// yielded key bytes and value pointer must not be modified.
func (d *Dict) All() iter.Seq2[[]byte, *Value] {
	return func(yield func([]byte, *Value) bool) {
		if d == nil {
			return
		}
		for i := range d.entries {
			if !yield(d.entries[i].key.b, &d.entries[i].val) {
				return
			}
		}
	}
}
