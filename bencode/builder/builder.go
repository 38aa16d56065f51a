// Package builder provides literal-style construction of bencode trees.
//
// It is pure sugar over the bencode package's constructors, intended for
// tests and for assembling small messages by hand:
//
//	v, err := builder.Dict(
//		builder.Field("age", builder.Int(42)),
//		builder.Field("name", builder.Str("John")),
//		builder.Field("friends", builder.List(
//			builder.Str("Alice"),
//			builder.Str("Bob"),
//		)),
//	)
//
// Field order is irrelevant; dictionaries sort themselves canonically.
package builder

import (
	"errors"
	"fmt"

	"github.com/parsekit/bencodekit/bencode"
)

// ErrDuplicateKey is returned by Dict when two fields share key bytes.
var ErrDuplicateKey = errors.New("builder: duplicate dictionary key")

// Entry is one dictionary field for Dict.
type Entry struct {
	Key string
	Val bencode.Value
}

// Int builds an integer value.
func Int(n int64) bencode.Value {
	return bencode.Int(n)
}

// Str builds an owned string value from text.
func Str(s string) bencode.Value {
	return bencode.Text(s)
}

// Bytes builds a string value borrowing b. The caller keeps b alive and
// unmodified for the life of the tree.
func Bytes(b []byte) bencode.Value {
	return bencode.Bytes(b)
}

// OwnedBytes builds a string value from a private copy of b.
func OwnedBytes(b []byte) bencode.Value {
	return bencode.StrValue(bencode.OwnedStr(b))
}

// List builds a list value from items in order.
func List(items ...bencode.Value) bencode.Value {
	return bencode.ListValue(items...)
}

// Field pairs a key with a value for Dict.
func Field(key string, val bencode.Value) Entry {
	return Entry{Key: key, Val: val}
}

// Dict builds a dictionary value from fields. Fields may be given in any
// order; entries come out sorted by key bytes. Two fields with identical
// key bytes fail with ErrDuplicateKey.
func Dict(fields ...Entry) (bencode.Value, error) {
	d := bencode.NewDict()
	for _, f := range fields {
		if !d.Insert(bencode.OwnedStr([]byte(f.Key)), f.Val) {
			return bencode.Value{}, fmt.Errorf("%w: %q", ErrDuplicateKey, f.Key)
		}
	}
	return bencode.DictValue(d), nil
}

// MustDict is Dict but panics on duplicate keys. For statically known
// literals.
func MustDict(fields ...Entry) bencode.Value {
	v, err := Dict(fields...)
	if err != nil {
		panic(err)
	}
	return v
}
