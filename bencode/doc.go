// Package bencode implements a zero-copy codec for the bencode wire format.
//
// # Overview
//
// Bencode is a compact, self-describing, schema-less binary encoding built
// from four shapes: signed integers, byte strings, ordered lists, and
// key-sorted dictionaries. This package parses untrusted byte buffers into
// an in-memory Value tree without copying string data, serializes trees back
// into their canonical byte form, and offers fallible typed extraction from
// the tree.
//
// # Wire Format
//
// Four productions, no whitespace anywhere:
//
//	Integer      i [-] digits e        i42e, i-7e, i0e
//	Byte string  digits : raw-bytes    5:hello, 0:
//	List         l value* e            li1ei2ee
//	Dictionary   d (string value)* e   d3:agei42e4:name4:Johne
//
// Dictionary entries are serialized in ascending byte-lexicographic key
// order. That order is an invariant of the Dict container itself, so a
// decoded tree always re-encodes to the same canonical bytes regardless of
// the key order in the input.
//
// # Zero-Copy Design
//
// Decoding borrows every byte string directly from the input buffer. The
// returned tree must therefore not outlive the buffer, and the buffer must
// not be modified while the tree is in use. Call Detach to deep-copy all
// borrowed spans into owned storage when the tree needs to live longer:
//
//	v, err := bencode.Decode(input, 1024)
//	if err != nil {
//	    return err
//	}
//	keep := v.Detach() // no remaining ties to input
//
// # Resource Bounds
//
// Decode takes a maximum allocation count. Each list element and each
// dictionary entry consumes one unit of the budget before its value is
// parsed; integers and byte strings cost nothing beyond what their
// container already charged. A pathological input full of nested containers
// therefore cannot force the decoder to materialize more than maxAllocs
// elements, independent of the input's byte length.
//
// # Failure Policy
//
// Decoding is all-or-nothing: any malformed byte, truncation, 64-bit
// overflow, duplicate dictionary key, or budget exhaustion fails the whole
// decode with ErrInvalid. There are no partial trees and no structured
// error codes. The typed projection layer (To, Get) is likewise uniform:
// it reports success or failure through a comma-ok result and nothing else.
//
// # Thread Safety
//
// A fully constructed tree is immutable and safe for concurrent reads.
// Construction itself is single-threaded.
package bencode
