// Package buf provides a bounds-checked forward cursor over a byte slice.
// All operations are non-panicking: out-of-range reads report ok = false
// and leave the cursor untouched.
package buf

// Reader consumes a byte slice front to back. The zero Reader is empty.
type Reader struct {
	b []byte
}

// NewReader returns a Reader over b. The Reader never modifies b.
func NewReader(b []byte) Reader {
	return Reader{b: b}
}

// Len returns the number of unconsumed bytes.
func (r *Reader) Len() int { return len(r.b) }

// Empty reports whether all input has been consumed.
func (r *Reader) Empty() bool { return len(r.b) == 0 }

// Peek returns the next byte without consuming it.
func (r *Reader) Peek() (byte, bool) {
	if len(r.b) == 0 {
		return 0, false
	}
	return r.b[0], true
}

// TakeByte consumes the next byte if it equals c.
func (r *Reader) TakeByte(c byte) bool {
	if len(r.b) == 0 || r.b[0] != c {
		return false
	}
	r.b = r.b[1:]
	return true
}

// TakeIf consumes and returns the next byte if pred accepts it.
func (r *Reader) TakeIf(pred func(byte) bool) (byte, bool) {
	if len(r.b) == 0 || !pred(r.b[0]) {
		return 0, false
	}
	c := r.b[0]
	r.b = r.b[1:]
	return c, true
}

// Take consumes exactly n bytes and returns them as a view into the
// underlying slice. No copy is made.
func (r *Reader) Take(n int) ([]byte, bool) {
	if n < 0 || n > len(r.b) {
		return nil, false
	}
	h := r.b[:n:n]
	r.b = r.b[n:]
	return h, true
}
