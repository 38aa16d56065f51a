package bencode

import (
	"errors"
	"math"

	"github.com/parsekit/bencodekit/internal/buf"
)

// ErrInvalid is returned by Decode for any failed decode: malformed or
// truncated input, 64-bit overflow, a duplicate dictionary key, or an
// exhausted allocation budget. The decoder deliberately does not report
// which; callers needing diagnostics must layer their own.
var ErrInvalid = errors.New("bencode: invalid input")

// Decode parses one bencode value from the front of input.
//
// Every byte string in the result is a borrowed view into input, so the
// tree must not outlive the buffer (see Detach). maxAllocs bounds the
// number of list elements and dictionary entries the decoder will
// materialize; one unit is charged per element before its value is parsed.
// Empty containers cost nothing.
//
// Exactly the bytes belonging to the first value are consumed. Trailing
// bytes are not an error here; use DecodeExact to reject them.
func Decode(input []byte, maxAllocs int) (Value, error) {
	v, _, err := decodeOne(input, maxAllocs)
	return v, err
}

// DecodeExact is Decode but fails unless the value spans the entire input.
func DecodeExact(input []byte, maxAllocs int) (Value, error) {
	v, rest, err := decodeOne(input, maxAllocs)
	if err != nil {
		return Value{}, err
	}
	if rest != 0 {
		return Value{}, ErrInvalid
	}
	return v, nil
}

func decodeOne(input []byte, maxAllocs int) (v Value, rest int, err error) {
	d := decoder{r: buf.NewReader(input), allocs: maxAllocs}
	v, ok := d.value()
	if !ok {
		return Value{}, 0, ErrInvalid
	}
	return v, d.r.Len(), nil
}

type decoder struct {
	r      buf.Reader
	allocs int // remaining budget
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// value dispatches on the first unconsumed byte: 'i' integer, 'l' list,
// 'd' dictionary, an ASCII digit a byte string. Anything else fails.
func (d *decoder) value() (Value, bool) {
	c, ok := d.r.Peek()
	if !ok {
		return Value{}, false
	}
	switch {
	case c == 'i':
		n, ok := d.integer()
		if !ok {
			return Value{}, false
		}
		return Int(n), true
	case c == 'l':
		l, ok := d.list()
		if !ok {
			return Value{}, false
		}
		return Value{kind: KindList, list: l}, true
	case c == 'd':
		dict, ok := d.dict()
		if !ok {
			return Value{}, false
		}
		return Value{kind: KindDict, dict: dict}, true
	case isDigit(c):
		s, ok := d.str()
		if !ok {
			return Value{}, false
		}
		return StrValue(s), true
	default:
		return Value{}, false
	}
}

// integer parses i [-] digits e. The digit run is accumulated as an
// unsigned magnitude and negated afterwards, so redundant leading zeros
// are accepted ("i05e" is 5) and -0 is plain 0. Overflow of int64 fails.
func (d *decoder) integer() (int64, bool) {
	if !d.r.TakeByte('i') {
		return 0, false
	}
	neg := d.r.TakeByte('-')
	n, ok := d.digits()
	if !ok {
		return 0, false
	}
	if !d.r.TakeByte('e') {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// str parses digits ':' raw-bytes and returns a borrowed view of the raw
// bytes. Any byte value may appear in the payload.
func (d *decoder) str() (Str, bool) {
	n, ok := d.digits()
	if !ok || n > int64(math.MaxInt) {
		return Str{}, false
	}
	if !d.r.TakeByte(':') {
		return Str{}, false
	}
	raw, ok := d.r.Take(int(n))
	if !ok {
		return Str{}, false
	}
	return BorrowedStr(raw), true
}

// list parses l value* e, charging one budget unit per element before the
// element is parsed.
func (d *decoder) list() (List, bool) {
	if !d.r.TakeByte('l') {
		return nil, false
	}
	var l List
	for {
		c, ok := d.r.Peek()
		if !ok {
			return nil, false
		}
		if c == 'e' {
			break
		}
		if !d.alloc() {
			return nil, false
		}
		v, ok := d.value()
		if !ok {
			return nil, false
		}
		l = append(l, v)
	}
	d.r.TakeByte('e')
	return l, true
}

// dict parses d (string value)* e. Input keys may arrive in any order;
// Insert re-sorts. A byte-identical duplicate key fails the whole decode.
// One budget unit is charged per entry, after its key but before its value.
func (d *decoder) dict() (*Dict, bool) {
	if !d.r.TakeByte('d') {
		return nil, false
	}
	dict := NewDict()
	for {
		c, ok := d.r.Peek()
		if !ok {
			return nil, false
		}
		if !isDigit(c) {
			break
		}
		key, ok := d.str()
		if !ok {
			return nil, false
		}
		if !d.alloc() {
			return nil, false
		}
		v, ok := d.value()
		if !ok {
			return nil, false
		}
		if !dict.Insert(key, v) {
			return nil, false
		}
	}
	if !d.r.TakeByte('e') {
		return nil, false
	}
	return dict, true
}

// digits consumes one or more ASCII digits and returns their value as a
// non-negative int64. Redundant leading zeros are accepted. Accumulation
// beyond int64 fails.
func (d *decoder) digits() (int64, bool) {
	c, ok := d.r.TakeIf(isDigit)
	if !ok {
		return 0, false
	}
	n := int64(c - '0')
	for {
		c, ok := d.r.TakeIf(isDigit)
		if !ok {
			return n, true
		}
		digit := int64(c - '0')
		if n > (math.MaxInt64-digit)/10 {
			return 0, false
		}
		n = n*10 + digit
	}
}

func (d *decoder) alloc() bool {
	if d.allocs == 0 {
		return false
	}
	d.allocs--
	return true
}
