package bencode

import "strconv"

// defaultEncodeCapacity pre-sizes the buffer returned by Encode so typical
// messages (DHT packets, tracker responses) serialize without reallocating.
const defaultEncodeCapacity = 1500

// Encode serializes v into its canonical byte form in a freshly allocated
// buffer. Encoding is deterministic and cannot fail: integers render with
// minimal digits, dictionary entries are emitted in the container's
// ascending key order.
func (v Value) Encode() []byte {
	return v.appendTo(make([]byte, 0, defaultEncodeCapacity))
}

// EncodeInto serializes v into *dst, clearing it first. Capacity is reused
// and grows monotonically, so passing the same buffer across calls
// amortizes allocation.
func (v Value) EncodeInto(dst *[]byte) {
	*dst = v.appendTo((*dst)[:0])
}

func (v Value) appendTo(dst []byte) []byte {
	switch v.kind {
	case KindInt:
		dst = append(dst, 'i')
		dst = strconv.AppendInt(dst, v.num, 10)
		dst = append(dst, 'e')
	case KindStr:
		dst = appendStr(dst, v.str.b)
	case KindList:
		dst = append(dst, 'l')
		for _, item := range v.list {
			dst = item.appendTo(dst)
		}
		dst = append(dst, 'e')
	case KindDict:
		dst = append(dst, 'd')
		for _, e := range v.dict.entries {
			dst = appendStr(dst, e.key.b)
			dst = e.val.appendTo(dst)
		}
		dst = append(dst, 'e')
	}
	return dst
}

func appendStr(dst, s []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, ':')
	return append(dst, s...)
}
