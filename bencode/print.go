package bencode

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf8"
)

// String renders v for diagnostics: integers in decimal, byte strings
// Go-quoted when valid UTF-8 and as lowercase hex otherwise, lists and
// dictionaries structurally. The output is not a wire format and does not
// round-trip.
func (v Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.num, 10))
	case KindStr:
		renderBytes(sb, v.str.b)
	case KindList:
		sb.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.render(sb)
		}
		sb.WriteByte(']')
	case KindDict:
		sb.WriteByte('{')
		for i, e := range v.dict.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			renderBytes(sb, e.key.b)
			sb.WriteString(": ")
			e.val.render(sb)
		}
		sb.WriteByte('}')
	}
}

func renderBytes(sb *strings.Builder, b []byte) {
	if utf8.Valid(b) {
		sb.WriteString(strconv.Quote(string(b)))
		return
	}
	sb.WriteString(hex.EncodeToString(b))
}
