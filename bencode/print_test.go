package bencode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRendering(t *testing.T) {
	require.Equal(t, "42", Int(42).String())
	require.Equal(t, "-7", Int(-7).String())

	require.Equal(t, `"hello"`, Text("hello").String())
	require.Equal(t, `""`, Text("").String())

	// Non-UTF-8 contents render as lowercase hex.
	require.Equal(t, "fffe00", Bytes([]byte{0xff, 0xfe, 0x00}).String())

	require.Equal(t, `[1, "two", []]`, ListValue(Int(1), Text("two"), ListValue()).String())

	d := NewDict()
	require.True(t, d.Insert(OwnedStr([]byte("name")), Text("John")))
	require.True(t, d.Insert(OwnedStr([]byte("age")), Int(42)))
	require.Equal(t, `{"age": 42, "name": "John"}`, DictValue(d).String())

	require.Equal(t, "{}", DictValue(nil).String())
}

func TestStringRenderingHexKeys(t *testing.T) {
	d := NewDict()
	require.True(t, d.Insert(OwnedStr([]byte{0xff, 0xfe}), Int(1)))
	require.Equal(t, "{fffe: 1}", DictValue(d).String())
}
