package bencode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, input string, maxAllocs int) Value {
	t.Helper()
	v, err := Decode([]byte(input), maxAllocs)
	require.NoError(t, err, "decode %q", input)
	return v
}

func TestDecodeIntegers(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"i0e", 0},
		{"i1e", 1},
		{"i-1e", -1},
		{"i10e", 10},
		{"i-10e", -10},
		{"i42e", 42},
		{"i-42e", -42},
		{"i9223372036854775807e", 9223372036854775807},
	}
	for _, tc := range cases {
		v := mustDecode(t, tc.input, 0)
		require.Equal(t, KindInt, v.Kind())
		n, ok := To[int64](&v)
		require.True(t, ok)
		require.Equal(t, tc.want, n, "input %q", tc.input)
	}
}

func TestDecodeIntegerLeadingZeros(t *testing.T) {
	// Redundant leading zeros are accepted on purpose; the grammar is
	// permissive digit accumulation, not a strict canonical-form check.
	v := mustDecode(t, "i05e", 0)
	n, ok := To[int64](&v)
	require.True(t, ok)
	require.Equal(t, int64(5), n)

	v = mustDecode(t, "i-0e", 0)
	n, ok = To[int64](&v)
	require.True(t, ok)
	require.Equal(t, int64(0), n)
}

func TestDecodeStrings(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0:", ""},
		{"1::", ":"},
		{"5:hello", "hello"},
		{"10:helloworld", "helloworld"},
		{"3:\x00\x01\x02", "\x00\x01\x02"},
	}
	for _, tc := range cases {
		v := mustDecode(t, tc.input, 0)
		require.Equal(t, KindStr, v.Kind())
		b, ok := To[[]byte](&v)
		require.True(t, ok)
		require.Equal(t, []byte(tc.want), b, "input %q", tc.input)
	}
}

func TestDecodeStringBorrowsInput(t *testing.T) {
	input := []byte("5:hello")
	v, err := Decode(input, 0)
	require.NoError(t, err)
	b, ok := To[[]byte](&v)
	require.True(t, ok)
	require.Same(t, &input[2], &b[0], "decoded string must be a view into the input")
}

func TestDecodeList(t *testing.T) {
	v := mustDecode(t, "li42e5:helloe", 2)
	l, ok := To[List](&v)
	require.True(t, ok)
	require.Len(t, l, 2)

	n, ok := To[int64](&l[0])
	require.True(t, ok)
	require.Equal(t, int64(42), n)

	s, ok := To[string](&l[1])
	require.True(t, ok)
	require.Equal(t, "hello", s)
}

func TestDecodeDictSortsArbitraryKeyOrder(t *testing.T) {
	// Keys arrive reversed; the decoded tree re-encodes canonically.
	v := mustDecode(t, "d4:name4:John3:agei42ee", 10)
	require.Equal(t, "d3:agei42e4:name4:Johne", string(v.Encode()))
}

func TestDecodeDictDuplicateKeys(t *testing.T) {
	_, err := Decode([]byte("d3:agei30e3:agei40ee"), 10)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeTrailingBytes(t *testing.T) {
	// The engine decodes one value and stops; trailing bytes are the
	// caller's business.
	v, err := Decode([]byte("i42etrailing"), 0)
	require.NoError(t, err)
	n, ok := To[int64](&v)
	require.True(t, ok)
	require.Equal(t, int64(42), n)

	_, err = DecodeExact([]byte("i42etrailing"), 0)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = DecodeExact([]byte("i42e"), 0)
	require.NoError(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	inputs := []string{
		"",                       // empty where a value is expected
		"x",                      // unknown leading byte
		"i",                      // truncated integer
		"ie",                     // no digits
		"i-e",                    // sign without digits
		"i4",                     // missing terminator
		"i4x",                    // garbage terminator
		"i--4e",                  // double sign
		"5:hell",                 // truncated string payload
		"5",                      // missing colon
		"5hello",                 // missing colon with payload
		":",                      // missing length
		"l",                      // unterminated list
		"li42e",                  // unterminated list with element
		"lx",                     // garbage inside list
		"d",                      // unterminated dict
		"d3:age",                 // key without value
		"d3:agei42e",             // missing dict terminator
		"di42ei42ee",             // non-string dict key
		"i9223372036854775808e",  // int64 overflow
		"i-9223372036854775808e", // magnitude overflows during accumulation
		"9223372036854775808:",   // length overflow
	}
	for _, input := range inputs {
		_, err := Decode([]byte(input), 100)
		require.ErrorIs(t, err, ErrInvalid, "input %q should fail", input)
	}
}

func TestDecodeAllocationBudget(t *testing.T) {
	cases := []struct {
		input  string
		budget int
		ok     bool
	}{
		// Scalars cost nothing.
		{"i42e", 0, true},
		{"5:hello", 0, true},
		// Empty containers cost nothing.
		{"le", 0, true},
		{"de", 0, true},
		// One unit per list element.
		{"li42ee", 0, false},
		{"li42ee", 1, true},
		{"li1ei2ee", 1, false},
		{"li1ei2ee", 2, true},
		// One unit per dict entry.
		{"d3:agei42ee", 0, false},
		{"d3:agei42ee", 1, true},
		{"d3:agei42e4:name4:Johne", 1, false},
		{"d3:agei42e4:name4:Johne", 2, true},
		// Nested containers charge through every level: outer list element
		// plus two inner elements.
		{"lli1ei2eee", 2, false},
		{"lli1ei2eee", 3, true},
	}
	for _, tc := range cases {
		_, err := Decode([]byte(tc.input), tc.budget)
		if tc.ok {
			require.NoError(t, err, "input %q budget %d", tc.input, tc.budget)
		} else {
			require.ErrorIs(t, err, ErrInvalid, "input %q budget %d", tc.input, tc.budget)
		}
	}
}

func TestDecodeDeeplyNestedBoundedByBudget(t *testing.T) {
	// 1000 nested lists need 999 element units; the budget cuts the
	// attack off long before that.
	input := make([]byte, 0, 2000)
	for range 1000 {
		input = append(input, 'l')
	}
	for range 1000 {
		input = append(input, 'e')
	}
	_, err := Decode(input, 10)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Decode(input, 999)
	require.NoError(t, err)
}
