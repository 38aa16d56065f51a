package bencode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetachSurvivesBufferReuse(t *testing.T) {
	input := []byte("d4:name4:John5:peersl2:ab2:cdee")
	v, err := Decode(input, 10)
	require.NoError(t, err)

	detached := v.Detach()
	require.True(t, v.Equal(detached))

	// Clobber the input buffer: the detached tree must be unaffected.
	for i := range input {
		input[i] = 0
	}
	name, ok := Get[string](&detached, "name")
	require.True(t, ok)
	require.Equal(t, "John", name)

	peers, ok := Get[List](&detached, "peers")
	require.True(t, ok)
	require.Len(t, peers, 2)
	first, ok := To[[]byte](&peers[0])
	require.True(t, ok)
	require.Equal(t, []byte("ab"), first)
}

func TestDetachMarksStringsOwned(t *testing.T) {
	v, err := Decode([]byte("l5:helloe"), 1)
	require.NoError(t, err)

	l, ok := To[List](&v)
	require.True(t, ok)
	b, ok := To[[]byte](&l[0])
	require.True(t, ok)
	require.Equal(t, "hello", string(b))

	detached := v.Detach()
	dl, ok := To[List](&detached)
	require.True(t, ok)
	require.Equal(t, KindStr, dl[0].Kind())
	require.True(t, dl[0].str.IsOwned())
}

func TestDetachKeepsOwnedStringsWithoutRecopy(t *testing.T) {
	backing := []byte("payload")
	s := OwnedStr(backing)
	v := ListValue(StrValue(s))

	detached := v.Detach()
	dl, ok := To[List](&detached)
	require.True(t, ok)
	db, ok := To[[]byte](&dl[0])
	require.True(t, ok)
	require.Same(t, &s.b[0], &db[0], "already-owned bytes are moved, not recopied")
}

func TestDetachScalars(t *testing.T) {
	require.True(t, Int(-3).Detach().Equal(Int(-3)))

	// Detach is idempotent.
	v, err := Decode([]byte("d1:k1:ve"), 1)
	require.NoError(t, err)
	once := v.Detach()
	twice := once.Detach()
	require.True(t, once.Equal(twice))
}
