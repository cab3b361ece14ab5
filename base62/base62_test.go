// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package base62

import (
	"bufio"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vector struct {
	base62 string
	id     [DecodedLen]byte
}

func loadVectors(tb testing.TB) []vector {
	tb.Helper()

	f, err := os.Open(filepath.Join("testdata", "vectors.txt")) // #nosec
	require.NoError(tb, err)
	defer func() {
		require.NoError(tb, f.Close())
	}()

	var vectors []vector
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		require.Len(tb, fields, 2, line)

		raw, err := hex.DecodeString(fields[1])
		require.NoError(tb, err, line)
		require.Len(tb, raw, DecodedLen, line)

		v := vector{base62: fields[0]}
		copy(v.id[:], raw)
		vectors = append(vectors, v)
	}
	require.NoError(tb, scanner.Err())
	require.NotEmpty(tb, vectors)

	return vectors
}

func mustID(tb testing.TB, s string) (id [DecodedLen]byte) {
	tb.Helper()

	raw, err := hex.DecodeString(s)
	require.NoError(tb, err)
	require.Len(tb, raw, DecodedLen)
	copy(id[:], raw)

	return id
}

func TestEncodeVectors(t *testing.T) {
	for _, v := range loadVectors(t) {
		assert.Equal(t, v.base62, EncodeToString(v.id), "%x", v.id)
	}
}

func TestDecodeVectors(t *testing.T) {
	for _, v := range loadVectors(t) {
		id, err := DecodeString(v.base62)
		if assert.NoError(t, err, v.base62) {
			assert.Equal(t, v.id, id, v.base62)
		}
	}
}

func TestKnownValues(t *testing.T) {
	var ones [DecodedLen]byte
	for i := range ones {
		ones[i] = 0xff
	}

	for _, tt := range []struct {
		name   string
		id     [DecodedLen]byte
		base62 string
	}{
		{
			name:   "zero",
			base62: strings.Repeat("0", EncodedLen),
		},
		{
			name:   "all bits set",
			id:     ones,
			base62: MaxString,
		},
		{
			name:   "one",
			id:     mustID(t, "00000000000000000000000000000001"),
			base62: "0000000000000000000001",
		},
		{
			name:   "largest single digit",
			id:     mustID(t, "0000000000000000000000000000003d"),
			base62: "000000000000000000000Z",
		},
		{
			name:   "first two digit value",
			id:     mustID(t, "0000000000000000000000000000003e"),
			base62: "0000000000000000000010",
		},
		{
			name:   "64-bit boundary",
			id:     mustID(t, "00000000000000010000000000000000"),
			base62: "00000000000lYGhA16ahyg",
		},
		{
			name:   "random looking",
			id:     mustID(t, "dbc3d5ebe344484da3e2448712a02213"),
			base62: "6GGODyP2LIdbxIfYxy5UbN",
		},
		{
			// The leading digit is below the maximum, so the larger digits
			// that follow do not matter.
			name:   "below maximum despite larger trailing digits",
			id:     mustID(t, "df2905747fe510157bbda96612100000"),
			base62: "6N62dgm5tFLK9N8MT7fHC8",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.base62, EncodeToString(tt.id))

			id, err := DecodeString(tt.base62)
			assert.NoError(t, err)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
		err   error
	}{
		{"one past maximum", "7N42dgm5tFLK9N8MT7fHC8", ErrOutOfRange},
		{"all largest digits", "ZZZZZZZZZZZZZZZZZZZZZZ", ErrOutOfRange},
		{"second digit too large", "7O00000000000000000000", ErrOutOfRange},
		{"leading digit too large", "8000000000000000000000", ErrOutOfRange},
		{"plus at end", "000000000000000000000+", ErrInvalidCharacter},
		{"plus at start", "+000000000000000000000", ErrInvalidCharacter},
		{"slash", "00000000000/0000000000", ErrInvalidCharacter},
		{"space", "0000000000 00000000000", ErrInvalidCharacter},
		{"non-ascii", "000000000000000000000\xc3", ErrInvalidCharacter},
		{"invalid beats out of range", "ZZZZZZZZZZZZZZZZZZZZZ+", ErrInvalidCharacter},
		{"empty", "", ErrTruncated},
		{"one short", "000000000000000000001", ErrTruncated},
		{"early terminator", "0000000000\x0000000000000", ErrTruncated},
	} {
		t.Run(tt.name, func(t *testing.T) {
			id, err := DecodeString(tt.input)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, [DecodedLen]byte{}, id, "output must be zeroed on failure")

			id, err = Decode([]byte(tt.input))
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, [DecodedLen]byte{}, id)
		})
	}
}

func TestPlusRejectedAtEveryPosition(t *testing.T) {
	for i := 0; i < EncodedLen; i++ {
		b := []byte(strings.Repeat("0", EncodedLen))
		b[i] = '+'
		_, err := Decode(b)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "position %d", i)
	}
}

func TestDecodeReadsOnlyPrefix(t *testing.T) {
	id, err := DecodeString(MaxString + "this is never read +/")
	require.NoError(t, err)
	assert.Equal(t, mustID(t, "ffffffffffffffffffffffffffffffff"), id)

	// A terminator right after the last digit is fine.
	id, err = Decode(append([]byte("0000000000000000000001"), 0))
	require.NoError(t, err)
	assert.Equal(t, mustID(t, "00000000000000000000000000000001"), id)
}

func TestAppendEncode(t *testing.T) {
	id := mustID(t, "dbc3d5ebe344484da3e2448712a02213")

	out := AppendEncode([]byte("track:"), id)
	assert.Equal(t, "track:6GGODyP2LIdbxIfYxy5UbN", string(out))
	assert.Equal(t, "6GGODyP2LIdbxIfYxy5UbN", string(AppendEncode(nil, id)))
}

func TestDeterministic(t *testing.T) {
	id := mustID(t, "0123456789abcdef0123456789abcdef")
	first := Encode(id)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Encode(id))

		decoded, err := Decode(first[:])
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
	assert.Equal(t, "0296TIIbB3u904riPYGPJJ", string(first[:]))
}

func TestHexConversion(t *testing.T) {
	b62, err := FromHex("dbc3d5ebe344484da3e2448712a02213")
	require.NoError(t, err)
	assert.Equal(t, "6GGODyP2LIdbxIfYxy5UbN", b62)

	b62, err = FromHex("DBC3D5EBE344484DA3E2448712A02213")
	require.NoError(t, err)
	assert.Equal(t, "6GGODyP2LIdbxIfYxy5UbN", b62)

	h, err := ToHex("6GGODyP2LIdbxIfYxy5UbN")
	require.NoError(t, err)
	assert.Equal(t, "dbc3d5ebe344484da3e2448712a02213", h)

	_, err = FromHex("zbc3d5ebe344484da3e2448712a02213")
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	_, err = ToHex("7N42dgm5tFLK9N8MT7fHC8")
	assert.ErrorIs(t, err, ErrOutOfRange)

	for _, tc := range []struct {
		name string
		conv func(string) (string, error)
		in   string
		err  error
	}{
		{"hex too long", FromHex, "dbc3d5ebe344484da3e2448712a0221300", ErrInvalidLength},
		{"hex too long and invalid", FromHex, "zz" + "dbc3d5ebe344484da3e2448712a02213", ErrInvalidLength},
		{"hex short", FromHex, "dbc3d5ebe344484da3e2448712a022", ErrTruncated},
		{"base62 too long", ToHex, MaxString + "0", ErrInvalidLength},
		{"base62 too long and invalid", ToHex, "+000000000000000000000X", ErrInvalidLength},
		{"base62 short", ToHex, "6GGODyP2LIdbxIfYxy5Ub", ErrTruncated},
		{"base62 invalid", ToHex, "+00000000000000000000X", ErrInvalidCharacter},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.conv(tc.in)
			assert.ErrorIs(t, err, tc.err)
			assert.NotErrorIs(t, err, ErrOutOfRange)
			assert.Empty(t, out)
		})
	}
}
