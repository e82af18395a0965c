package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitWords expands bytes into receive queue words, MSB first, without the
// stop bit.
func bitWords(frame ...byte) []uint32 {
	words := make([]uint32, 0, len(frame)*8)
	for _, b := range frame {
		for i := 7; i >= 0; i-- {
			words = append(words, uint32(b>>uint(i)&1))
		}
	}
	return words
}

func TestAssembleByte(t *testing.T) {
	var a Assembler

	words := bitWords(0xA5)
	for i, w := range words[:7] {
		ev, _, err := a.Feed(w)
		require.NoError(t, err)
		require.Equal(t, EventNone, ev, "bit %d", i)
	}

	ev, b, err := a.Feed(words[7])
	require.NoError(t, err)
	assert.Equal(t, EventByte, ev)
	assert.Equal(t, byte(0xA5), b)
	assert.Equal(t, 0, a.Pending())
}

func TestAssembleMultiByteFrame(t *testing.T) {
	var a Assembler
	var got []byte

	for _, w := range bitWords(0x40, 0x03, 0x01) {
		ev, b, err := a.Feed(w)
		require.NoError(t, err)
		if ev == EventByte {
			got = append(got, b)
		}
	}
	assert.Equal(t, []byte{0x40, 0x03, 0x01}, got)
}

func TestStopBitAbsorbed(t *testing.T) {
	var a Assembler

	for _, w := range bitWords(0x41) {
		_, _, err := a.Feed(w)
		require.NoError(t, err)
	}

	ev, _, err := a.Feed(RxWordOne) // the wire stop bit
	require.NoError(t, err)
	assert.Equal(t, EventNone, ev)

	ev, _, err = a.Feed(RxWordEnd)
	require.NoError(t, err)
	assert.Equal(t, EventFrameEnd, ev)
	assert.Equal(t, 0, a.Pending())
}

func TestFrameEndMidByte(t *testing.T) {
	var a Assembler

	for _, w := range []uint32{RxWordOne, RxWordZero, RxWordOne} {
		_, _, err := a.Feed(w)
		require.NoError(t, err)
	}
	require.Equal(t, 3, a.Pending())

	_, _, err := a.Feed(RxWordEnd)
	assert.ErrorIs(t, err, ErrFraming)
	assert.Equal(t, 0, a.Pending())

	// The assembler is usable again straight away.
	ev, b, err := feedFrame(t, &a, 0x00)
	require.NoError(t, err)
	assert.Equal(t, EventByte, ev)
	assert.Equal(t, byte(0x00), b)
}

func TestFrameEndWithoutStopBit(t *testing.T) {
	var a Assembler

	for _, w := range bitWords(0x40) {
		_, _, err := a.Feed(w)
		require.NoError(t, err)
	}

	_, _, err := a.Feed(RxWordEnd)
	assert.ErrorIs(t, err, ErrFraming)
}

func TestStopBitWrongPolarity(t *testing.T) {
	var a Assembler

	for _, w := range bitWords(0x40) {
		_, _, err := a.Feed(w)
		require.NoError(t, err)
	}

	_, _, err := a.Feed(RxWordZero)
	require.NoError(t, err)
	_, _, err = a.Feed(RxWordEnd)
	assert.ErrorIs(t, err, ErrFraming)
}

func TestGarbageWord(t *testing.T) {
	var a Assembler

	_, _, err := a.Feed(0xDEAD)
	assert.ErrorIs(t, err, ErrFraming)
	assert.Equal(t, 0, a.Pending())
}

func TestTxWord(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		last bool
		want uint32
	}{
		{name: "first identity byte", b: 0x09, last: false, want: 0x09000000},
		{name: "last identity byte", b: 0x03, last: true, want: 0x03800000},
		{name: "all ones with stop", b: 0xFF, last: true, want: 0xFF800000},
		{name: "zero with stop", b: 0x00, last: true, want: 0x00800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TxWord(tt.b, tt.last))
		})
	}
}

// feedFrame pushes one byte's worth of bit words and returns the final
// Feed result.
func feedFrame(t *testing.T, a *Assembler, b byte) (Event, byte, error) {
	t.Helper()
	words := bitWords(b)
	for _, w := range words[:7] {
		_, _, err := a.Feed(w)
		require.NoError(t, err)
	}
	return a.Feed(words[7])
}
