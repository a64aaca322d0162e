package display

import (
	"testing"

	"github.com/nandgate/hack16/bitvec"
	"github.com/stretchr/testify/assert"
)

func TestToImageDimensions(t *testing.T) {
	var words [1 << 13]bitvec.Word
	img := toImage(words)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestToImageBitsBecomePixels(t *testing.T) {
	var words [1 << 13]bitvec.Word
	words[0] = bitvec.FromUint16(0x8000) // leftmost pixel of row 0 set

	img := toImage(words)
	assert.Equal(t, uint8(255), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), img.GrayAt(1, 0).Y)
}

func TestToImageSecondRowOffsetByWordsPerRow(t *testing.T) {
	var words [1 << 13]bitvec.Word
	words[wordsPerRow] = bitvec.FromUint16(0x8000) // leftmost pixel of row 1

	img := toImage(words)
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 1).Y)
}
