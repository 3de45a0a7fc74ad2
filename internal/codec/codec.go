// Package codec stores areas in a compact bit-packed form.
//
// Layout: width and height as big-endian uint16, followed by one bit per
// cell in row-major order (y outer, x inner), most significant bit first.
// A set bit is a passable cell. The final byte is zero-padded. Decoded
// areas contain only Floor and Wall; tile names are not preserved.
package codec

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/amazer/internal/core"
)

const headerSize = 4

var (
	// ErrTruncated is returned when the input ends before the declared
	// number of cells.
	ErrTruncated = errors.New("codec: truncated data")
	// ErrTooLarge is returned when an area side does not fit in 16 bits.
	ErrTooLarge = errors.New("codec: area too large")
)

// EncodedLen returns the number of bytes ToBytes produces for size.
func EncodedLen(size core.Size) int {
	return headerSize + (size.Cells()+7)/8
}

// ToBytes encodes the area.
func ToBytes(area *core.Area) ([]byte, error) {
	size := area.Size()
	if size.Width > math.MaxUint16 || size.Height > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %v exceeds %dx%d", ErrTooLarge, size, math.MaxUint16, math.MaxUint16)
	}

	data := make([]byte, EncodedLen(size))
	binary.BigEndian.PutUint16(data[0:2], uint16(size.Width))
	binary.BigEndian.PutUint16(data[2:4], uint16(size.Height))

	bit := 0
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			if area.Get(core.P(x, y)).Passable {
				data[headerSize+bit/8] |= 0x80 >> (bit % 8)
			}
			bit++
		}
	}
	return data, nil
}

// FromBytes decodes an area. Bytes past the last cell are ignored.
func FromBytes(data []byte) (*core.Area, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d for the header", ErrTruncated, len(data), headerSize)
	}
	size := core.S(
		int(binary.BigEndian.Uint16(data[0:2])),
		int(binary.BigEndian.Uint16(data[2:4])),
	)
	if need := EncodedLen(size); len(data) < need {
		return nil, fmt.Errorf("%w: %d bytes, need %d for %v", ErrTruncated, len(data), need, size)
	}

	area := core.NewArea(size)
	cells := data[headerSize:]
	for i := 0; i < size.Cells(); i++ {
		p := core.P(i%size.Width, i/size.Width)
		if cells[i/8]&(0x80>>(i%8)) != 0 {
			area.Set(p, core.Floor)
		} else {
			area.Set(p, core.Wall)
		}
	}
	return area, nil
}

// ToBase64 encodes the area as padded standard base64.
func ToBase64(area *core.Area) (string, error) {
	data, err := ToBytes(area)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// FromBase64 decodes an area from base64. Surrounding whitespace is ignored.
func FromBase64(s string) (*core.Area, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("codec: decode base64: %w", err)
	}
	return FromBytes(data)
}
