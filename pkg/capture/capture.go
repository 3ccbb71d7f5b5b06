// Package capture records rendered frames to a snappy-compressed stream so
// an interactive session can be replayed or exported offline.
package capture

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

// Stream format: a 4-byte magic, then one record per frame. Each record is
// a fixed header (width, height, compressed length) followed by the
// snappy-compressed little-endian packed pixels.
var magic = [4]byte{'F', 'B', 'R', 'C'}

// ErrBadMagic indicates the reader was pointed at something that is not a
// capture stream.
var ErrBadMagic = errors.New("capture: bad magic")

// maxDimension bounds frame width and height read from a stream header,
// keeping a corrupt header from driving a huge allocation.
const maxDimension = 1 << 14

// Recorder writes framebuffer snapshots to a stream
type Recorder struct {
	w           io.Writer
	wroteHeader bool
}

// NewRecorder creates a recorder writing to w
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// WriteFrame appends one framebuffer snapshot to the stream
func (r *Recorder) WriteFrame(width, height int, pix []uint32) error {
	if len(pix) != width*height {
		return fmt.Errorf("capture: pixel count %d does not match %dx%d", len(pix), width, height)
	}

	if !r.wroteHeader {
		if _, err := r.w.Write(magic[:]); err != nil {
			return fmt.Errorf("capture: write magic: %w", err)
		}
		r.wroteHeader = true
	}

	raw := make([]byte, len(pix)*4)
	for i, p := range pix {
		binary.LittleEndian.PutUint32(raw[i*4:], p)
	}
	compressed := snappy.Encode(nil, raw)

	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:], uint32(width))
	binary.LittleEndian.PutUint32(header[4:], uint32(height))
	binary.LittleEndian.PutUint32(header[8:], uint32(len(compressed)))
	if _, err := r.w.Write(header[:]); err != nil {
		return fmt.Errorf("capture: write frame header: %w", err)
	}
	if _, err := r.w.Write(compressed); err != nil {
		return fmt.Errorf("capture: write frame data: %w", err)
	}
	return nil
}

// Reader iterates the frames of a capture stream
type Reader struct {
	r         io.Reader
	readMagic bool
}

// NewReader creates a reader decoding from r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadFrame returns the next frame, or io.EOF after the last one.
func (c *Reader) ReadFrame() (width, height int, pix []uint32, err error) {
	if !c.readMagic {
		var got [4]byte
		if _, err = io.ReadFull(c.r, got[:]); err != nil {
			return 0, 0, nil, err
		}
		if got != magic {
			return 0, 0, nil, ErrBadMagic
		}
		c.readMagic = true
	}

	var header [12]byte
	if _, err = io.ReadFull(c.r, header[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, 0, nil, err
	}
	width = int(binary.LittleEndian.Uint32(header[0:]))
	height = int(binary.LittleEndian.Uint32(header[4:]))
	compLen := int(binary.LittleEndian.Uint32(header[8:]))

	// Header fields are untrusted; validate before allocating
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return 0, 0, nil, fmt.Errorf("capture: bad frame dimensions %dx%d", width, height)
	}
	if compLen <= 0 || compLen > snappy.MaxEncodedLen(width*height*4) {
		return 0, 0, nil, fmt.Errorf("capture: bad frame data length %d for %dx%d", compLen, width, height)
	}

	compressed := make([]byte, compLen)
	if _, err = io.ReadFull(c.r, compressed); err != nil {
		return 0, 0, nil, fmt.Errorf("capture: read frame data: %w", err)
	}
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("capture: decompress frame: %w", err)
	}
	if len(raw) != width*height*4 {
		return 0, 0, nil, fmt.Errorf("capture: frame size mismatch: got %d bytes for %dx%d", len(raw), width, height)
	}

	pix = make([]uint32, width*height)
	for i := range pix {
		pix[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return width, height, pix, nil
}
