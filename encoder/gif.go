package encoder

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrFrameSize is returned when a frame does not match the animation bounds
var ErrFrameSize = errors.New("frame size does not match animation")

// maxDimension is the largest width or height a GIF logical screen can hold
const maxDimension = 1<<16 - 1

// GIFWriter collects frames into an infinitely looping animated GIF.
// The file is created up front and written by Close, which must be called on
// every exit path.
type GIFWriter struct {
	file      *os.File
	bounds    image.Rectangle
	delay     int
	quantizer *Quantizer
	frames    []*image.Paletted
	closed    bool
}

// NewGIFWriter creates path for frames of the given bounds, each shown for interval
func NewGIFWriter(path string, bounds image.Rectangle, interval time.Duration) (*GIFWriter, error) {
	if bounds.Empty() || bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		return nil, errors.Errorf("[NewGIFWriter] unsupported frame size %dx%d", bounds.Dx(), bounds.Dy())
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewGIFWriter] failed to create file: %+v", path)
	}

	return &GIFWriter{
		file:      f,
		bounds:    bounds,
		delay:     Centiseconds(interval),
		quantizer: NewQuantizer(palette.Plan9),
	}, nil
}

// Centiseconds converts a frame interval to GIF delay units, rounding to nearest
func Centiseconds(d time.Duration) int {
	return int((d + 5*time.Millisecond) / (10 * time.Millisecond))
}

// Append quantizes frame and queues it after the frames already appended
func (w *GIFWriter) Append(frame image.Image) error {
	if w.closed {
		return errors.New("[Append] writer is closed")
	}
	if frame.Bounds() != w.bounds {
		return errors.Wrapf(ErrFrameSize, "[Append] got %v, expected %v", frame.Bounds(), w.bounds)
	}

	w.frames = append(w.frames, w.quantizer.Quantize(frame))
	return nil
}

// Len returns the number of frames appended so far
func (w *GIFWriter) Len() int {
	return len(w.frames)
}

// Close encodes the queued frames and closes the file. Calling it again is a no-op.
func (w *GIFWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	bw := bufio.NewWriter(w.file)
	err := w.encode(bw)
	if err == nil {
		err = bw.Flush()
	}
	w.frames = nil

	if cerr := w.file.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "[Close] failed to finalize animation: %+v", w.file.Name())
}

func (w *GIFWriter) encode(out io.Writer) error {
	if len(w.frames) == 0 {
		return writeEmptyGIF(out, w.bounds.Dx(), w.bounds.Dy())
	}

	delays := make([]int, len(w.frames))
	for i := range delays {
		delays[i] = w.delay
	}

	return gif.EncodeAll(out, &gif.GIF{
		Image:     w.frames,
		Delay:     delays,
		LoopCount: 0, // Loop forever
	})
}

// writeEmptyGIF writes a frameless GIF89a: header, logical screen without a
// color table, infinite-loop application extension and trailer.
func writeEmptyGIF(out io.Writer, width, height int) error {
	buf := make([]byte, 0, 33)
	buf = append(buf, "GIF89a"...)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(width))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(height))
	buf = append(buf, 0x00, 0x00, 0x00) // No global color table, background 0, square pixels

	buf = append(buf, 0x21, 0xff, 0x0b)
	buf = append(buf, "NETSCAPE2.0"...)
	buf = append(buf, 0x03, 0x01, 0x00, 0x00, 0x00) // Loop count 0 means forever

	buf = append(buf, 0x3b)

	_, err := out.Write(buf)
	return err
}
