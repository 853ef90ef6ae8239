package render

import (
	"bufio"
	"fmt"
	"os"
)

// LoadTGA decodes an uncompressed 24-bit or 32-bit BGR(A) TARGA image.
// None of this renderer's dependencies (nor any other example in the
// retrieval pack) ship a TGA codec, unlike PNG/JPEG which image/png and
// image/jpeg already cover via LoadTexture; this is the one format
// handled entirely by hand, against the stdlib's bufio/os only.
func LoadTGA(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tga: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var header [18]byte
	if _, err := readFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("failed to read tga header: %w", err)
	}

	idLength := header[0]
	colorMapType := header[1]
	imageType := header[2]
	width := int(header[12]) | int(header[13])<<8
	height := int(header[14]) | int(header[15])<<8
	bpp := header[16]
	descriptor := header[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	if imageType != 2 {
		return nil, fmt.Errorf("tga: only uncompressed true-color images (type 2) are supported, got type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: only 24 or 32 bit pixels are supported, got %d", bpp)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tga: invalid dimensions %dx%d", width, height)
	}

	if idLength > 0 {
		if _, err := readFull(r, make([]byte, idLength)); err != nil {
			return nil, fmt.Errorf("failed to skip tga image id: %w", err)
		}
	}

	bytesPerPixel := int(bpp / 8)
	row := make([]byte, width*bytesPerPixel)
	tex := NewTexture(width, height)

	// Bit 5 of the descriptor byte set means the image is stored top-down;
	// TGA's default origin is bottom-left, so invert unless that bit is set.
	topDown := descriptor&0x20 != 0

	for y := range height {
		if _, err := readFull(r, row); err != nil {
			return nil, fmt.Errorf("failed to read tga row %d: %w", y, err)
		}
		destY := y
		if !topDown {
			destY = height - 1 - y
		}
		for x := range width {
			off := x * bytesPerPixel
			c := Color{B: row[off], G: row[off+1], R: row[off+2], A: 255}
			if bytesPerPixel == 4 {
				c.A = row[off+3]
			}
			tex.SetPixel(x, destY, c)
		}
	}

	return tex, nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
