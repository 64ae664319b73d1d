package albumart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol framing.
const (
	escStart  = "\x1b_G"
	escEnd    = "\x1b\\"
	chunkSize = 4096
)

// Transmit encodes img as PNG and returns the escape sequence that uploads it
// to the terminal under id without displaying it.
func Transmit(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return transmitPNG(buf.Bytes(), id), nil
}

// transmitPNG splits the base64 payload into chunks; every chunk but the
// last carries m=1.
func transmitPNG(data []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String()
}

// Place shows an uploaded image at the 1-based cell (row, col), scaled to
// cols x rows cells. Placement id 1 is reused so a new placement replaces
// the old one. The cursor is saved and restored around the placement.
func Place(id uint32, row, col, cols, rows int) string {
	return fmt.Sprintf("\x1b[s\x1b[%d;%dH%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s\x1b[u",
		row, col, escStart, id, cols, rows, escEnd)
}

// Delete frees an uploaded image and all its placements.
func Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// Placeholder returns the blank cells the layout reserves for an image.
func Placeholder(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	line := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
