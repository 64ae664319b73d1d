// Package albumart draws song covers with the Kitty graphics protocol.
package albumart

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // cover decoders
	_ "image/jpeg" // cover decoders
	_ "image/png"  // cover decoders
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"
)

// Terminal cells are assumed to be 8x16 pixels.
const (
	cellWidth  = 8
	cellHeight = 16
)

var nextID atomic.Uint32

// Renderer keeps one cover uploaded to the terminal at a time.
type Renderer struct {
	mu   sync.Mutex
	url  string
	id   uint32
	cols int
	rows int
}

// New creates a renderer that displays covers in cols x rows cells.
func New(cols, rows int) *Renderer {
	return &Renderer{cols: cols, rows: rows}
}

// Current returns the URL of the uploaded cover, or "".
func (r *Renderer) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.url
}

// Prepare decodes cover image data, scales it to the cell box and returns
// the escape sequences that replace the previous cover with it. Preparing
// the URL already uploaded returns "".
func (r *Renderer) Prepare(url string, data []byte) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if url == r.url && r.id != 0 {
		return "", nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode cover: %w", err)
	}
	//nolint:gosec // cell counts are small
	thumb := resize.Thumbnail(uint(r.cols*cellWidth), uint(r.rows*cellHeight), img, resize.Lanczos3)

	id := nextID.Add(1)
	upload, err := Transmit(thumb, id)
	if err != nil {
		return "", err
	}

	out := r.clearLocked() + upload
	r.url = url
	r.id = id
	return out, nil
}

// Place returns the sequence showing the current cover at the 1-based cell
// (row, col), or "" when there is none.
func (r *Renderer) Place(row, col int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.id == 0 {
		return ""
	}
	return Place(r.id, row, col, r.cols, r.rows)
}

// Clear removes the current cover from the terminal.
func (r *Renderer) Clear() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearLocked()
}

func (r *Renderer) clearLocked() string {
	if r.id == 0 {
		return ""
	}
	out := Delete(r.id)
	r.id = 0
	r.url = ""
	return out
}
