package player

import (
	"bytes"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/tunes/internal/metrics"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// memSource is an in-memory source that satisfies io.ReadSeekCloser so
// decoders can seek.
type memSource struct {
	*bytes.Reader
}

func (memSource) Close() error { return nil }

func decode(src string, body *fetchedSource) (beep.StreamSeekCloser, beep.Format, error) {
	r := memSource{bytes.NewReader(body.data)}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch ext := detectFormat(src, body); ext {
	case extFLAC:
		streamer, format, err = flac.Decode(r)
	case extWAV:
		streamer, format, err = wav.Decode(r)
	default:
		streamer, format, err = decodeGoMP3(r)
	}
	if err != nil {
		metrics.PlaybackErrorsTotal.WithLabelValues("decode").Inc()
		return nil, beep.Format{}, fmt.Errorf("decode: %w", err)
	}
	return streamer, format, nil
}

// detectFormat picks a decoder from the file signature, then the
// Content-Type header, then the URL extension. MP3 is the fallback.
func detectFormat(src string, body *fetchedSource) string {
	data := body.data
	switch {
	case bytes.HasPrefix(data, []byte("fLaC")):
		return extFLAC
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return extWAV
	case bytes.HasPrefix(data, []byte("ID3")):
		return extMP3
	}

	if mt, _, err := mime.ParseMediaType(body.contentType); err == nil {
		switch mt {
		case "audio/flac", "audio/x-flac":
			return extFLAC
		case "audio/wav", "audio/x-wav", "audio/wave", "audio/vnd.wave":
			return extWAV
		case "audio/mpeg", "audio/mp3":
			return extMP3
		}
	}

	p := src
	if u, err := url.Parse(src); err == nil {
		p = u.Path
	}
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case extFLAC, extWAV:
		return ext
	}
	return extMP3
}
