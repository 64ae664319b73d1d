package player

import (
	"bytes"
	"net/url"
	"path"

	"github.com/dhowden/tag"
)

// readTrackInfo reads embedded tags of a buffered source. Sources without
// readable tags get their title from the URL file name.
func readTrackInfo(src string, data []byte) *TrackInfo {
	info := &TrackInfo{Src: src, Title: titleFromSrc(src)}

	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return info
	}
	if t := m.Title(); t != "" {
		info.Title = t
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Genre = m.Genre()
	info.Year = m.Year()
	return info
}

func titleFromSrc(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.Path == "" {
		return src
	}
	name := path.Base(u.Path)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name
}
