// Package helpbindings renders the key binding reference shown by "?".
package helpbindings

import (
	"strings"

	"github.com/llehouerou/tunes/internal/keymap"
	"github.com/llehouerou/tunes/internal/ui/popup"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
)

var sections = []struct {
	context string
	label   string
}{
	{"global", "Global"},
	{"playback", "Playback"},
	{"songs", "Song list"},
	{"input", "Search and playlist name"},
}

// Content lists the bindings grouped by context, keys aligned in a column.
func Content(bindings []keymap.Binding) string {
	st := styles.T().S()

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, render.Width(keyList(b.Keys)))
	}

	var blocks []string
	for _, s := range sections {
		var lines []string
		for _, b := range bindings {
			if b.Context != s.context {
				continue
			}
			lines = append(lines, st.Playing.Render(render.Pad(keyList(b.Keys), keyWidth))+"  "+st.Base.Render(b.Description))
		}
		if len(lines) == 0 {
			continue
		}
		head := st.Genre.Bold(true).Render(s.label)
		blocks = append(blocks, head+"\n"+strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// Dialog wraps Content in the help popup.
func Dialog(bindings []keymap.Binding) popup.Dialog {
	return popup.Dialog{
		Title:  "Keys",
		Body:   Content(bindings),
		Footer: "? or esc to close",
	}
}

func keyList(keys []string) string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			continue
		}
		out = append(out, k)
	}
	return strings.Join(out, ", ")
}
