package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		top   string
		width int
		want  string
	}{
		{
			name:  "replaces middle span",
			base:  "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc",
			top:   "          \n   XYZ    \n          ",
			width: 10,
			want:  "aaaaaaaaaa\nbbbXYZbbbb\ncccccccccc",
		},
		{
			name:  "pads short base",
			base:  "ab",
			top:   "    X",
			width: 6,
			want:  "ab  X ",
		},
		{
			name:  "keeps inner spaces of top",
			base:  "0123456789",
			top:   "  a  b",
			width: 10,
			want:  "01a  b6789",
		},
		{
			name:  "wide char split by edge",
			base:  "ab日本cd",
			top:   "   X",
			width: 8,
			want:  "ab X本cd",
		},
		{
			name:  "top taller than base",
			base:  "one",
			top:   "x\ny",
			width: 3,
			want:  "xne",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.base, tt.top, tt.width); got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompose_StyledTop(t *testing.T) {
	top := "  " + lipgloss.NewStyle().Bold(true).Render("hi")
	got := ansi.Strip(Compose("..........", top, 10))
	if got != "..hi......" {
		t.Errorf("Compose() stripped = %q", got)
	}
}
