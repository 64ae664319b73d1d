package keymap

import "testing"

func TestByContext(t *testing.T) {
	tests := []struct {
		context  string
		minCount int
	}{
		{"global", 4},
		{"playback", 6},
		{"songs", 5},
		{"input", 2},
		{"unknown", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.minCount == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected none", tt.context, len(result))
			}
			if len(result) < tt.minCount {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.minCount)
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding context = %q, want %q", b.Context, tt.context)
				}
			}
		})
	}
}

func TestExcluding(t *testing.T) {
	for _, b := range Excluding("input") {
		if b.Context == "input" {
			t.Errorf("Excluding(input) returned %+v", b)
		}
	}
	if len(Excluding("input"))+len(ByContext("input")) != len(All) {
		t.Error("Excluding and ByContext should partition All")
	}
}

func TestAll_NoDuplicateKeysOutsideInputs(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Excluding("input") {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestAll_BindingsComplete(t *testing.T) {
	for _, b := range All {
		if b.Action == "" || len(b.Keys) == 0 || b.Description == "" || b.Context == "" {
			t.Errorf("incomplete binding %+v", b)
		}
	}
}
