package mode

import "testing"

func TestUnmarshalText(t *testing.T) {
	cases := []struct {
		text string
		want Mode
	}{
		{"thickness", Thickness},
		{"t", Thickness},
		{"multibeam", Multibeam},
		{"m", Multibeam},
	}
	for _, tc := range cases {
		got, err := UnmarshalText(tc.text)
		if err != nil {
			t.Fatalf("UnmarshalText(%q): %v", tc.text, err)
		}
		if got != tc.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}

	if _, err := UnmarshalText("visibility"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
