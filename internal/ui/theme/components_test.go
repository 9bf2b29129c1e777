package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestWrapUsesMeasure(t *testing.T) {
	prev := textHooks
	t.Cleanup(func() { textHooks = prev })
	// One pixel per byte keeps the arithmetic obvious.
	SetTextRenderer(nil, func(text string, _ int32) int32 { return int32(len(text)) })

	got := wrap("Remove Alice from your friends list?", 0, 20)
	want := []string{"Remove Alice from", "your friends list?"}
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if wrap("   ", 0, 20) != nil {
		t.Fatalf("expected blank text to produce no lines")
	}
}

func TestTruncate(t *testing.T) {
	prev := textHooks
	t.Cleanup(func() { textHooks = prev })
	SetTextRenderer(nil, func(s string, _ int32) int32 { return int32(len(s)) })

	cases := []struct {
		in    string
		width int32
		want  string
	}{
		{"Aldric", 10, "Aldric"},
		{"Bartholomew", 10, "Barthol..."},
		{"Bartholomew", 3, "..."},
		{"Bartholomew", 2, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, 0, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestMix(t *testing.T) {
	a := rl.NewColor(0, 0, 0, 255)
	b := rl.NewColor(200, 100, 50, 255)
	if got := mix(a, b, 0.5); got != rl.NewColor(100, 50, 25, 255) {
		t.Fatalf("unexpected midpoint %+v", got)
	}
	if got := mix(a, b, 3); got != b {
		t.Fatalf("expected t to clamp at 1, got %+v", got)
	}
}
