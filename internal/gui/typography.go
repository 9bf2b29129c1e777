package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/friendlist/internal/ui/theme"
)

const fontBakeSize = 32

var fontFiles = []string{"Inter-Regular.ttf", "NotoSans-Regular.ttf"}

// typeScale is shared with the theme so overlay widgets and host panels agree
// on sizes.
var typeScale = uitheme.Type

// uiFont is the font every host label goes through. The zero value draws
// with raylib's built-in font.
type uiFont struct {
	font   rl.Font
	loaded bool
}

var activeFont uiFont

func initTypography() {
	activeFont = uiFont{font: rl.GetFontDefault()}
	for _, path := range fontSearchPaths() {
		if f, ok := loadFont(path); ok {
			activeFont = uiFont{font: f, loaded: true}
			break
		}
	}
	rl.SetTextureFilter(activeFont.font.Texture, rl.FilterBilinear)
	uitheme.SetTextRenderer(drawText, measureText)
}

func shutdownTypography() {
	if activeFont.loaded {
		rl.UnloadFont(activeFont.font)
	}
	activeFont = uiFont{}
}

// fontSearchPaths lists assets/fonts under the working directory first, then
// next to the executable.
func fontSearchPaths() []string {
	roots := []string{"."}
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Dir(exe))
	}
	var paths []string
	for _, root := range roots {
		for _, name := range fontFiles {
			paths = append(paths, filepath.Join(root, "assets", "fonts", name))
		}
	}
	return paths
}

func loadFont(path string) (rl.Font, bool) {
	if _, err := os.Stat(path); err != nil {
		return rl.Font{}, false
	}
	f := rl.LoadFontEx(path, fontBakeSize, nil, 0)
	return f, f.Texture.ID != 0
}

func drawText(text string, x, y, size int32, clr rl.Color) {
	if !activeFont.loaded {
		rl.DrawText(text, x, y, size, clr)
		return
	}
	rl.DrawTextEx(activeFont.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, clr)
}

func measureText(text string, size int32) int32 {
	if !activeFont.loaded {
		return rl.MeasureText(text, size)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(activeFont.font, text, float32(size), 1).X)))
}

func textLineHeight(size int32) int32 {
	return int32(math.Round(float64(max(size, 1)) * float64(typeScale.LineFactor)))
}
