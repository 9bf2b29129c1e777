package overlay

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	DefaultWidth  = 424
	DefaultHeight = 520

	borderThickness = 2
	handleInset     = 4
	handleSize      = 12

	iconSize        = 34
	iconSpacing     = 8
	whisperWidth    = 80
	rowLeftPadding  = 8
	rowRightPadding = 8
	rowHeight       = 50
	rowGap          = 5

	contentTop       = handleSize + 12
	contentTopSpace  = 8
	headerHeight     = 30
	headerGap        = 10
	quickAddWidth    = 350
	quickAddHeight   = 40
	scrollTopPadding = 12
	bottomPadding    = 16
	scrollStep       = 20

	dialogWidth        = 300
	dialogHeight       = 150
	dialogButtonWidth  = 100
	dialogButtonHeight = 40
	dialogButtonGap    = 20
)

// RowLayout places one roster entry. Rect may extend outside the list
// viewport when scrolled; Visible is false when no part of it shows.
type RowLayout struct {
	Name    string
	Rect    rl.Rectangle
	Whisper rl.Rectangle
	Remove  rl.Rectangle
	Visible bool
}

// Layout is the screen-space geometry of the panel for one frame.
type Layout struct {
	Window      rl.Rectangle
	Handle      rl.Rectangle
	Close       rl.Rectangle
	Header      rl.Rectangle
	QuickAdd    rl.Rectangle
	HasQuickAdd bool
	List        rl.Rectangle
	Placeholder rl.Rectangle
	Rows        []RowLayout
	MaxScroll   float32

	Dialog rl.Rectangle
	Yes    rl.Rectangle
	No     rl.Rectangle
}

// ComputeLayout lays out the panel at window with the list scrolled by
// scroll pixels. It has no side effects.
func ComputeLayout(window rl.Rectangle, viewport rl.Vector2, names []string, quickAdd bool, scroll float32) Layout {
	l := Layout{
		Window: window,
		Handle: rl.NewRectangle(window.X+handleInset, window.Y+handleInset, handleSize, handleSize),
		Close: rl.NewRectangle(
			window.X+window.Width-iconSize-iconSpacing,
			window.Y+iconSpacing,
			iconSize,
			iconSize,
		),
		HasQuickAdd: quickAdd,
	}

	top := window.Y + contentTop + contentTopSpace
	l.Header = rl.NewRectangle(window.X, top, window.Width, headerHeight)
	top += headerHeight + headerGap

	if quickAdd {
		w := min(float32(quickAddWidth), window.Width-2*rowLeftPadding)
		l.QuickAdd = rl.NewRectangle(window.X+(window.Width-w)/2, top, w, quickAddHeight)
		top += quickAddHeight + headerGap
	}

	listH := window.Y + window.Height - bottomPadding - top
	if listH < 0 {
		listH = 0
	}
	l.List = rl.NewRectangle(window.X, top, window.Width, listH)

	rowsTop := l.List.Y + scrollTopPadding - scroll
	count := len(names)
	if count == 0 {
		l.Placeholder = rl.NewRectangle(l.List.X+rowLeftPadding, rowsTop, l.List.Width-rowLeftPadding-rowRightPadding, rowHeight)
		count = 1
	}
	content := float32(scrollTopPadding + count*(rowHeight+rowGap))
	l.MaxScroll = max(0, content-l.List.Height)

	l.Rows = make([]RowLayout, 0, len(names))
	for i, name := range names {
		y := rowsTop + float32(i*(rowHeight+rowGap))
		row := rl.NewRectangle(l.List.X+rowLeftPadding, y, l.List.Width-rowLeftPadding-rowRightPadding, rowHeight)
		btnY := y + (rowHeight-iconSize)/2
		removeX := l.List.X + l.List.Width - rowRightPadding - iconSize
		whisperX := removeX - iconSpacing - whisperWidth
		l.Rows = append(l.Rows, RowLayout{
			Name:    name,
			Rect:    row,
			Whisper: rl.NewRectangle(whisperX, btnY, whisperWidth, iconSize),
			Remove:  rl.NewRectangle(removeX, btnY, iconSize, iconSize),
			Visible: row.Y+row.Height > l.List.Y && row.Y < l.List.Y+l.List.Height,
		})
	}

	l.Dialog = rl.NewRectangle((viewport.X-dialogWidth)/2, (viewport.Y-dialogHeight)/2, dialogWidth, dialogHeight)
	buttonsW := float32(2*dialogButtonWidth + dialogButtonGap)
	buttonsX := l.Dialog.X + (dialogWidth-buttonsW)/2
	buttonsY := l.Dialog.Y + dialogHeight - dialogButtonHeight - dialogButtonGap
	l.Yes = rl.NewRectangle(buttonsX, buttonsY, dialogButtonWidth, dialogButtonHeight)
	l.No = rl.NewRectangle(buttonsX+dialogButtonWidth+dialogButtonGap, buttonsY, dialogButtonWidth, dialogButtonHeight)
	return l
}

// ClampToViewport keeps r fully on screen, shrinking it first if it is larger
// than the viewport.
func ClampToViewport(r rl.Rectangle, viewport rl.Vector2) rl.Rectangle {
	if viewport.X <= 0 || viewport.Y <= 0 {
		return r
	}
	r.Width = min(r.Width, viewport.X)
	r.Height = min(r.Height, viewport.Y)
	r.X = clampf(r.X, 0, viewport.X-r.Width)
	r.Y = clampf(r.Y, 0, viewport.Y-r.Height)
	return r
}

func centered(size, viewport rl.Vector2) rl.Rectangle {
	return rl.NewRectangle((viewport.X-size.X)/2, (viewport.Y-size.Y)/2, size.X, size.Y)
}

func center(r rl.Rectangle) rl.Vector2 {
	return rl.NewVector2(r.X+r.Width*0.5, r.Y+r.Height*0.5)
}

func contains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
