package hal

// Color is an RGB565 value, the native format of the panel.
type Color uint16

// Palette used by the screens.
const (
	Black  Color = 0x0000
	Blue   Color = 0x001F
	Red    Color = 0xF800
	Green  Color = 0x07E0
	White  Color = 0xFFFF
	Yellow Color = 0xFFE0
)

// Display is the drawing surface. All calls are fire-and-forget; the
// controller never consumes a return value from the panel.
type Display interface {
	FillScreen(c Color)
	FillRect(x, y, w, h int, c Color)
	// DrawButton renders a rounded button and registers nothing; hit testing
	// is done from the screen tables, not the panel.
	DrawButton(x, y, w, h, radius int, fill, text Color, label string, textSize int)
	SetCursor(x, y int)
	SetTextSize(size int)
	SetTextColor(fg Color)
	SetTextColor2(fg, bg Color)
	Print(s string)
}
