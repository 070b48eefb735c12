// Package display draws the diagnostic screens: centered rows of text and a
// status icon in the top left corner.
package display

import (
	"image"
	"image/color"

	"github.com/clktmr/agbrtc/drivers/rtc"
	"github.com/clktmr/agbrtc/fonts"
	"github.com/clktmr/agbrtc/scene"
	"github.com/embeddedgo/display/pix"
	"golang.org/x/image/colornames"
)

// Rows are RowHeight pixels apart, row 0 is centered vertically.
const RowHeight = 16

var (
	Background = colornames.Midnightblue
	Foreground = colornames.White
)

var iconColors = [...]color.Color{
	rtc.IconFull:    colornames.Limegreen,
	rtc.IconDead:    colornames.Orange,
	rtc.IconMissing: colornames.Gray,
	rtc.IconError:   colornames.Red,
}

var iconRect = image.Rect(4, 4, 16, 16)

// Screen implements [scene.Screen] on a pix display.
type Screen struct {
	area  *pix.Area
	text  *pix.TextWriter
	face  *fonts.Face
	rows  [scene.BottomRow - scene.TopRow + 1]string
	icon  rtc.Icon
	dirty bool
}

func NewScreen(drv pix.Driver, face *fonts.Face) *Screen {
	disp := pix.NewDisplay(drv)
	area := disp.NewArea(disp.Bounds())
	s := &Screen{
		area:  area,
		text:  area.NewTextWriter(face),
		face:  face,
		dirty: true,
	}
	s.text.SetColor(Foreground)
	return s
}

func (s *Screen) Clear() {
	s.rows = [len(s.rows)]string{}
	s.icon = rtc.IconNone
	s.dirty = true
}

func (s *Screen) Print(row int, str string) {
	if row < scene.TopRow || row > scene.BottomRow {
		return
	}
	if s.rows[row-scene.TopRow] != str {
		s.rows[row-scene.TopRow] = str
		s.dirty = true
	}
}

// Row returns the text of row.
func (s *Screen) Row(row int) string {
	if row < scene.TopRow || row > scene.BottomRow {
		return ""
	}
	return s.rows[row-scene.TopRow]
}

func (s *Screen) SetIcon(icon rtc.Icon) {
	if s.icon != icon {
		s.icon = icon
		s.dirty = true
	}
}

func (s *Screen) Icon() rtc.Icon { return s.icon }

// Flush redraws the screen if anything changed and presents it.
func (s *Screen) Flush() {
	if s.dirty {
		s.draw()
		s.dirty = false
	}
	s.area.Flush()
}

func (s *Screen) draw() {
	bounds := s.area.Bounds()
	s.area.SetColor(Background)
	s.area.Fill(bounds)

	if int(s.icon) < len(iconColors) && iconColors[s.icon] != nil {
		s.area.SetColor(iconColors[s.icon])
		s.area.Fill(iconRect.Add(bounds.Min))
	}

	center := bounds.Min.Add(bounds.Size().Div(2))
	height := int(s.face.Height)
	for i, str := range s.rows {
		if str == "" {
			continue
		}
		row := i + scene.TopRow
		s.text.Pos = image.Pt(
			center.X-s.face.Width(str)/2,
			center.Y+row*RowHeight-height/2,
		)
		s.text.WriteString(str)
	}
}
