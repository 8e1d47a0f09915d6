package ui

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/coinrush/internal/world"
)

var (
	wallColor   = color.FgDarkGray
	floorColor  = color.FgWhite
	coinColor   = color.Style{color.FgYellow, color.OpBold}
	avatarColor = color.Style{color.FgRed, color.OpBold}
)

// WriteASCII prints the grid with the top row first, one line per row.
// When colored is set, tiles are wrapped in ANSI color codes.
func WriteASCII(w io.Writer, grid *world.Grid, colored bool) error {
	bw := bufio.NewWriter(w)
	for y := grid.Height() - 1; y >= 0; y-- {
		for x := 0; x < grid.Width(); x++ {
			bw.WriteString(glyph(grid.At(x, y), colored))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func glyph(t world.Tile, colored bool) string {
	s := string(t.Rune())
	if !colored {
		return s
	}
	switch t {
	case world.TileWall:
		return wallColor.Sprint(s)
	case world.TileFloor:
		return floorColor.Sprint(s)
	case world.TileCoin:
		return coinColor.Sprint(s)
	case world.TileAvatar:
		return avatarColor.Sprint(s)
	default:
		return s
	}
}
