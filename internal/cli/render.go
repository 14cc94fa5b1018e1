package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/seabattle-go/internal/model"
)

// Board glyphs
const (
	GlyphEmpty   = "0"
	GlyphShip    = "■"
	GlyphContour = "K"
	GlyphHit     = "X"
	GlyphShot    = "T"
)

// Glyph returns how a cell is drawn. Hidden boards show unshot ships and contour as empty.
func Glyph(state model.CellState, hidden bool) string {
	switch state {
	case model.CellShip:
		if hidden {
			return GlyphEmpty
		}
		return GlyphShip
	case model.CellContour:
		if hidden {
			return GlyphEmpty
		}
		return GlyphContour
	case model.CellHit:
		return GlyphHit
	case model.CellMiss, model.CellSunkContour:
		return GlyphShot
	default:
		return GlyphEmpty
	}
}

// RenderRows returns one string of glyphs per board row
func RenderRows(b *model.Board, hidden bool) []string {
	cells := b.Cells()
	rows := make([]string, len(cells))
	for i, row := range cells {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(Glyph(cell, hidden))
		}
		rows[i] = sb.String()
	}
	return rows
}

// RenderBoard draws the board with 1-based row and column labels
func RenderBoard(w io.Writer, b *model.Board, hidden bool) {
	labels := make([]string, b.Size())
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	fmt.Fprintln(w, "   "+strings.Join(labels, "   "))

	for i, row := range b.Cells() {
		glyphs := make([]string, len(row))
		for j, cell := range row {
			glyphs[j] = Glyph(cell, hidden)
		}
		fmt.Fprintf(w, "%d |%s|\n", i+1, strings.Join(glyphs, "| |"))
	}
}

// Greeting explains the glyphs before the first game
func Greeting(w io.Writer) {
	fmt.Fprintln(w, "Welcome to Sea Battle! Good luck!")
	fmt.Fprintf(w, "'%s' - empty cell\n", GlyphEmpty)
	fmt.Fprintf(w, "'%s' - your ship\n", GlyphShip)
	fmt.Fprintf(w, "'%s' - contour around your ship\n", GlyphContour)
	fmt.Fprintf(w, "'%s' - hit ship\n", GlyphHit)
	fmt.Fprintf(w, "'%s' - cells already shot, including the contour of sunk ships\n", GlyphShot)
}

// resultMessage is the line printed after a shot
func resultMessage(result model.ShotResult) string {
	switch result {
	case model.ShotHit:
		return "Hit!"
	case model.ShotSunk:
		return "Ship sunk!"
	default:
		return "Miss"
	}
}
