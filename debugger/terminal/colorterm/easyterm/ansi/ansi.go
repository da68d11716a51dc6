// This file is part of Bensim.
//
// Bensim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bensim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bensim.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines the control sequences used to colour and position text
// on ANSI compatible terminals.
package ansi

import (
	"fmt"
	"strings"
)

var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

var attributes = map[string]int{
	"bold":      1,
	"dim":       2,
	"underline": 4,
	"inverse":   7,
	"normal":    0,
}

// Pens are bright foreground colours, indexed by colour name.
var Pens map[string]string

// DimPens are normal intensity foreground colours, indexed by colour name.
var DimPens map[string]string

// PenStyles are text attributes, indexed by attribute name.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false)

	for c := range colours {
		if c == "normal" {
			continue
		}
		Pens[c], _ = ColorBuild(c, "", "", true)
		DimPens[c], _ = ColorBuild(c, "", "", false)
	}

	for a := range attributes {
		PenStyles[a], _ = ColorBuild("", "", a, false)
	}
}

// ColorBuild creates the CSI sequence for the pen colour, paper colour and
// attribute. Empty strings leave that part of the sequence unspecified. An
// entirely unspecified sequence resets the terminal to normal text.
func ColorBuild(pen string, paper string, attribute string, bright bool) (string, error) {
	var params []string

	if pen != "" {
		c, ok := colours[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		if bright {
			params = append(params, fmt.Sprintf("9%d", c))
		} else {
			params = append(params, fmt.Sprintf("3%d", c))
		}
	}

	if paper != "" {
		c, ok := colours[strings.ToLower(paper)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown paper (%s)", paper)
		}
		params = append(params, fmt.Sprintf("4%d", c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		params = append(params, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(params, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to the most
// recent store.
const CursorRestore = "\033[u"

// CursorHide and CursorShow change the visibility of the cursor.
const (
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
)

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

// CursorUp is the CSI sequence to move the cursor up n lines.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dA", n)
}
