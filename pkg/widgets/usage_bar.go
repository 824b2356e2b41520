// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

var (
	errCombinedColumnWidths = fmt.Errorf("combined column widths greater than total width")
)

// KeyBinding is one entry of a usage bar
type KeyBinding struct {
	Key         string
	Description string
}

// TableUsage lists the key bindings of the transaction table
var TableUsage = []KeyBinding{
	{"j/k", "Down/Up"},
	{"space", "Toggle row"},
	{"a", "Toggle all"},
	{"1-7", "Sort by column"},
	{"v", "Void selected"},
	{"q", "Quit"},
}

// UsageBar lays key bindings out in aligned columns, wrapping onto more rows
// when the screen is too narrow.
type UsageBar struct {
	*tview.TextView
	strs           []string
	widths         []int
	margin         int
	colWidths      []int
	lastTotalWidth int
	height         int
}

func NewUsageBar(bindings []KeyBinding, margin int) *UsageBar {
	n := len(bindings)
	u := &UsageBar{
		TextView: tview.NewTextView().
			SetDynamicColors(true),
		strs:      make([]string, n),
		widths:    make([]int, n),
		margin:    margin,
		colWidths: []int{},
	}
	for i, b := range bindings {
		u.strs[i] = fmt.Sprintf("[black:white] %s [white:black] %s", tview.Escape(b.Key), tview.Escape(b.Description))
		u.widths[i] = runewidth.StringWidth(b.Key) + runewidth.StringWidth(b.Description) + 3
	}
	return u
}

func (b *UsageBar) setMaxColWidth(col, width, totalWidth int) error {
	if len(b.colWidths) <= col {
		b.colWidths = append(b.colWidths, width)
	}
	if b.colWidths[col] < width {
		b.colWidths[col] = width
		sum := b.colWidths[0]
		for _, n := range b.colWidths[1:] {
			sum += n + b.margin
		}
		if sum > totalWidth {
			return errCombinedColumnWidths
		}
	}
	return nil
}

// computeColumnWidths fills the first row greedily, then wraps every
// remaining entry into the columns found so far.
func (b *UsageBar) computeColumnWidths(totalWidth, maxColumn int) error {
	rem := totalWidth
	col := 0
	b.colWidths = b.colWidths[:0]
	for _, w := range b.widths {
		wrap := col > maxColumn ||
			(rem > 0 && w+b.margin > rem) ||
			(rem == 0 && col >= len(b.colWidths))
		if wrap {
			col = 0
			rem = 0
		}
		if err := b.setMaxColWidth(col, w, totalWidth); err != nil {
			return err
		}
		if rem > 0 {
			rem -= b.colWidths[col] + b.margin
		}
		col++
	}
	return nil
}

func (b *UsageBar) printRows(totalWidth int) {
	maxColumn := len(b.widths) - 1
	for {
		err := b.computeColumnWidths(totalWidth, maxColumn)
		if err == nil || len(b.colWidths) == 1 {
			break
		}
		maxColumn = len(b.colWidths) - 2
	}
	b.TextView.Clear()
	sep := strings.Repeat(" ", b.margin)
	col := 0
	row := []string{}
	b.height = 0
	for i, s := range b.strs {
		if col >= len(b.colWidths) {
			fmt.Fprintln(b.TextView, strings.Join(row, sep))
			fmt.Fprintln(b.TextView, "")
			row = row[:0]
			col = 0
			b.height += 2
		}
		spaces := b.colWidths[col] - b.widths[i]
		if spaces < 0 {
			spaces = 0
		}
		row = append(row, s+strings.Repeat(" ", spaces))
		col++
	}
	fmt.Fprint(b.TextView, strings.Join(row, sep))
	b.height++
}

// Height is the number of lines needed at the last drawn width
func (b *UsageBar) Height() int {
	return b.height
}

func (b *UsageBar) BeforeDraw(screen tcell.Screen, flex *tview.Flex) {
	_, _, width, _ := b.GetInnerRect()
	if width != b.lastTotalWidth {
		b.printRows(width)
		b.lastTotalWidth = width
	}
	flex.ResizeItem(b, b.height, 1)
}
