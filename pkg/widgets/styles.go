// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/wrgl/txview/pkg/status"
)

var (
	headerStyle   = tcell.StyleDefault.Foreground(tcell.ColorAzure).Bold(true)
	cellStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	disabledStyle = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	accentColor   = mustHex("#4f7cff")
	selectedBg    = toTcell(colorful.Color{}.BlendLab(accentColor, 0.35))

	statusColors = map[status.Class]tcell.Color{
		status.ClassPending: toTcell(mustHex("#f0ad4e")),
		status.ClassSettled: toTcell(mustHex("#5cb85c")),
		status.ClassFailed:  toTcell(mustHex("#d9534f")),
		status.ClassVoided:  toTcell(mustHex("#9e9e9e")),
		status.ClassUnknown: tcell.ColorSlateGray,
	}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// statusStyle is the badge style of a status class
func statusStyle(class status.Class) tcell.Style {
	c, ok := statusColors[class]
	if !ok {
		c = statusColors[status.ClassUnknown]
	}
	return cellStyle.Foreground(c).Bold(true)
}
