package chart

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// palette follows the usual ten-colour categorical cycle.
var palette = [][3]int{
	{0x1f, 0x77, 0xb4},
	{0xff, 0x7f, 0x0e},
	{0x2c, 0xa0, 0x2c},
	{0xd6, 0x27, 0x28},
	{0x94, 0x67, 0xbd},
	{0x8c, 0x56, 0x4b},
	{0xe3, 0x77, 0xc2},
	{0x7f, 0x7f, 0x7f},
	{0xbc, 0xbd, 0x22},
	{0x17, 0xbe, 0xcf},
}

func paletteRGB(i int) (int, int, int) {
	c := palette[i%len(palette)]
	return c[0], c[1], c[2]
}

func paletteColor(i int) lipgloss.Color {
	r, g, b := paletteRGB(i)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

type styles struct {
	title  lipgloss.Style
	disc   lipgloss.Style
	legend lipgloss.Style
	label  lipgloss.Style
	meta   lipgloss.Style
	other  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).MarginBottom(1),
		disc:   lipgloss.NewStyle().MarginLeft(2),
		legend: lipgloss.NewStyle().MarginTop(1),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		other:  lipgloss.NewStyle().Faint(true),
	}
}

func (s styles) wedge(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(paletteColor(i))
}
