package main

import (
	"fmt"
	"strings"

	"stickynotes/notes/client/ui"
)

// colorNames maps friendly names onto the palette, in palette order.
var colorNames = []string{"blue", "green", "amber", "red", "purple", "orange"}

// resolveColor accepts a palette name or hex value.
func resolveColor(value string) (string, error) {
	for i, name := range colorNames {
		if strings.EqualFold(value, name) || strings.EqualFold(value, ui.Palette[i]) {
			return ui.Palette[i], nil
		}
	}
	return "", fmt.Errorf("unknown color %q (choose one of %s)", value, strings.Join(colorNames, ", "))
}

func colorName(hex string) string {
	for i, c := range ui.Palette {
		if strings.EqualFold(c, hex) {
			return colorNames[i]
		}
	}
	return hex
}
