package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/polynizer/fretpath/config"
)

type colorMode string

const (
	colorModeAuto colorMode = config.ColorAuto
	colorModeOn   colorMode = config.ColorOn
	colorModeOff  colorMode = config.ColorOff
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on":
		return colorModeOn, nil
	case "off":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func shouldColor(mode colorMode) bool {
	switch mode {
	case colorModeOn:
		return true
	case colorModeOff:
		return false
	default:
		return isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == ""
	}
}
