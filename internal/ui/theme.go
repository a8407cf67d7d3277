package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// QuickTheme is the default theme with tone colors that read well on both
// variants and slightly tighter spacing for a small window
type QuickTheme struct{}

var _ fyne.Theme = (*QuickTheme)(nil)

// NewQuickTheme creates the application theme
func NewQuickTheme() fyne.Theme {
	return &QuickTheme{}
}

// Color returns theme colors
func (t *QuickTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		if variant == theme.VariantDark {
			return color.RGBA{R: 102, G: 187, B: 106, A: 255}
		}
		return color.RGBA{R: 46, G: 125, B: 50, A: 255}
	case theme.ColorNameError:
		if variant == theme.VariantDark {
			return color.RGBA{R: 239, G: 83, B: 80, A: 255}
		}
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 202, B: 40, A: 255}
		}
		return color.RGBA{R: 230, G: 126, B: 0, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 204, G: 0, B: 0, A: 255} // YouTube red
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *QuickTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *QuickTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *QuickTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
