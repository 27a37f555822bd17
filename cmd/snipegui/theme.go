package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type appTheme struct{ mode string }

func makeTheme(mode string) fyne.Theme { return &appTheme{mode: mode} }

func (t *appTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	isDark := t.mode == "dark" || v == theme.VariantDark

	switch n {
	case theme.ColorNameForeground:
		if isDark {
			return color.NRGBA{255, 255, 255, 255}
		}
		return color.NRGBA{0, 0, 0, 255}
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		if isDark {
			return color.NRGBA{190, 190, 190, 255}
		}
		return color.NRGBA{90, 90, 90, 255}
	}

	if isDark {
		return theme.DarkTheme().Color(n, v)
	}
	return theme.LightTheme().Color(n, v)
}

func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.mode == "light" {
		return theme.LightTheme().Font(style)
	}
	return theme.DarkTheme().Font(style)
}

func (t *appTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	if t.mode == "light" {
		return theme.LightTheme().Icon(n)
	}
	return theme.DarkTheme().Icon(n)
}

func (t *appTheme) Size(n fyne.ThemeSizeName) float32 {
	if t.mode == "light" {
		return theme.LightTheme().Size(n)
	}
	return theme.DarkTheme().Size(n)
}
