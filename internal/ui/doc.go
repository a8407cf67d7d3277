// Package ui implements the Fyne window the download runner drives: a URL
// entry, a trigger button, a tone-colored status line and a progress bar.
// All strings come from Localization.
package ui
