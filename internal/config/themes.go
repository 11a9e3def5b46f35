package config

// Themes lists the accepted theme names, in display order.
var Themes = []string{"oled-blue", "oled-white", "lcd-green", "lcd-blue", "lcd-white", "mono"}

// KnownTheme reports whether name is one of Themes.
func KnownTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
