package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for FormGate.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String(`  ______                   _____       _`).Foreground(p.Color("#818cf8"))
	s2 := termenv.String(` |  ____|                 / ____|     | |`).Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(` | |__ ___  _ __ _ __ ___| |  __  __ _| |_ ___`).Foreground(p.Color("#c084fc"))
	s4 := termenv.String(` |  __/ _ \| '__| '_ ' _ \ | |_ |/ _' | __/ _ \`).Foreground(p.Color("#e879f9"))
	s5 := termenv.String(` | | | (_) | |  | | | | | | |__| | (_| | ||  __/`).Foreground(p.Color("#f472b6"))
	s6 := termenv.String(` |_|  \___/|_|  |_| |_| |_|\_____|\__,_|\__\___|`).Foreground(p.Color("#fb7185"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
