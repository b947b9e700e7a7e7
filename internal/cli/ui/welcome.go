package ui

import (
	"fmt"
	"io"
)

const Version = "0.1.0"

// PrintWelcome выводит заголовок перед обходом
func PrintWelcome(w io.Writer, target string) {
	fmt.Fprintln(w, ColorBold+IconGlobe+" hrm-scraper v"+Version+ColorReset)
	fmt.Fprintln(w, ColorGray+"Выгрузка Admin -> System Users из OrangeHRM"+ColorReset)
	fmt.Fprintln(w, ColorGray+"Цель: "+target+ColorReset)
	fmt.Fprintln(w)
}
