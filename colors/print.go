package colors

import "fmt"

// Sprint wraps args in the color's escape code, resetting afterward.
func (c COLOR) Sprint(args ...any) string {
	return string(c) + fmt.Sprint(args...) + string(RESET)
}

// Sprintf is Sprint with a format string.
func (c COLOR) Sprintf(format string, args ...any) string {
	return string(c) + fmt.Sprintf(format, args...) + string(RESET)
}

// Print writes colored args to stdout.
func (c COLOR) Print(args ...any) {
	fmt.Print(c.Sprint(args...))
}

// Println writes colored args to stdout followed by a newline.
func (c COLOR) Println(args ...any) {
	fmt.Println(c.Sprint(args...))
}

// Printf writes a colored formatted string to stdout.
func (c COLOR) Printf(format string, args ...any) {
	fmt.Print(c.Sprintf(format, args...))
}
