package main

import (
	"fmt"
	"os"

	"wdlfront/colors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		colors.RED.Println(err)
		fmt.Fprintln(os.Stderr, "")
		os.Exit(1)
	}
}
