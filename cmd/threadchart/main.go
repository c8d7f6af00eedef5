package main

import (
	"fmt"
	"os"

	"github.com/thiagonache/threadchart"
)

func main() {
	if err := threadchart.RunCLI(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
