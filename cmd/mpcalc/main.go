package main

import (
	"os"

	"github.com/db47h/mpfloat/cmd/mpcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
