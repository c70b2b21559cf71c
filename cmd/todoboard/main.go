package main

import (
	"os"

	"github.com/idilsaglam/todoboard/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
