package main

import (
	"os"

	"github.com/sagerenn/lexi/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
