package main

import (
	"os"

	"github.com/calvess/dateexpr/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
