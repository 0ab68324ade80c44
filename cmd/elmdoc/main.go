package main

import (
	"os"

	"github.com/dsimunic/elm-wrap-sub004/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
