// Command nciscan is the command-line molecular interaction analyzer.
package main

import (
	"os"

	"github.com/xtalgeom/nciscan/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Execute())
}
