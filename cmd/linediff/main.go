// Command linediff compares two files line by line.
package main

import (
	"os"

	"github.com/codinganovel/linediff/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
