package main

import (
	"fmt"
	"os"

	"github.com/Neev4n/eish/internal/cli"
)

func main() {

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eish:", err)
		os.Exit(1)
	}

}
