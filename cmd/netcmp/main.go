package main

import (
	"fmt"
	"os"

	"netcompare/cmd/netcmp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
