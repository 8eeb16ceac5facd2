package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	_ "github.com/lib/pq"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
