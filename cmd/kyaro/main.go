package main

import (
	"os"

	"github.com/hnrie/Laminax-KPL/cmd/kyaro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
