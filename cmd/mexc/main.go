package main

import (
	"github.com/c9s/mexcgo/pkg/cmd"
)

func main() {
	cmd.Execute()
}
