package main

import (
	"fmt"
	"os"

	"github.com/wolfsTail/apkup/internal/cli"
)

func main() {
	code, err := cli.Run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(code)
}
