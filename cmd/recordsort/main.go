package main

import "github.com/aalvaropc/recordsort/internal/cli"

func main() {
	cli.Execute()
}
