package main

import "stringskit/internal/cli"

func main() {
	cli.Execute()
}
