package main

import "rfind/internal/cli"

func main() {
	cli.Execute()
}
