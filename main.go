package main

import "github.com/sa6mwa/mkpy/cmd"

func main() {
	cmd.Execute()
}
