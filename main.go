package main

import "github.com/itsmostafa/gofunge/cmd"

func main() {
	cmd.Execute()
}
