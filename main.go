package main

import "github.com/gaurav-prasanna/charsgen/cmd"

func main() {
	cmd.Execute()
}
