package main

import "github.com/gaurav-prasanna/pagesum/cmd"

func main() {
	cmd.Execute()
}
