package main

import "github.com/njoroge/campus-share/cmd"

func main() {
	cmd.Execute()
}
