package main

import "github.com/goles-cfd/goles/cmd"

func main() {
	cmd.Execute()
}
