package main

import "hearth/cmd"

func main() {
	cmd.Execute()
}
