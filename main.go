package main

import "tcat/cmd"

func main() {
	cmd.Execute()
}
