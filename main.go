package main

import "github.com/cwel/waybarctl/cmd"

func main() {
	cmd.Execute()
}
