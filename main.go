package main

import "github.com/ByLCY/gryd/cmd"

func main() {
	cmd.Execute()
}
