package main

import "github.com/nathanhack/stabilizer/cmd"

func main() {
	cmd.Execute()
}
