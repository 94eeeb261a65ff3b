package main

import "github.com/zft5024/manus-aicad/cmd"

func main() {
	cmd.Execute()
}
