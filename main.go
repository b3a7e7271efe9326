package main

import "github.com/mouse-blink/undercover/cmd"

func main() {
	cmd.Execute()
}
