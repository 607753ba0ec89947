package main

import "github.com/mouse-blink/hooklens/cmd"

func main() {
	cmd.Execute()
}
