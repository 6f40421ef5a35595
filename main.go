package main

import "github.com/eliabieri/wg-display-widget-public-transport/cmd"

func main() {
	cmd.Execute()
}
