package main

import "github.com/bambangtrikodono-PCE/civil-steel-calculator/cmd"

func main() {
	cmd.Execute()
}
