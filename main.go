package main

import "github.com/Manu343726/sim8086/cmd"

func main() {
	cmd.Execute()
}
