package main

import "github.com/alienzj/centroFlye/cmd"

func main() {
	cmd.Execute()
}
