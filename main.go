package main

import "github.com/Samwelabuyeka/hallpass-hq-sub000/cmd"

func main() {
	cmd.Execute()
}
