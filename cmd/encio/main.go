package main

import "github.com/gotvc/encio/src/enccmd"

func main() {
	enccmd.Main()
}
