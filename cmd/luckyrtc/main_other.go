//go:build !gameboyadvance

package main

import "log"

func main() {
	log.Default().SetFlags(0)
	log.Fatalln("luckyrtc runs on the console only, try rtcsim on the host")
}
