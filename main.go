package main

import "github.com/sabiaka/midi-original-track-harmony-separator/cmd"

func main() {
	cmd.Execute()
}
