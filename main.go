// main.go
package main

import "board-game-reviews/cmd"

func main() {
	cmd.Execute()
}
