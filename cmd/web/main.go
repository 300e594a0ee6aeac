package main

import "research_connect/internal/app"

func main() {
	app.Run()
}
