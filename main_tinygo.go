//go:build tinygo

package main

import (
	"tuner/app"
	"tuner/hal"
)

func main() {
	app.Run(hal.New())
}
