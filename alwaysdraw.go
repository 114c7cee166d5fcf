//go:build alwaysdraw

package main

func init() {
	alwaysRedraw = true
	DebugPutsPersist("always draw", "true")
}
