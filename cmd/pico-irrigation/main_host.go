//go:build !rp2040 && !rp2350

package main

// Host stub; the real main is rp2-only. Use cmd/irrisim on the host.
func main() {
	println("pico-irrigation targets the RP2 family; flash with tinygo, or run cmd/irrisim on the host")
}
