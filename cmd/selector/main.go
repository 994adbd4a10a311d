//go:build js && wasm

// Command selector is the WebAssembly build of the language selector binding.
package main

import (
	"langtool/internal/ui"
)

func main() {
	dom := ui.NewDOM()
	dom.OnReady(func() {
		if err := ui.Bind(dom, ui.DefaultIDs); err != nil {
			panic(err)
		}
	})
	select {}
}
