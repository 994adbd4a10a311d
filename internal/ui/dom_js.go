//go:build js && wasm

package ui

import "syscall/js"

// DOM is the browser document.
type DOM struct {
	doc js.Value
}

func NewDOM() *DOM {
	return &DOM{doc: js.Global().Get("document")}
}

func (d *DOM) ElementByID(id string) (Element, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &domElement{v: v}, true
}

// OnReady runs fn once the document has been parsed.
func (d *DOM) OnReady(fn func()) {
	if d.doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	d.doc.Call("addEventListener", "DOMContentLoaded", cb)
}

type domElement struct {
	v js.Value
}

func (e *domElement) Value() string { return e.v.Get("value").String() }

func (e *domElement) SetText(text string) { e.v.Set("textContent", text) }

// OnClick keeps the callback alive for the lifetime of the page.
func (e *domElement) OnClick(fn func()) {
	e.v.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	}))
}
