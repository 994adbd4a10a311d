// Package ui binds the language selector page: clicking the convert button
// copies the selected language into the output element.
package ui

import "fmt"

// Element is the part of a DOM element the binding touches.
type Element interface {
	Value() string
	SetText(text string)
	OnClick(fn func())
}

// Document looks elements up by id.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// IDs names the three elements of the page.
type IDs struct {
	Select string
	Button string
	Output string
}

// DefaultIDs are the ids used by the embedded page.
var DefaultIDs = IDs{
	Select: "languageSelect",
	Button: "convertButton",
	Output: "outputDiv",
}

// MissingElementError is returned by Bind when an element is not on the page.
type MissingElementError struct {
	ID string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("ui: element #%s not found", e.ID)
}

// Bind registers the click handler. It fails when any of the elements is
// missing, before anything is registered.
func Bind(doc Document, ids IDs) error {
	elems := make(map[string]Element, 3)
	for _, id := range []string{ids.Select, ids.Button, ids.Output} {
		el, ok := doc.ElementByID(id)
		if !ok {
			return &MissingElementError{ID: id}
		}
		elems[id] = el
	}
	sel, out := elems[ids.Select], elems[ids.Output]
	elems[ids.Button].OnClick(func() {
		out.SetText(sel.Value())
	})
	return nil
}
