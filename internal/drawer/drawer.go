// Package drawer implements the navigation drawer toggle. The open/closed
// state lives only in class markers on the drawer, overlay and content
// elements; this package flips them together.
package drawer

import (
	"golang.org/x/net/html"

	"github.com/ziadkadry99/landing/internal/dom"
)

// Selectors the page markup must provide.
const (
	DrawerSelector  = ".drawer"
	OverlaySelector = ".overlay"
	ContentSelector = ".content"
	IconSelector    = ".drawer-icon"
)

// Class markers toggled on click.
const (
	OpenClass        = "open"
	ContentOpenClass = "drawer-open"
)

// Drawer holds the bound elements.
type Drawer struct {
	drawer  *html.Node
	overlay *html.Node
	content *html.Node
	icon    *html.Node
}

// Bind attaches the toggle to explicit element references. Every reference is required.
func Bind(drawerEl, overlay, contentEl, icon *html.Node) (*Drawer, error) {
	for _, el := range []struct {
		node     *html.Node
		selector string
	}{
		{drawerEl, DrawerSelector},
		{overlay, OverlaySelector},
		{contentEl, ContentSelector},
		{icon, IconSelector},
	} {
		if el.node == nil {
			return nil, &dom.MissingElementError{Selector: el.selector}
		}
	}
	return &Drawer{drawer: drawerEl, overlay: overlay, content: contentEl, icon: icon}, nil
}

// BindDocument looks up the drawer elements by their class selectors.
func BindDocument(root *html.Node) (*Drawer, error) {
	var nodes [4]*html.Node
	for i, sel := range []string{DrawerSelector, OverlaySelector, ContentSelector, IconSelector} {
		n, err := dom.Query(root, sel)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, &dom.MissingElementError{Selector: sel}
		}
		nodes[i] = n
	}
	return Bind(nodes[0], nodes[1], nodes[2], nodes[3])
}

// Toggle flips all three markers. Markers that have drifted apart stay apart.
func (d *Drawer) Toggle() {
	dom.ToggleClass(d.drawer, OpenClass)
	dom.ToggleClass(d.overlay, OpenClass)
	dom.ToggleClass(d.content, ContentOpenClass)
}

// Click handles a click on target. Only the menu icon and the overlay (or
// their descendants) toggle the drawer; it reports whether it did.
func (d *Drawer) Click(target *html.Node) bool {
	if !dom.Contains(d.icon, target) && !dom.Contains(d.overlay, target) {
		return false
	}
	d.Toggle()
	return true
}

// IsOpen reports the drawer element's marker.
func (d *Drawer) IsOpen() bool {
	return dom.HasClass(d.drawer, OpenClass)
}

// Script is the browser-side equivalent of Bind plus Click, shipped in the page shell.
const Script = `(function() {
  function bind() {
    var drawer = document.querySelector(".drawer");
    var overlay = document.querySelector(".overlay");
    var content = document.querySelector(".content");
    var icon = document.querySelector(".drawer-icon");
    if (!drawer || !overlay || !content || !icon) {
      console.error("drawer: .drawer, .overlay, .content and .drawer-icon are required");
      return;
    }
    function toggle() {
      drawer.classList.toggle("open");
      overlay.classList.toggle("open");
      content.classList.toggle("drawer-open");
    }
    icon.addEventListener("click", toggle);
    overlay.addEventListener("click", toggle);
  }
  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", bind);
  } else {
    bind();
  }
})();`
