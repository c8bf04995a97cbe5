package services

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func IsImageElement(node *html.Node) bool {
	return node != nil && node.Type == html.ElementNode && node.DataAtom == atom.Img
}

// CollectImageElements lists the image elements under root in document order,
// the same order the metadata images are addressed by.
func CollectImageElements(root *html.Node) []*html.Node {
	var images []*html.Node
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if IsImageElement(node) {
			images = append(images, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return images
}

// RouteContentClick resolves a clicked element to its gallery index. Clicks on
// anything but an image resolve to nothing.
func RouteContentClick(target *html.Node, images []*html.Node) (int, bool) {
	if !IsImageElement(target) {
		return 0, false
	}
	for idx, image := range images {
		if image == target {
			return idx, true
		}
	}
	return 0, false
}

// ResolveElementPath follows element children indexes from root. Text and
// comment nodes are not counted.
func ResolveElementPath(root *html.Node, path []int) (*html.Node, bool) {
	current := root
	for _, want := range path {
		if current == nil || want < 0 {
			return nil, false
		}
		var found *html.Node
		idx := 0
		for child := current.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}
			if idx == want {
				found = child
				break
			}
			idx++
		}
		if found == nil {
			return nil, false
		}
		current = found
	}
	return current, current != nil
}
