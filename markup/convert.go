package markup

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

var md = goldmark.New(goldmark.WithExtensions(&hoistRefExt{}))

// Convert runs src through the markup converter and maps the result
// onto the closed node vocabulary. The returned slice holds the
// document's top level nodes in order.
func Convert(src []byte) ([]*Node, error) {
	doc := md.Parser().Parse(gtext.NewReader(src))
	res := make([]*Node, 0, doc.ChildCount())
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		n, err := convertBlock(c, src)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func convertBlock(n ast.Node, src []byte) (*Node, error) {
	switch b := n.(type) {
	case *ast.List:
		return convertList(b, src)
	case *ast.Heading:
		if b.Level != 1 {
			return nil, fmt.Errorf("%w: level %d heading", ErrUnsupportedMarkup, b.Level)
		}
		return &Node{Kind: Heading, Text: headingText(b, src)}, nil
	}
	return nil, fmt.Errorf("%w: %s at top level", ErrUnsupportedMarkup, n.Kind())
}

func convertList(l *ast.List, src []byte) (*Node, error) {
	res := &Node{Kind: List}
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		li, ok := c.(*ast.ListItem)
		if !ok {
			return nil, fmt.Errorf("%w: %s in list", ErrUnsupportedMarkup, c.Kind())
		}
		item, err := convertListItem(li, src)
		if err != nil {
			return nil, err
		}
		res.Children = append(res.Children, item)
	}
	return res, nil
}

func convertListItem(li *ast.ListItem, src []byte) (*Node, error) {
	res := &Node{Kind: ListItem}
	for c := li.FirstChild(); c != nil; c = c.NextSibling() {
		switch b := c.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			inl, err := convertInlines(c, src)
			if err != nil {
				return nil, err
			}
			res.Children = append(res.Children, inl...)
		case *ast.List:
			sub, err := convertList(b, src)
			if err != nil {
				return nil, err
			}
			res.Children = append(res.Children, sub)
		default:
			return nil, fmt.Errorf("%w: %s in list item", ErrUnsupportedMarkup, c.Kind())
		}
	}
	return res, nil
}

// convertInlines maps the inline content of one paragraph or text
// block. Adjacent text segments merge into one Text node; a soft or
// hard line break ends the current run, so text on separate lines
// yields separate Text nodes.
func convertInlines(block ast.Node, src []byte) ([]*Node, error) {
	var res []*Node
	var buf strings.Builder
	endRun := func() {
		t := buf.String()
		buf.Reset()
		if strings.TrimSpace(t) == "" {
			return
		}
		res = append(res, &Node{Kind: Text, Text: t})
	}
	for c := block.FirstChild(); c != nil; c = c.NextSibling() {
		switch inl := c.(type) {
		case *ast.Text:
			buf.Write(inl.Segment.Value(src))
			if inl.SoftLineBreak() || inl.HardLineBreak() {
				endRun()
			}
		case *ast.String:
			buf.Write(inl.Value)
		case *ast.Link:
			endRun()
			res = append(res, &Node{Kind: Link, Dest: string(inl.Destination)})
		case *hoistRefNode:
			endRun()
			res = append(res, &Node{Kind: HoistRef, Text: inl.name})
		default:
			return nil, fmt.Errorf("%w: %s inline", ErrUnsupportedMarkup, c.Kind())
		}
	}
	endRun()
	return res, nil
}

// headingText gathers the heading's literal text. A hoist reference
// inside a heading contributes its inner name, so names that happen
// to look like [[#...]] still round trip.
func headingText(h *ast.Heading, src []byte) string {
	var buf strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		switch inl := c.(type) {
		case *ast.Text:
			buf.Write(inl.Segment.Value(src))
		case *ast.String:
			buf.Write(inl.Value)
		case *hoistRefNode:
			buf.WriteString("[[#")
			buf.WriteString(inl.name)
			buf.WriteString("]]")
		}
	}
	return buf.String()
}
