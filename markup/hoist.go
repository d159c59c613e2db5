package markup

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// hoistRefNode is the markup AST node for a [[#Name]] token.
type hoistRefNode struct {
	ast.BaseInline
	name string
}

var kindHoistRef = ast.NewNodeKind("HoistRef")

func (n *hoistRefNode) Kind() ast.NodeKind {
	return kindHoistRef
}

func (n *hoistRefNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": n.name}, nil)
}

type hoistRefParser struct{}

func (p *hoistRefParser) Trigger() []byte {
	return []byte{'['}
}

func (p *hoistRefParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, []byte("[[#")) {
		return nil
	}
	end := bytes.Index(line, []byte("]]"))
	if end < 3 {
		return nil
	}
	name := string(line[3:end])
	block.Advance(end + 2)
	return &hoistRefNode{name: name}
}

type hoistRefExt struct{}

func (e *hoistRefExt) Extend(m goldmark.Markdown) {
	// below the standard link parser so [[# wins over [
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&hoistRefParser{}, 150),
	))
}
