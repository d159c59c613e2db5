package encode

import (
	"github.com/fatih/color"
)

// Colors maps display attributes to formatting functions.
type Colors struct {
	Name  func(string, ...any) string
	Hoist func(string, ...any) string
	Ident func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Name:  color.WhiteString,
		Hoist: color.RGB(255, 0, 196).SprintfFunc(),
		Ident: color.RGB(128, 216, 236).SprintfFunc(),
	}
}
