package encode

import (
	"strings"

	"github.com/liveview-native/core-go/dom"

	"github.com/fatih/color"
)

type Colorable struct {
	Type dom.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	NamespaceColor
	AttrNameColor
	AttrValueColor
	TextColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	able := Colorable{Type: dom.ElementType}
	able.Attr = TagColor
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	able.Attr = NamespaceColor
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Attr = AttrNameColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = AttrValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()

	able.Type = dom.LeafType
	able.Attr = TextColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t dom.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t dom.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
