package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}
	style.Format.Header = text.FormatUpper
	return &style
}

// NewTableWriter returns a table writer rendering to w with the default style.
func NewTableWriter(w io.Writer, title string, header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*NewDefaultTableStyle())
	if len(title) > 0 {
		t.SetTitle(title)
	}

	if len(header) > 0 {
		t.AppendHeader(table.Row(header))
	}

	return t
}

// SideColor colors a BUY/SELL side string.
func SideColor(side string) string {
	switch side {
	case "BUY":
		return text.FgGreen.Sprint(side)
	case "SELL":
		return text.FgRed.Sprint(side)
	}

	return side
}
