package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is the minimal highlighting style docu falls back on.
// Code keeps the page's colors; only comments and strings stand out.
// Templates may request it from the style registry by name.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:       "italic #6a737d",
	chroma.LiteralString: "#032f62",
	chroma.PreWrapper:    "bg:#f6f8fa",
	chroma.Background:    "bg:#f6f8fa",
})

func init() {
	styles.Register(PlainStyle)
}
