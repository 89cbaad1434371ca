package formatter

import (
	"fmt"
	"path"
	"strings"
)

// Resolution describes where an identifier points in the asset tree.
type Resolution struct {
	Identifier string
	Domain     string
	Path       string
	File       string
}

// ImageEmbed returns a markdown image tag for a reference returned by the
// loader's save operations. An empty alt text falls back to the file's base
// name without extension.
func ImageEmbed(alt, ref string) string {
	if alt == "" {
		base := path.Base(ref)
		alt = strings.TrimSuffix(base, path.Ext(base))
	}
	return fmt.Sprintf("![%s](%s)", escape(alt), ref)
}

// ToMarkdown renders resolutions as a markdown table.
func ToMarkdown(rows []Resolution) string {
	var sb strings.Builder

	sb.WriteString("| Identifier | Domain | Path | File |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | `%s` |\n",
			r.Identifier, escape(r.Domain), escape(r.Path), r.File))
	}

	return sb.String()
}

// escape protects characters that would break a table cell or image tag.
func escape(s string) string {
	r := strings.NewReplacer("|", `\|`, "[", `\[`, "]", `\]`)
	return r.Replace(s)
}
