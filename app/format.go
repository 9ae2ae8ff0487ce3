package main

import (
	"bytes"
	"html"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
)

// renderMarkdown converts user-authored markdown to HTML for app.Raw. On a
// conversion failure the raw text is escaped and shown as a paragraph.
func renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return buf.String()
}

// relTime renders a server RFC3339 timestamp as "3 minutes ago". Unparseable
// input is shown as-is.
func relTime(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return humanize.Time(t)
}

func money(amount float64) string {
	return "₹" + humanize.CommafWithDigits(amount, 0)
}
