package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// PlainText extracts a readable text rendition from rendered resume HTML:
// one line per heading, entry and paragraph, with blank lines between
// sections.
func PlainText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &RenderError{Format: FormatText, Message: "failed to parse HTML", Cause: err}
	}
	doc.Find("style, script, img").Remove()

	var sb strings.Builder
	writeLine := func(s string) {
		if s = collapse(s); s != "" {
			sb.WriteString(s)
			sb.WriteString("\n")
		}
	}

	header := doc.Find("header")
	writeLine(header.Find("h1").Text())
	writeLine(header.Find(".designation").Text())
	contacts := header.Find(".contact li").Map(func(_ int, s *goquery.Selection) string {
		return collapse(s.Text())
	})
	writeLine(strings.Join(contacts, " | "))

	doc.Find("section").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString("\n")
		writeLine(strings.ToUpper(s.Find("h2").First().Text()))
		entries := s.Find(".entry")
		if entries.Length() == 0 {
			s.Find("p").Each(func(_ int, p *goquery.Selection) { writeLine(p.Text()) })
			return
		}
		entries.Each(func(_ int, e *goquery.Selection) {
			writeLine(e.Clone().Find(".meta, p").Remove().End().Text())
			e.Find(".meta").Each(func(_ int, m *goquery.Selection) { writeLine(m.Text()) })
			e.Find("p").Each(func(_ int, p *goquery.Selection) { writeLine(p.Text()) })
		})
	})
	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

// RenderText renders d as plain text.
func RenderText(d types.Draft) (string, error) {
	html, err := RenderHTML(d)
	if err != nil {
		return "", err
	}
	return PlainText(html)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
