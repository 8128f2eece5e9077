package pipeline

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhillyerd/enmime"
	pdf "github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"freightquote/internal/util"
)

// InboundEmail is the plain-text view of a raw message. Body holds the text
// part (or the HTML part flattened to text) followed by the text of readable
// attachments.
type InboundEmail struct {
	Subject     string   `json:"subject"`
	Sender      string   `json:"sender"`
	Body        string   `json:"body"`
	Attachments []string `json:"attachments,omitempty"`
}

func ParseEmail(raw []byte) (InboundEmail, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return InboundEmail{}, err
	}

	out := InboundEmail{Subject: env.GetHeader("Subject")}
	if from, err := env.AddressList("From"); err == nil && len(from) > 0 {
		out.Sender = from[0].Address
	}

	sections := []string{}
	switch {
	case strings.TrimSpace(env.Text) != "":
		sections = append(sections, strings.Join(util.SplitLines(env.Text), "\n"))
	case env.HTML != "":
		sections = append(sections, htmlToText(env.HTML))
	}

	for _, att := range env.Attachments {
		filename := strings.TrimSpace(att.FileName)
		if filename == "" {
			filename = "attachment"
		}
		out.Attachments = append(out.Attachments, filename)

		lower := strings.ToLower(filename)
		var text string
		switch {
		case strings.HasSuffix(lower, ".pdf"):
			text, err = pdfText(att.Content)
		case strings.HasSuffix(lower, ".xlsx"):
			text, err = xlsxText(att.Content)
		case strings.HasSuffix(lower, ".txt"):
			text = string(att.Content)
		default:
			continue
		}
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		sections = append(sections, "["+filename+"]\n"+strings.Join(util.SplitLines(text), "\n"))
	}

	out.Body = strings.Join(sections, "\n\n")
	return out, nil
}

// htmlToText keeps one line per block element and table row.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script,style,head").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("td,th").AppendHtml(" | ")
	doc.Find("p,div,tr,li,h1,h2,h3,h4,table").AppendHtml("\n")

	lines := []string{}
	for _, line := range util.SplitLines(doc.Text()) {
		line = strings.TrimSuffix(util.NormalizeSpaces(line), "|")
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func pdfText(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}
	pages := []string{}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

func xlsxText(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	defer f.Close()

	lines := []string{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, c := range row {
				if c = util.NormalizeSpaces(c); c != "" {
					cells = append(cells, c)
				}
			}
			if len(cells) > 0 {
				lines = append(lines, strings.Join(cells, " | "))
			}
		}
	}
	return strings.Join(lines, "\n"), nil
}
