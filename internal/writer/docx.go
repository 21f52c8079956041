package writer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// WriteReport renders all records of a run into a single styled docx
// document: one section per item with timings, the transcript when present, and
// the LLM response with basic markdown formatting applied.
func (w *implWriter) WriteReport(records []*Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), "Batch Processing Report", true, 16)

	for _, rec := range records {
		doc.AddParagraph("")

		name := strings.TrimSuffix(filepath.Base(rec.Source), filepath.Ext(rec.Source))
		addStyledRun(doc.AddParagraph(""), name, true, 15)

		if rec.Transcript != "" {
			timing := fmt.Sprintf("Transcription Time: %.2f seconds", rec.TranscriptionTime.Seconds())
			addStyledRun(doc.AddParagraph(""), timing, false, fontSize)
			addRichText(doc.AddParagraph(""), rec.Transcript)
		}

		timing := fmt.Sprintf("Response Generation Time: %.2f seconds", rec.ResponseTime.Seconds())
		addStyledRun(doc.AddParagraph(""), timing, false, fontSize)

		addMarkdown(doc, rec.Response)
	}

	path := filepath.Join(w.runDir, "report.docx")
	if err := doc.SaveTo(path); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}

// addMarkdown renders markdown-ish LLM output line by line: headings,
// bullets, and bold inline runs.
func addMarkdown(doc *docx.RootDoc, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			clean := cleanMarkdownInline(part)
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			clean := cleanMarkdownInline(matches[i][1])
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
