package exports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/Sjking2025/resume-builder-pro/internal/imports"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 5.5
)

// RenderPDF lays out a record as a single-column A4 resume.
func RenderPDF(rec imports.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 16, 18)
	pdf.SetAutoPageBreak(true, 16)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r := &renderer{pdf: pdf, tr: tr}
	r.header(rec.PersonalInfo)

	if s := strings.TrimSpace(rec.PersonalInfo.Summary); s != "" {
		r.section("Summary")
		r.paragraph(s)
	}

	if len(rec.Experience) > 0 {
		r.section("Experience")
		for _, item := range rec.Experience {
			r.entry(
				joinNonEmpty(" - ", imports.EntryField(item, "title"), imports.EntryField(item, "company")),
				joinNonEmpty(" | ", imports.EntryField(item, "location"), dateRange(item)),
				imports.EntryField(item, "description"),
			)
		}
	}

	if len(rec.Education) > 0 {
		r.section("Education")
		for _, item := range rec.Education {
			degree := joinNonEmpty(" in ", imports.EntryField(item, "degree"), imports.EntryField(item, "field"))
			gpa := imports.EntryField(item, "gpa")
			if gpa != "" {
				gpa = "GPA " + gpa
			}
			r.entry(
				joinNonEmpty(" - ", degree, imports.EntryField(item, "institution")),
				joinNonEmpty(" | ", imports.EntryField(item, "location"), imports.EntryField(item, "graduationDate"), gpa),
				"",
			)
		}
	}

	if len(rec.Projects) > 0 {
		r.section("Projects")
		for _, item := range rec.Projects {
			r.entry(
				imports.EntryField(item, "name"),
				joinNonEmpty(" | ", imports.EntryField(item, "technologies"), imports.EntryField(item, "link")),
				imports.EntryField(item, "description"),
			)
		}
	}

	if skills := rec.Skills; len(skills.Technical)+len(skills.Soft)+len(skills.Languages) > 0 {
		r.section("Skills")
		r.labeled("Technical", skills.Technical)
		r.labeled("Soft", skills.Soft)
		r.labeled("Languages", skills.Languages)
	}

	if len(rec.Achievements) > 0 {
		r.section("Achievements")
		for _, item := range rec.Achievements {
			if s, ok := item.(string); ok {
				r.entry(s, "", "")
				continue
			}
			r.entry(
				imports.EntryField(item, "title"),
				imports.EntryField(item, "date"),
				imports.EntryField(item, "description"),
			)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type renderer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (r *renderer) header(pi imports.PersonalInfo) {
	if name := strings.TrimSpace(pi.FullName); name != "" {
		r.pdf.SetFont(fontFamily, "B", 18)
		r.pdf.CellFormat(0, 9, r.tr(name), "", 1, "L", false, 0, "")
	}
	contact := joinNonEmpty(" | ", pi.Email, pi.Phone, pi.Location)
	links := joinNonEmpty(" | ", pi.LinkedIn, pi.GitHub, pi.Portfolio)
	r.pdf.SetFont(fontFamily, "", 10)
	for _, line := range []string{contact, links} {
		if line != "" {
			r.pdf.MultiCell(0, lineHeight, r.tr(line), "", "L", false)
		}
	}
}

func (r *renderer) section(title string) {
	r.pdf.Ln(3)
	r.pdf.SetFont(fontFamily, "B", 13)
	r.pdf.CellFormat(0, 7, r.tr(title), "B", 1, "L", false, 0, "")
	r.pdf.Ln(1)
}

func (r *renderer) entry(title, meta, body string) {
	if title = strings.TrimSpace(title); title != "" {
		r.pdf.SetFont(fontFamily, "B", 11)
		r.pdf.MultiCell(0, lineHeight, r.tr(title), "", "L", false)
	}
	if meta = strings.TrimSpace(meta); meta != "" {
		r.pdf.SetFont(fontFamily, "I", 10)
		r.pdf.MultiCell(0, lineHeight, r.tr(meta), "", "L", false)
	}
	if body = strings.TrimSpace(body); body != "" {
		r.paragraph(body)
	}
	r.pdf.Ln(1.5)
}

func (r *renderer) paragraph(text string) {
	r.pdf.SetFont(fontFamily, "", 10)
	r.pdf.MultiCell(0, lineHeight, r.tr(text), "", "L", false)
}

func (r *renderer) labeled(label string, values []string) {
	if len(values) == 0 {
		return
	}
	r.pdf.SetFont(fontFamily, "B", 10)
	r.pdf.Write(lineHeight, r.tr(label+": "))
	r.pdf.SetFont(fontFamily, "", 10)
	r.pdf.Write(lineHeight, r.tr(strings.Join(values, ", ")))
	r.pdf.Ln(lineHeight)
}

func dateRange(item any) string {
	start := imports.EntryField(item, "startDate")
	end := imports.EntryField(item, "endDate")
	if end == "" && imports.EntryField(item, "current") == "true" {
		end = "Present"
	}
	return joinNonEmpty(" - ", start, end)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
