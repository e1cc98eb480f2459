package parsing

import (
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Parser converts raw document text into a ParsedDocument: typed sections,
// extracted entities with evidence strength, and document-level facts
// (years of experience, job titles).
//
// Parsing never fails. Degenerate input (empty text, no recognizable
// headings) produces a document with an Unclassified section or no sections
// at all; the scoring engine decides what to do with it.
type Parser struct {
	tax       *taxonomy.Taxonomy
	extractor *Extractor
}

func NewParser(tax *taxonomy.Taxonomy) *Parser {
	return &Parser{tax: tax, extractor: NewExtractor(tax)}
}

// ParseResume parses résumé text.
func (p *Parser) ParseResume(text string) *types.ParsedDocument {
	return p.parse(text, types.KindResume)
}

// ParsePosting parses job-posting text.
func (p *Parser) ParsePosting(text string) *types.ParsedDocument {
	return p.parse(text, types.KindPosting)
}

func (p *Parser) parse(text string, kind types.DocumentKind) *types.ParsedDocument {
	doc := &types.ParsedDocument{
		Kind:     kind,
		RawText:  text,
		Sections: DetectSections(text, kind),
	}
	for _, section := range doc.Sections {
		// Heading lines can carry inline content ("Certifications: AWS ..."),
		// so the title participates in extraction alongside the body.
		scanText := section.Content
		if section.Title != "" {
			scanText = section.Title + "\n" + section.Content
		}
		doc.Entities = append(doc.Entities, p.extractor.Extract(scanText, section.Type, kind)...)
	}
	doc.YearsExperience = ExtractYearsExperience(text)
	doc.JobTitles = ExtractJobTitles(text)
	doc.Index()
	return doc
}
