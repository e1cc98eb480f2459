// Package types defines the shared value types exchanged between the parsing,
// matching and scoring packages.
package types

import "strings"

// DocumentKind distinguishes the two document shapes the engine understands.
type DocumentKind string

const (
	KindResume  DocumentKind = "resume"
	KindPosting DocumentKind = "posting"
)

// SectionType identifies a typed region of a document. Résumés and postings
// use disjoint sets of values; Unclassified is shared by both.
type SectionType string

// Résumé section types.
const (
	SectionSummary        SectionType = "summary"
	SectionSkills         SectionType = "skills"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionCertifications SectionType = "certifications"
	SectionProjects       SectionType = "projects"
)

// Posting section types.
const (
	SectionOverview         SectionType = "overview"
	SectionResponsibilities SectionType = "responsibilities"
	SectionRequirements     SectionType = "requirements"
	SectionPreferred        SectionType = "preferred"
	SectionQualifications   SectionType = "qualifications"
	SectionBenefits         SectionType = "benefits"
	SectionAbout            SectionType = "about"
)

// SectionUnclassified holds text that precedes the first recognized heading
// or follows a heading-like line that matched no known pattern.
const SectionUnclassified SectionType = "unclassified"

// EntityCategory classifies an extracted entity.
type EntityCategory string

const (
	CategoryHardSkill       EntityCategory = "hard_skill"
	CategorySoftSkill       EntityCategory = "soft_skill"
	CategoryCertification   EntityCategory = "certification"
	CategoryMethodology     EntityCategory = "methodology"
	CategoryDomain          EntityCategory = "domain"
	CategoryJobTitle        EntityCategory = "job_title"
	CategoryYearsExperience EntityCategory = "years_experience"
)

// Section is one contiguous, typed span of a parsed document. Spans never
// overlap and together cover the whole input text.
type Section struct {
	Type    SectionType `json:"type"`
	Ordinal int         `json:"ordinal"`
	Title   string      `json:"title,omitempty"`
	Content string      `json:"content"`
	Start   int         `json:"start"`
	End     int         `json:"end"`
}

// Entity is a taxonomy term found in a document. EvidenceStrength is computed
// once at extraction time and never mutated afterwards.
type Entity struct {
	Surface          string         `json:"surface"`
	Normalized       string         `json:"normalized"`
	Category         EntityCategory `json:"category"`
	Section          SectionType    `json:"section"`
	EvidenceStrength float64        `json:"evidence_strength"`
}

// ParsedDocument is the structured form of one résumé or posting. It is
// created fresh per scoring call and carries no cross-call state.
type ParsedDocument struct {
	Kind            DocumentKind `json:"kind"`
	RawText         string       `json:"-"`
	Sections        []Section    `json:"sections"`
	Entities        []Entity     `json:"entities"`
	YearsExperience *int         `json:"years_experience,omitempty"`
	JobTitles       []string     `json:"job_titles,omitempty"`

	byCategory map[EntityCategory][]Entity
}

// Index builds the category→entity lookup. Called once by the parser after
// extraction; safe to call again after mutating Entities.
func (d *ParsedDocument) Index() {
	d.byCategory = make(map[EntityCategory][]Entity)
	for _, e := range d.Entities {
		d.byCategory[e.Category] = append(d.byCategory[e.Category], e)
	}
}

// EntitiesByCategory returns all entities of the given category.
func (d *ParsedDocument) EntitiesByCategory(cat EntityCategory) []Entity {
	if d.byCategory == nil {
		d.Index()
	}
	return d.byCategory[cat]
}

// EntitiesInSection returns all entities extracted from sections of the given type.
func (d *ParsedDocument) EntitiesInSection(st SectionType) []Entity {
	var out []Entity
	for _, e := range d.Entities {
		if e.Section == st {
			out = append(out, e)
		}
	}
	return out
}

// NormalizedSet returns the set of normalized entity forms, lowercased.
func (d *ParsedDocument) NormalizedSet() map[string]bool {
	set := make(map[string]bool, len(d.Entities))
	for _, e := range d.Entities {
		set[strings.ToLower(e.Normalized)] = true
	}
	return set
}

// SectionText returns the concatenated content of all sections of the given type.
func (d *ParsedDocument) SectionText(st SectionType) string {
	var parts []string
	for _, s := range d.Sections {
		if s.Type == st && strings.TrimSpace(s.Content) != "" {
			parts = append(parts, s.Content)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// HasSection reports whether at least one non-empty section of the given type exists.
func (d *ParsedDocument) HasSection(st SectionType) bool {
	return d.SectionText(st) != ""
}
