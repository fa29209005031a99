package adapters

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

const sectionSeparator = "\n## "

type knowledgeSection struct {
	text  string
	terms map[string]struct{}
}

type markdownKnowledgeBase struct {
	logger   outbound.LoggerPort
	sections []knowledgeSection
}

// NewMarkdownKnowledgeBase loads a markdown file split on level-two headings. A
// missing file yields an empty knowledge base.
func NewMarkdownKnowledgeBase(path string, logger outbound.LoggerPort) (outbound.KnowledgeRetrieverPort, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.WarnWithFields("Knowledge base not found, replies will have no context", map[string]interface{}{
			"path": path,
		})
		return &markdownKnowledgeBase{logger: logger}, nil
	}
	if err != nil {
		logger.ErrorWithFields(err, "Failed to read knowledge base", map[string]interface{}{
			"path": path,
		})
		return nil, err
	}

	kb := NewKnowledgeBaseFromText(string(content), logger)
	logger.InfoWithFields("Knowledge base loaded", map[string]interface{}{
		"path":     path,
		"sections": len(kb.(*markdownKnowledgeBase).sections),
	})
	return kb, nil
}

func NewKnowledgeBaseFromText(content string, logger outbound.LoggerPort) outbound.KnowledgeRetrieverPort {
	parts := strings.Split(content, sectionSeparator)
	sections := make([]knowledgeSection, 0, len(parts))
	for i, part := range parts {
		if i > 0 {
			part = "## " + part
		}
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sections = append(sections, knowledgeSection{text: part, terms: termSet(part)})
	}
	return &markdownKnowledgeBase{logger: logger, sections: sections}
}

// Retrieve ranks sections by the number of query terms they contain. Sections
// sharing no term with the query are never returned.
func (k *markdownKnowledgeBase) Retrieve(_ context.Context, query string, limit int) ([]string, error) {
	queryTerms := termSet(query)
	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, 0, len(k.sections))
	for i, section := range k.sections {
		score := 0
		for term := range queryTerms {
			if _, ok := section.terms[term]; ok {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{index: i, score: score})
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]string, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, k.sections[r.index].text)
	}
	return result, nil
}

func termSet(text string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, word := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		if len([]rune(word)) < 3 {
			continue
		}
		terms[word] = struct{}{}
	}
	return terms
}
