package markdown

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-funnel/internal/pages"
)

// ErrImportInvalid wraps importer failures caused by malformed source files.
var ErrImportInvalid = errors.New("markdown: import invalid")

// Importer turns a Markdown file with YAML frontmatter into a page document.
// The frontmatter carries structured sections (hero copy, pricing,
// testimonials, FAQ, urgency); the body supplies long-form narrative sections
// keyed by H2 headings: "Problem", "Solution", and "Coach Story".
type Importer struct {
	parser *Parser
}

// NewImporter constructs an importer with a shared parser.
func NewImporter(parser *Parser) *Importer {
	if parser == nil {
		parser = NewParser()
	}
	return &Importer{parser: parser}
}

type pageEnvelope struct {
	HeroHeadline string                `yaml:"heroHeadline"`
	HeroSubhead  string                `yaml:"heroSubhead"`
	CTAText      string                `yaml:"ctaText"`
	Features     []string              `yaml:"features"`
	CoachBio     *pages.CoachBio       `yaml:"coachBio"`
	Pricing      []pages.PricingTier   `yaml:"pricing"`
	Testimonials []pages.Testimonial   `yaml:"testimonials"`
	FAQ          []pages.FAQEntry      `yaml:"faq"`
	Urgency      *pages.UrgencySetting `yaml:"urgency"`
}

// Import parses source into a validated PageDocument. Body sections are
// rendered to HTML; headings the importer does not recognize are ignored.
func (i *Importer) Import(source []byte) (*pages.PageDocument, error) {
	var meta pageEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("%w: parse frontmatter: %v", ErrImportInvalid, err)
	}

	doc := &pages.PageDocument{
		HeroHeadline: meta.HeroHeadline,
		HeroSubhead:  meta.HeroSubhead,
		CTAText:      meta.CTAText,
		Features:     meta.Features,
		CoachBio:     meta.CoachBio,
		Pricing:      meta.Pricing,
		Testimonials: meta.Testimonials,
		FAQ:          meta.FAQ,
		Urgency:      meta.Urgency,
	}

	sections, err := i.renderSections(body)
	if err != nil {
		return nil, err
	}
	doc.Problem = sections["problem"]
	doc.Solution = sections["solution"]
	if story, ok := sections["coach story"]; ok && doc.CoachBio != nil && doc.CoachBio.Story == "" {
		doc.CoachBio.Story = story
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportInvalid, err)
	}
	return doc, nil
}

// renderSections splits the body by H2 headings and renders each chunk.
func (i *Importer) renderSections(body []byte) (map[string]string, error) {
	sections := map[string]string{}

	var current string
	var chunk bytes.Buffer

	flush := func() error {
		if current == "" {
			chunk.Reset()
			return nil
		}
		rendered, err := i.parser.Render(chunk.Bytes())
		if err != nil {
			return err
		}
		text := strings.TrimSpace(string(rendered))
		if text != "" {
			sections[current] = text
		}
		current = ""
		chunk.Reset()
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if heading, ok := strings.CutPrefix(line, "## "); ok {
			if err := flush(); err != nil {
				return nil, err
			}
			current = strings.ToLower(strings.TrimSpace(heading))
			continue
		}
		chunk.WriteString(line)
		chunk.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan body: %v", ErrImportInvalid, err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return sections, nil
}
