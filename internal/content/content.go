// Package content holds the static copy and fixed tables rendered by the
// landing page: architecture levels, rule-generation stages, features and
// the surrounding text. The data ships embedded as YAML and never changes at
// runtime.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LevelCount is the fixed number of architecture levels.
const LevelCount = 5

//go:embed page.yaml
var embedded []byte

// Page is the full set of static content.
type Page struct {
	Hero           Hero           `yaml:"hero"`
	Architecture   Architecture   `yaml:"architecture"`
	RuleGeneration RuleGeneration `yaml:"rule_generation"`
	Features       Features       `yaml:"features"`
	Cases          CasesCopy      `yaml:"cases"`
	CTA            CTA            `yaml:"cta"`
}

type Hero struct {
	Badge     string   `yaml:"badge"`
	Title     string   `yaml:"title"`
	Highlight string   `yaml:"highlight"`
	Lead      string   `yaml:"lead"`
	Actions   []string `yaml:"actions"`
}

type Architecture struct {
	Title      string  `yaml:"title"`
	Subtitle   string  `yaml:"subtitle"`
	NodesLabel string  `yaml:"nodes_label"`
	Levels     []Level `yaml:"levels"`
}

// Level is one step of the approval hierarchy.
type Level struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Nodes int    `yaml:"nodes"`
}

type RuleGeneration struct {
	Title         string        `yaml:"title"`
	Subtitle      string        `yaml:"subtitle"`
	RulesLabel    string        `yaml:"rules_label"`
	Stages        []Stage       `yaml:"stages"`
	KnowledgeBase KnowledgeBase `yaml:"knowledge_base"`
}

// Stage is a rule-generation step with a fixed display status.
type Stage struct {
	Name   string      `yaml:"name"`
	Status StageStatus `yaml:"status"`
	Rules  int         `yaml:"rules"`
}

// RulesLabel formats the stage's rule count with a leading plus sign.
func (s Stage) RulesLabel() string {
	return fmt.Sprintf("+%d", s.Rules)
}

type KnowledgeBase struct {
	Title    string   `yaml:"title"`
	Body     string   `yaml:"body"`
	Counters []string `yaml:"counters"`
}

type Features struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Items    []Feature `yaml:"items"`
}

// Feature is one card of the feature grid.
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type CasesCopy struct {
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Loading  string     `yaml:"loading"`
	Empty    string     `yaml:"empty"`
	Labels   CaseLabels `yaml:"labels"`
}

// CaseLabels are the field captions used on case cards and the detail panel.
type CaseLabels struct {
	Year         string `yaml:"year"`
	Rules        string `yaml:"rules"`
	Efficiency   string `yaml:"efficiency"`
	Staff        string `yaml:"staff"`
	Duration     string `yaml:"duration"`
	DurationUnit string `yaml:"duration_unit"`
	Status       string `yaml:"status"`
	Close        string `yaml:"close"`
}

type CTA struct {
	Title  string `yaml:"title"`
	Lead   string `yaml:"lead"`
	Action string `yaml:"action"`
}

// Default returns the embedded page content.
func Default() (*Page, error) {
	return Decode(bytes.NewReader(embedded))
}

// Load reads page content from path, or the embedded default when path is
// blank.
func Load(path string) (*Page, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Decode(file)
}

// Decode parses and validates a YAML content document.
func Decode(r io.Reader) (*Page, error) {
	var page Page
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&page); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse content: empty document")
		}
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return &page, nil
}

// Validate checks the structural invariants the view relies on.
func (p *Page) Validate() error {
	if p == nil {
		return errors.New("content is nil")
	}
	levels := p.Architecture.Levels
	if len(levels) != LevelCount {
		return fmt.Errorf("content: want %d architecture levels, got %d", LevelCount, len(levels))
	}
	for i, lvl := range levels {
		if lvl.ID != i {
			return fmt.Errorf("content: level %d has id %d", i, lvl.ID)
		}
		if strings.TrimSpace(lvl.Name) == "" {
			return fmt.Errorf("content: level %d has no name", i)
		}
		if lvl.Nodes < 0 {
			return fmt.Errorf("content: level %q has negative nodes", lvl.Name)
		}
	}
	if len(p.RuleGeneration.Stages) == 0 {
		return errors.New("content: no rule generation stages")
	}
	for _, st := range p.RuleGeneration.Stages {
		if !st.Status.Valid() {
			return fmt.Errorf("content: stage %q has unknown status %q", st.Name, st.Status)
		}
		if st.Rules < 0 {
			return fmt.Errorf("content: stage %q has negative rules", st.Name)
		}
	}
	for i, f := range p.Features.Items {
		if strings.TrimSpace(f.Title) == "" {
			return fmt.Errorf("content: feature %d has no title", i)
		}
	}
	return nil
}
