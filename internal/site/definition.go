package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the complete description of a generated website. It is
// treated as immutable once handed to a renderer.
type Definition struct {
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Theme    Theme    `json:"theme" yaml:"theme"`
	Pages    []Page   `json:"pages" yaml:"pages"`
}

// Metadata describes the document head of the site.
type Metadata struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Favicon     string `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	OGImage     string `json:"ogImage,omitempty" yaml:"ogImage,omitempty"`
}

// Theme is the visual identity applied to every page.
type Theme struct {
	Colors Colors `json:"colors" yaml:"colors"`
	Fonts  Fonts  `json:"fonts" yaml:"fonts"`
}

// Colors holds CSS colour values, propagated verbatim.
type Colors struct {
	Primary    string `json:"primary" yaml:"primary" validate:"required"`
	Secondary  string `json:"secondary" yaml:"secondary" validate:"required"`
	Accent     string `json:"accent,omitempty" yaml:"accent,omitempty"`
	Background string `json:"background" yaml:"background" validate:"required"`
	Text       string `json:"text" yaml:"text" validate:"required"`
}

// Fonts holds font family names, propagated verbatim.
type Fonts struct {
	Heading string `json:"heading" yaml:"heading" validate:"required"`
	Body    string `json:"body" yaml:"body" validate:"required"`
	Accent  string `json:"accent,omitempty" yaml:"accent,omitempty"`
}

// Page is an ordered list of sections reachable by slug.
type Page struct {
	ID       string    `json:"id" yaml:"id" validate:"required"`
	Slug     string    `json:"slug" yaml:"slug" validate:"required,slug"`
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Styles are optional per-section presentation overrides.
type Styles struct {
	ClassName       string `json:"className,omitempty" yaml:"className,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	Padding         string `json:"padding,omitempty" yaml:"padding,omitempty"`
	Margin          string `json:"margin,omitempty" yaml:"margin,omitempty"`
}

// Section is one block of a page. Type is the tag exactly as written in the
// document; Content is never nil after decoding.
type Section struct {
	ID      string
	Type    string
	Content Content
	Styles  *Styles

	repairs []Repair
}

// NewSection builds a section whose type tag matches its content.
func NewSection(id string, content Content) Section {
	sec := Section{ID: id, Content: content}
	if u, ok := content.(*UnknownContent); ok {
		sec.Type = u.Type
	} else if content != nil {
		sec.Type = string(content.Kind())
	}
	return sec
}

// Known reports whether the section decoded into a known kind.
func (s Section) Known() bool {
	if s.Content == nil {
		return false
	}
	_, unknown := s.Content.(*UnknownContent)
	return !unknown
}

type sectionWire struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
	Styles  *Styles         `json:"styles,omitempty"`
}

// sectionEnvelope reads the wrapper loosely so one malformed section cannot
// fail the page it sits on.
type sectionEnvelope struct {
	ID      json.RawMessage `json:"id"`
	Type    json.RawMessage `json:"type"`
	Content json.RawMessage `json:"content"`
	Styles  json.RawMessage `json:"styles"`
}

// Repairs lists the values that were changed to decode the section.
func (s Section) Repairs() []Repair { return s.repairs }

// UnmarshalJSON types the content according to the type tag. It only fails on
// invalid JSON; a malformed section decodes to *UnknownContent.
func (s *Section) UnmarshalJSON(data []byte) error {
	*s = Section{}

	var env sectionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		if !json.Valid(data) {
			return err
		}
		s.Content = &UnknownContent{
			Raw:      cloneRaw(data),
			Err:      fmt.Errorf("section is not an object: %s", compactJSON(data)),
			envelope: cloneRaw(data),
		}
		return nil
	}

	id, ok := textField(env.ID)
	if !ok {
		s.repairs = append(s.repairs, Repair{Field: "id", Message: fmt.Sprintf("%s is not a string, read as %q", id, id)})
	}
	s.ID = id

	tag, ok := textField(env.Type)
	s.Type = tag
	if !ok {
		s.Content = &UnknownContent{
			Type:     tag,
			Raw:      cloneRaw(env.Content),
			Err:      fmt.Errorf("type tag %s is not a string", tag),
			envelope: cloneRaw(data),
		}
		return nil
	}

	if raw := bytes.TrimSpace(env.Styles); len(raw) > 0 && string(raw) != "null" {
		var styles Styles
		if err := json.Unmarshal(raw, &styles); err != nil {
			s.repairs = append(s.repairs, Repair{Field: "styles", Message: fmt.Sprintf("styles ignored: %v", err)})
		} else {
			s.Styles = &styles
		}
	}

	content, repairs := decodeContent(tag, env.Content)
	s.Content = content
	s.repairs = append(s.repairs, repairs...)
	return nil
}

func compactJSON(data []byte) string {
	var buf bytes.Buffer
	if json.Compact(&buf, data) != nil {
		return string(data)
	}
	return buf.String()
}

// MarshalJSON writes the section back in wire form. Unknown content is
// written back unchanged.
func (s Section) MarshalJSON() ([]byte, error) {
	wire := sectionWire{ID: s.ID, Type: s.Type, Styles: s.Styles}

	switch c := s.Content.(type) {
	case nil:
	case *UnknownContent:
		if c.envelope != nil {
			return c.envelope, nil
		}
		wire.Content = c.Raw
	default:
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("encode section %s: %w", s.ID, err)
		}
		wire.Content = raw
	}

	return json.Marshal(wire)
}

// UnmarshalYAML bridges YAML sections through the JSON decoder so both
// formats share one schema.
func (s *Section) UnmarshalYAML(value *yaml.Node) error {
	generic, err := nodeValue(value)
	if err != nil {
		return err
	}

	data, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("line %d: section is not representable as JSON: %w", value.Line, err)
	}
	return s.UnmarshalJSON(data)
}

// MarshalYAML emits the same structure as MarshalJSON.
func (s Section) MarshalYAML() (any, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	return yamlNumbers(generic), nil
}

// nodeValue converts a YAML node to plain values, keeping numeric literals
// as written so "24.50" does not become 24.5.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	}

	switch n.ShortTag() {
	case "!!int", "!!float":
		if json.Valid([]byte(n.Value)) {
			return json.Number(n.Value), nil
		}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// yamlNumbers turns json.Number leaves into YAML scalars with their literal text.
func yamlNumbers(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = yamlNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = yamlNumbers(item)
		}
		return v
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(string(v), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(v)}
	}
	return v
}

// PageBySlug returns the page with the exact slug.
func (d *Definition) PageBySlug(slug string) (*Page, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Pages {
		if d.Pages[i].Slug == slug {
			return &d.Pages[i], true
		}
	}
	return nil, false
}

// SectionCount returns the number of sections across all pages.
func (d *Definition) SectionCount() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, page := range d.Pages {
		total += len(page.Sections)
	}
	return total
}
