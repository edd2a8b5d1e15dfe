// Package theme propagates a site's colours and fonts as named style variables.
//
// Variables live in a Scope owned by one preview instance instead of a global
// document root, so any number of previews can be rendered side by side.
package theme

import (
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

// Var is the name of a style variable, without the leading dashes.
type Var string

const (
	ColorPrimary    Var = "color-primary"
	ColorSecondary  Var = "color-secondary"
	ColorAccent     Var = "color-accent"
	ColorBackground Var = "color-background"
	ColorText       Var = "color-text"
	FontHeading     Var = "font-heading"
	FontBody        Var = "font-body"
	FontAccent      Var = "font-accent"
)

// Vars lists every variable in canonical order.
func Vars() []Var {
	return []Var{ColorPrimary, ColorSecondary, ColorAccent, ColorBackground, ColorText, FontHeading, FontBody, FontAccent}
}

// Property returns the CSS custom property name, e.g. "--color-primary".
func (v Var) Property() string { return "--" + string(v) }

// Mode controls how Apply treats variables absent from the theme.
type Mode string

const (
	// ModeMerge leaves absent variables at their previous value.
	ModeMerge Mode = "merge"
	// ModeReset clears every variable before applying.
	ModeReset Mode = "reset"
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeMerge:
		return ModeMerge, nil
	case ModeReset:
		return ModeReset, nil
	}
	return "", fmt.Errorf("unknown theme mode %q", value)
}

// Rejection records a theme value that was not applied.
type Rejection struct {
	Var    Var
	Value  string
	Reason string
}

// Scope is the variable store of one preview. It is safe for concurrent use.
type Scope struct {
	mu     sync.RWMutex
	mode   Mode
	values map[Var]string
}

// NewScope creates an empty scope.
func NewScope(mode Mode) *Scope {
	if mode == "" {
		mode = ModeMerge
	}
	return &Scope{mode: mode, values: make(map[Var]string, len(Vars()))}
}

// Mode returns the scope's apply mode.
func (s *Scope) Mode() Mode { return s.mode }

// Apply writes every present theme field into the scope. Values that could
// escape a style declaration are returned and leave their variable unset.
func (s *Scope) Apply(t site.Theme) []Rejection {
	assignments := fromTheme(t)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeReset {
		clear(s.values)
	}

	var rejected []Rejection
	for _, a := range assignments {
		if a.value == "" {
			continue
		}
		if reason := unsafeReason(a.value); reason != "" {
			rejected = append(rejected, Rejection{Var: a.name, Value: a.value, Reason: reason})
			delete(s.values, a.name)
			continue
		}
		s.values[a.name] = a.value
	}
	return rejected
}

// Set writes a single variable. Empty values are ignored.
func (s *Scope) Set(name Var, value string) error {
	if value == "" {
		return nil
	}
	if reason := unsafeReason(value); reason != "" {
		return fmt.Errorf("theme variable %s: %s", name, reason)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	return nil
}

// Get returns the current value of a variable.
func (s *Scope) Get(name Var) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[name]
	return value, ok
}

// Snapshot copies the current variables.
func (s *Scope) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make(map[Var]string, len(s.values))
	for k, v := range s.values {
		values[k] = v
	}
	return Snapshot{values: values}
}

type assignment struct {
	name  Var
	value string
}

func fromTheme(t site.Theme) []assignment {
	return []assignment{
		{ColorPrimary, t.Colors.Primary},
		{ColorSecondary, t.Colors.Secondary},
		{ColorAccent, t.Colors.Accent},
		{ColorBackground, t.Colors.Background},
		{ColorText, t.Colors.Text},
		{FontHeading, t.Fonts.Heading},
		{FontBody, t.Fonts.Body},
		{FontAccent, t.Fonts.Accent},
	}
}

func unsafeReason(value string) string {
	if i := strings.IndexAny(value, ";{}<>\\\n\r"); i >= 0 {
		return fmt.Sprintf("contains %q", value[i])
	}
	if strings.Contains(strings.ToLower(value), "/*") {
		return "contains a comment"
	}
	return ""
}

// Snapshot is an immutable view of a scope.
type Snapshot struct {
	values map[Var]string
}

// Get returns a variable from the snapshot.
func (s Snapshot) Get(name Var) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Has reports whether a variable is set.
func (s Snapshot) Has(name Var) bool {
	_, ok := s.values[name]
	return ok
}

// Len returns the number of set variables.
func (s Snapshot) Len() int { return len(s.values) }

// Declarations renders the set variables as CSS custom property declarations
// in canonical order, e.g. "--color-primary: #c2410c; --font-body: Inter;".
func (s Snapshot) Declarations() string {
	var b strings.Builder
	for _, name := range Vars() {
		value, ok := s.values[name]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s: %s;", name.Property(), value)
	}
	return b.String()
}

// CSS returns Declarations for use in a style attribute. Every value was
// screened by Apply or Set, so the result cannot leave the declaration block.
func (s Snapshot) CSS() template.CSS {
	return template.CSS(s.Declarations())
}

// CheckValue reports whether value can be placed inside a style declaration.
func CheckValue(value string) error {
	if reason := unsafeReason(value); reason != "" {
		return fmt.Errorf("unsafe style value: %s", reason)
	}
	return nil
}
