package site

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a section variant by its wire tag.
type Kind string

// Known section kinds.
const (
	KindHeader       Kind = "header"
	KindHero         Kind = "hero"
	KindAbout        Kind = "about"
	KindServices     Kind = "services"
	KindFeatures     Kind = "features"
	KindTestimonials Kind = "testimonials"
	KindContact      Kind = "contact"
	KindGallery      Kind = "gallery"
	KindCTA          Kind = "cta"
	KindFooter       Kind = "footer"
	KindMenu         Kind = "menu"
)

// Content is the payload of a section. The set of implementations is closed:
// every kind has exactly one content type, plus UnknownContent for anything else.
type Content interface {
	Kind() Kind
	Accept(v Visitor) error
	normalize()
}

// Visitor receives the concrete content of a section. Adding a kind adds a
// method here, so every visitor has to handle it before the module compiles.
type Visitor interface {
	Header(c *HeaderContent) error
	Hero(c *HeroContent) error
	About(c *AboutContent) error
	Services(c *ServicesContent) error
	Features(c *FeaturesContent) error
	Testimonials(c *TestimonialsContent) error
	Contact(c *ContactContent) error
	Gallery(c *GalleryContent) error
	CTA(c *CTAContent) error
	Footer(c *FooterContent) error
	Menu(c *MenuContent) error
	Unknown(c *UnknownContent) error
}

// UnknownContent holds a section the model could not type. When Err is nil the
// type tag is not recognised; otherwise the payload did not decode into the
// schema of a known kind. Raw is kept verbatim so the section survives a round trip.
type UnknownContent struct {
	Type string
	Raw  json.RawMessage
	Err  error

	// envelope is the whole section when its id/type wrapper was malformed.
	envelope json.RawMessage
}

func (c *UnknownContent) Kind() Kind             { return "" }
func (c *UnknownContent) Accept(v Visitor) error { return v.Unknown(c) }
func (c *UnknownContent) normalize()             {}

// Reason describes why the section could not be typed.
func (c *UnknownContent) Reason() string {
	switch {
	case c.envelope != nil:
		return fmt.Sprintf("malformed section: %v", c.Err)
	case c.Err != nil:
		return `content of section type "` + c.Type + `" could not be decoded: ` + c.Err.Error()
	}
	return `unknown section type "` + c.Type + `"`
}

func (c *HeaderContent) Kind() Kind                   { return KindHeader }
func (c *HeaderContent) Accept(v Visitor) error       { return v.Header(c) }
func (c *HeroContent) Kind() Kind                     { return KindHero }
func (c *HeroContent) Accept(v Visitor) error         { return v.Hero(c) }
func (c *AboutContent) Kind() Kind                    { return KindAbout }
func (c *AboutContent) Accept(v Visitor) error        { return v.About(c) }
func (c *ServicesContent) Kind() Kind                 { return KindServices }
func (c *ServicesContent) Accept(v Visitor) error     { return v.Services(c) }
func (c *FeaturesContent) Kind() Kind                 { return KindFeatures }
func (c *FeaturesContent) Accept(v Visitor) error     { return v.Features(c) }
func (c *TestimonialsContent) Kind() Kind             { return KindTestimonials }
func (c *TestimonialsContent) Accept(v Visitor) error { return v.Testimonials(c) }
func (c *ContactContent) Kind() Kind                  { return KindContact }
func (c *ContactContent) Accept(v Visitor) error      { return v.Contact(c) }
func (c *GalleryContent) Kind() Kind                  { return KindGallery }
func (c *GalleryContent) Accept(v Visitor) error      { return v.Gallery(c) }
func (c *CTAContent) Kind() Kind                      { return KindCTA }
func (c *CTAContent) Accept(v Visitor) error          { return v.CTA(c) }
func (c *FooterContent) Kind() Kind                   { return KindFooter }
func (c *FooterContent) Accept(v Visitor) error       { return v.Footer(c) }
func (c *MenuContent) Kind() Kind                     { return KindMenu }
func (c *MenuContent) Accept(v Visitor) error         { return v.Menu(c) }

// KindInfo describes a registered kind.
type KindInfo struct {
	Kind        Kind
	Description string
	Variants    []string
	newContent  func() Content
}

// kindTable lists every kind in canonical order.
var kindTable = []KindInfo{
	{Kind: KindHeader, Description: "Brand bar with navigation and call to action", newContent: func() Content { return &HeaderContent{} }},
	{Kind: KindHero, Description: "Opening banner with headline and call to action", Variants: []string{HeroStandard, HeroSplit, HeroSlider}, newContent: func() Content { return &HeroContent{} }},
	{Kind: KindAbout, Description: "Story, mission and key figures", Variants: []string{AboutSimple, AboutEnhanced}, newContent: func() Content { return &AboutContent{} }},
	{Kind: KindServices, Description: "Offered services with optional prices", Variants: []string{LayoutGrid, LayoutList, LayoutCards}, newContent: func() Content { return &ServicesContent{} }},
	{Kind: KindFeatures, Description: "Product or business highlights", Variants: []string{LayoutGrid, LayoutAlternating, LayoutCentered}, newContent: func() Content { return &FeaturesContent{} }},
	{Kind: KindTestimonials, Description: "Customer quotes with ratings", Variants: []string{LayoutGrid, LayoutCarousel, LayoutMasonry}, newContent: func() Content { return &TestimonialsContent{} }},
	{Kind: KindContact, Description: "Contact details, form and map", newContent: func() Content { return &ContactContent{} }},
	{Kind: KindGallery, Description: "Image grid", Variants: []string{LayoutGrid, LayoutMasonry, LayoutCarousel}, newContent: func() Content { return &GalleryContent{} }},
	{Kind: KindCTA, Description: "Conversion banner with one or two buttons", newContent: func() Content { return &CTAContent{} }},
	{Kind: KindFooter, Description: "Closing links, social profiles and opening hours", Variants: []string{FooterSimple, FooterRestaurant}, newContent: func() Content { return &FooterContent{} }},
	{Kind: KindMenu, Description: "Restaurant menu grouped by category", newContent: func() Content { return &MenuContent{} }},
}

var kindIndex = func() map[Kind]KindInfo {
	index := make(map[Kind]KindInfo, len(kindTable))
	for _, info := range kindTable {
		index[info.Kind] = info
	}
	return index
}()

// AllKinds returns every known kind in canonical order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(kindTable))
	for _, info := range kindTable {
		kinds = append(kinds, info.Kind)
	}
	return kinds
}

// Kinds returns descriptive metadata for every known kind.
func Kinds() []KindInfo {
	out := make([]KindInfo, len(kindTable))
	copy(out, kindTable)
	return out
}

// LookupKind reports whether tag names a known kind.
func LookupKind(tag string) (KindInfo, bool) {
	info, ok := kindIndex[Kind(tag)]
	return info, ok
}

// NewContent returns an empty, defaulted content value for kind.
func NewContent(kind Kind) (Content, bool) {
	info, ok := kindIndex[kind]
	if !ok {
		return nil, false
	}
	c := info.newContent()
	c.normalize()
	return c, true
}

// decodeContent types a raw payload according to its tag. It never fails:
// anything that cannot be typed comes back as *UnknownContent. Mistyped
// numeric and boolean fields are repaired instead of failing the section.
func decodeContent(tag string, raw json.RawMessage) (Content, []Repair) {
	info, ok := kindIndex[Kind(tag)]
	if !ok {
		return &UnknownContent{Type: tag, Raw: cloneRaw(raw)}, nil
	}

	if len(raw) == 0 || string(raw) == "null" {
		c := info.newContent()
		c.normalize()
		return c, nil
	}

	c, repairs, err := decodeLenient(raw, info.newContent)
	if err != nil {
		return &UnknownContent{Type: tag, Raw: cloneRaw(raw), Err: err}, nil
	}
	c.normalize()
	return c, repairs
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}
