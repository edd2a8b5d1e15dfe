package site

// Defaults are resolved once when a section is decoded, so renderers only ever
// see variant-resolved records.

func defaultButton(b *Button, variant string) {
	if b != nil && b.Variant == "" {
		b.Variant = variant
	}
}

func defaultHeroCTA(cta *HeroCTA) {
	if cta != nil && cta.Variant == "" {
		cta.Variant = ButtonPrimary
	}
}

func oneOf(value, fallback string, allowed ...string) string {
	for _, candidate := range allowed {
		if value == candidate {
			return value
		}
	}
	return fallback
}

func (c *HeaderContent) normalize() {
	defaultButton(c.CTAButton, ButtonPrimary)
}

func (c *HeroContent) normalize() {
	c.Alignment = oneOf(c.Alignment, AlignCenter, AlignLeft, AlignCenter, AlignRight)
	c.Variant = oneOf(c.Variant, HeroStandard, HeroStandard, HeroSplit, HeroSlider)
	if c.Variant == HeroSlider && len(c.Slides) == 0 {
		c.Variant = HeroStandard
	}
	defaultHeroCTA(c.CTA)
	for i := range c.Slides {
		defaultHeroCTA(c.Slides[i].CTA)
	}
}

func (c *AboutContent) normalize() {
	c.Variant = oneOf(c.Variant, AboutSimple, AboutSimple, AboutEnhanced)
}

func (c *ServicesContent) normalize() {
	c.Layout = oneOf(c.Layout, LayoutGrid, LayoutGrid, LayoutList, LayoutCards)
}

func (c *FeaturesContent) normalize() {
	c.Layout = oneOf(c.Layout, LayoutGrid, LayoutGrid, LayoutAlternating, LayoutCentered)
}

func (c *TestimonialsContent) normalize() {
	c.Layout = oneOf(c.Layout, LayoutGrid, LayoutGrid, LayoutCarousel, LayoutMasonry)
}

// DefaultFormFields is the contact form used when the document does not define one.
func DefaultFormFields() []FormField {
	return []FormField{
		{Name: "name", Type: "text", Label: "Name", Required: true},
		{Name: "email", Type: "email", Label: "Email", Required: true},
		{Name: "message", Type: "textarea", Label: "Message", Required: true},
	}
}

func (c *ContactContent) normalize() {
	if c.ShowForm == nil {
		show := true
		c.ShowForm = &show
	}
	if *c.ShowForm && len(c.FormFields) == 0 {
		c.FormFields = DefaultFormFields()
	}
}

func (c *GalleryContent) normalize() {
	c.Layout = oneOf(c.Layout, LayoutGrid, LayoutGrid, LayoutMasonry, LayoutCarousel)
	switch c.Columns {
	case 2, 3, 4:
	default:
		c.Columns = DefaultGalleryColumns
	}
}

func (c *CTAContent) normalize() {
	defaultButton(&c.PrimaryButton, ButtonPrimary)
	defaultButton(c.SecondaryButton, ButtonSecondary)
}

func (c *FooterContent) normalize() {
	c.Variant = oneOf(c.Variant, FooterSimple, FooterSimple, FooterRestaurant)
	if c.Newsletter != nil {
		if c.Newsletter.Placeholder == "" {
			c.Newsletter.Placeholder = "Email"
		}
		if c.Newsletter.ButtonText == "" {
			c.Newsletter.ButtonText = "Subscribe"
		}
	}
}

func (c *MenuContent) normalize() {
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
}
