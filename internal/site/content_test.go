package site

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingVisitor struct {
	seen []Kind
}

func (r *recordingVisitor) Header(*HeaderContent) error             { return r.mark(KindHeader) }
func (r *recordingVisitor) Hero(*HeroContent) error                 { return r.mark(KindHero) }
func (r *recordingVisitor) About(*AboutContent) error               { return r.mark(KindAbout) }
func (r *recordingVisitor) Services(*ServicesContent) error         { return r.mark(KindServices) }
func (r *recordingVisitor) Features(*FeaturesContent) error         { return r.mark(KindFeatures) }
func (r *recordingVisitor) Testimonials(*TestimonialsContent) error { return r.mark(KindTestimonials) }
func (r *recordingVisitor) Contact(*ContactContent) error           { return r.mark(KindContact) }
func (r *recordingVisitor) Gallery(*GalleryContent) error           { return r.mark(KindGallery) }
func (r *recordingVisitor) CTA(*CTAContent) error                   { return r.mark(KindCTA) }
func (r *recordingVisitor) Footer(*FooterContent) error             { return r.mark(KindFooter) }
func (r *recordingVisitor) Menu(*MenuContent) error                 { return r.mark(KindMenu) }
func (r *recordingVisitor) Unknown(*UnknownContent) error           { return r.mark("unknown") }

func (r *recordingVisitor) mark(kind Kind) error {
	r.seen = append(r.seen, kind)
	return nil
}

func TestKindTableCoversEveryKind(t *testing.T) {
	t.Parallel()

	kinds := AllKinds()
	require.Len(t, kinds, 11)

	visitor := &recordingVisitor{}
	for _, kind := range kinds {
		content, ok := NewContent(kind)
		require.True(t, ok, "kind %s has no constructor", kind)
		assert.Equal(t, kind, content.Kind())
		require.NoError(t, content.Accept(visitor))

		info, ok := LookupKind(string(kind))
		require.True(t, ok)
		assert.NotEmpty(t, info.Description)
	}

	assert.Equal(t, kinds, visitor.seen)
}

func TestUnknownContentDispatchesToFallback(t *testing.T) {
	t.Parallel()

	visitor := &recordingVisitor{}
	content, _ := decodeContent("timeline", json.RawMessage(`{"events":[]}`))
	require.NoError(t, content.Accept(visitor))
	assert.Equal(t, []Kind{"unknown"}, visitor.seen)
}

func TestDefaultsResolvedAtIngestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tag   string
		raw   string
		check func(t *testing.T, c Content)
	}{
		{
			name: "hero fills alignment and variant",
			tag:  "hero",
			raw:  `{"title":"x","subtitle":"y","alignment":"diagonal"}`,
			check: func(t *testing.T, c Content) {
				hero := c.(*HeroContent)
				assert.Equal(t, AlignCenter, hero.Alignment)
				assert.Equal(t, HeroStandard, hero.Variant)
				assert.False(t, hero.Overlay)
			},
		},
		{
			name: "hero slider keeps slides",
			tag:  "hero",
			raw:  `{"title":"x","subtitle":"y","variant":"slider","slides":[{"title":"a","image":"/a.jpg","cta":{"text":"Go","link":"/go"}}]}`,
			check: func(t *testing.T, c Content) {
				hero := c.(*HeroContent)
				assert.Equal(t, HeroSlider, hero.Variant)
				assert.Equal(t, ButtonPrimary, hero.Slides[0].CTA.Variant)
			},
		},
		{
			name: "about defaults to simple",
			tag:  "about",
			raw:  `{"title":"x","description":"y"}`,
			check: func(t *testing.T, c Content) {
				assert.Equal(t, AboutSimple, c.(*AboutContent).Variant)
			},
		},
		{
			name: "layouts default to grid",
			tag:  "testimonials",
			raw:  `{"title":"x","testimonials":[],"layout":"spiral"}`,
			check: func(t *testing.T, c Content) {
				assert.Equal(t, LayoutGrid, c.(*TestimonialsContent).Layout)
			},
		},
		{
			name: "contact shows default form",
			tag:  "contact",
			raw:  `{"title":"x"}`,
			check: func(t *testing.T, c Content) {
				contact := c.(*ContactContent)
				assert.True(t, contact.FormVisible())
				assert.Len(t, contact.FormFields, 3)
			},
		},
		{
			name: "contact form can be hidden",
			tag:  "contact",
			raw:  `{"title":"x","showForm":false}`,
			check: func(t *testing.T, c Content) {
				contact := c.(*ContactContent)
				assert.False(t, contact.FormVisible())
				assert.Empty(t, contact.FormFields)
			},
		},
		{
			name: "gallery clamps columns",
			tag:  "gallery",
			raw:  `{"images":[],"columns":7}`,
			check: func(t *testing.T, c Content) {
				assert.Equal(t, DefaultGalleryColumns, c.(*GalleryContent).Columns)
			},
		},
		{
			name: "gallery keeps valid columns",
			tag:  "gallery",
			raw:  `{"images":[],"columns":4}`,
			check: func(t *testing.T, c Content) {
				assert.Equal(t, 4, c.(*GalleryContent).Columns)
			},
		},
		{
			name: "cta button variants",
			tag:  "cta",
			raw:  `{"headline":"x","primaryButton":{"text":"a","href":"/a"},"secondaryButton":{"text":"b","href":"/b"}}`,
			check: func(t *testing.T, c Content) {
				cta := c.(*CTAContent)
				assert.Equal(t, ButtonPrimary, cta.PrimaryButton.Variant)
				assert.Equal(t, ButtonSecondary, cta.SecondaryButton.Variant)
			},
		},
		{
			name: "footer newsletter labels",
			tag:  "footer",
			raw:  `{"copyright":"x","newsletter":{"title":"News"}}`,
			check: func(t *testing.T, c Content) {
				footer := c.(*FooterContent)
				assert.Equal(t, FooterSimple, footer.Variant)
				assert.Equal(t, "Subscribe", footer.Newsletter.ButtonText)
				assert.Equal(t, "Email", footer.Newsletter.Placeholder)
			},
		},
		{
			name: "menu currency",
			tag:  "menu",
			raw:  `{"title":"x","categories":[]}`,
			check: func(t *testing.T, c Content) {
				assert.Equal(t, DefaultCurrency, c.(*MenuContent).Currency)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			content, _ := decodeContent(tt.tag, json.RawMessage(tt.raw))
			_, unknown := content.(*UnknownContent)
			require.False(t, unknown)
			tt.check(t, content)
		})
	}
}

func TestPriceEncoding(t *testing.T) {
	t.Parallel()

	var item MenuItem
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Soup","price":12}`), &item))
	assert.Equal(t, "12", item.Price.String())
	assert.True(t, item.Price.Numeric)

	out, err := json.Marshal(item.Price)
	require.NoError(t, err)
	assert.Equal(t, "12", string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"title":"Soup","price":"12,50"}`), &item))
	assert.Equal(t, "12,50", item.Price.String())
	out, err = json.Marshal(item.Price)
	require.NoError(t, err)
	assert.Equal(t, `"12,50"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"price":true}`), &item))
	assert.Equal(t, "7.5", NumericPrice(7.5).String())
	assert.True(t, StringPrice("").IsZero())
}
