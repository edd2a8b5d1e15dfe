// Package sitetest provides site definitions shared by tests across packages.
package sitetest

import (
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/siterender/internal/site"
)

// Minimal holds, per kind, a payload carrying only the required fields.
var Minimal = map[site.Kind]string{
	site.KindHeader:       `{"companyName":"Bistro Lumiere","navigation":[{"label":"Menu","href":"/menu"}]}`,
	site.KindHero:         `{"title":"Taste the season","subtitle":"Seasonal cooking"}`,
	site.KindAbout:        `{"title":"Our story","description":"Family kitchen since 1987"}`,
	site.KindServices:     `{"title":"What we offer","services":[{"id":"s1","title":"Catering","description":"Private events"}]}`,
	site.KindFeatures:     `{"title":"Why us","features":[{"id":"f1","title":"Local produce","description":"From nearby farms"}]}`,
	site.KindTestimonials: `{"title":"Guests say","testimonials":[{"id":"t1","quote":"Wonderful evening","author":"Ana","rating":5}]}`,
	site.KindContact:      `{"title":"Visit us","email":"hello@bistro.test"}`,
	site.KindGallery:      `{"title":"Gallery","images":[{"id":"g1","src":"/img/1.jpg","alt":"Dining room"}]}`,
	site.KindCTA:          `{"headline":"Book a table","primaryButton":{"text":"Reserve","href":"/book"}}`,
	site.KindFooter:       `{"copyright":"© 2025 Bistro Lumiere"}`,
	site.KindMenu:         `{"title":"Our menu","categories":[{"id":"c1","title":"Starters","items":[{"title":"Soup","price":"8"}]}]}`,
}

// PrimaryText is the text each Minimal payload must surface when rendered.
var PrimaryText = map[site.Kind]string{
	site.KindHeader:       "Bistro Lumiere",
	site.KindHero:         "Taste the season",
	site.KindAbout:        "Our story",
	site.KindServices:     "What we offer",
	site.KindFeatures:     "Why us",
	site.KindTestimonials: "Wonderful evening",
	site.KindContact:      "Visit us",
	site.KindGallery:      "Dining room",
	site.KindCTA:          "Book a table",
	site.KindFooter:       "© 2025 Bistro Lumiere",
	site.KindMenu:         "Starters",
}

// Section decodes the minimal payload of kind into a section.
func Section(id string, kind site.Kind) site.Section {
	return RawSection(id, string(kind), Minimal[kind])
}

// RawSection decodes an arbitrary type tag and payload the way a document would.
func RawSection(id, typ, content string) site.Section {
	raw := fmt.Sprintf(`{"id":%q,"type":%q,"content":%s}`, id, typ, content)
	var sec site.Section
	if err := json.Unmarshal([]byte(raw), &sec); err != nil {
		panic(fmt.Sprintf("sitetest: bad section fixture: %v", err))
	}
	return sec
}

// Theme is a complete theme.
func Theme() site.Theme {
	return site.Theme{
		Colors: site.Colors{Primary: "#c2410c", Secondary: "#1f2937", Background: "#fffbeb", Text: "#111827"},
		Fonts:  site.Fonts{Heading: "Playfair Display", Body: "Inter"},
	}
}

// Definition builds a site with one page per slug, each holding the given sections.
func Definition(pages map[string][]site.Section, order ...string) *site.Definition {
	def := &site.Definition{
		Metadata: site.Metadata{Title: "Bistro Lumiere", Description: "Seasonal bistro"},
		Theme:    Theme(),
	}
	for i, slug := range order {
		def.Pages = append(def.Pages, site.Page{
			ID:       fmt.Sprintf("page-%d", i),
			Slug:     slug,
			Title:    slug,
			Sections: pages[slug],
		})
	}
	return def
}

// Bistro is a restaurant site with a hero, a two-category menu, a restaurant
// footer and one section of a type the renderer does not know.
const Bistro = `{
  "metadata": {
    "title": "Bistro Lumiere",
    "description": "Seasonal bistro in the old town",
    "favicon": "/favicon.ico",
    "ogImage": "https://cdn.bistro.test/og.jpg"
  },
  "theme": {
    "colors": {"primary": "#c2410c", "secondary": "#1f2937", "accent": "#f59e0b", "background": "#fffbeb", "text": "#111827"},
    "fonts": {"heading": "Playfair Display", "body": "Inter"}
  },
  "pages": [
    {
      "id": "home",
      "slug": "/",
      "title": "Home",
      "sections": [
        {"id": "hero-1", "type": "hero", "content": {"title": "Taste the season", "subtitle": "Seasonal cooking", "variant": "split", "image": "https://cdn.bistro.test/hero.jpg", "cta": {"text": "See the menu", "link": "#menu-1"}}},
        {"id": "menu-1", "type": "menu", "content": {
          "title": "Our menu",
          "currency": "EUR",
          "categories": [
            {"id": "starters", "title": "Starters", "items": [{"title": "Onion soup", "price": "9", "dietary": ["Vegetarian"]}]},
            {"id": "mains", "title": "Mains", "items": [{"title": "Duck confit", "price": 24.50, "isHighlight": true}]}
          ]
        }},
        {"id": "pricing-1", "type": "pricing-table", "content": {"plans": [{"name": "Lunch", "price": 19}]}},
        {"id": "footer-1", "type": "footer", "styles": {"className": "dark"}, "content": {
          "variant": "restaurant",
          "companyName": "Bistro Lumiere",
          "copyright": "© 2025 Bistro Lumiere",
          "openingHours": [{"days": "Mon - Fri", "hours": "11:00 - 22:00"}, {"days": "Sat - Sun", "hours": "10:00 - 23:00"}],
          "contactInfo": {"address": "12 Market Street", "phone": "555 0100", "email": "hello@bistro.test"}
        }}
      ]
    },
    {
      "id": "about",
      "slug": "/about",
      "title": "About",
      "sections": [
        {"id": "about-1", "type": "about", "content": {"title": "Our story", "description": "Family kitchen since **1987**", "variant": "enhanced", "stats": [{"value": "38", "label": "Years"}]}}
      ]
    }
  ]
}`
