package site

// Variant and layout values.
const (
	HeroStandard = "standard"
	HeroSplit    = "split"
	HeroSlider   = "slider"

	AboutSimple   = "simple"
	AboutEnhanced = "enhanced"

	FooterSimple     = "simple"
	FooterRestaurant = "restaurant"

	LayoutGrid        = "grid"
	LayoutList        = "list"
	LayoutCards       = "cards"
	LayoutAlternating = "alternating"
	LayoutCentered    = "centered"
	LayoutCarousel    = "carousel"
	LayoutMasonry     = "masonry"

	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"

	ButtonPrimary   = "primary"
	ButtonSecondary = "secondary"
	ButtonOutline   = "outline"

	DefaultCurrency       = "€"
	DefaultGalleryColumns = 3
)

// Button is a labelled link with a visual variant.
type Button struct {
	Text    string `json:"text" validate:"required"`
	Href    string `json:"href" validate:"required"`
	Variant string `json:"variant,omitempty" validate:"omitempty,oneof=primary secondary outline"`
}

// SocialLink points at a social profile.
type SocialLink struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required"`
}

// NavItem is one entry of the header navigation.
type NavItem struct {
	Label    string    `json:"label" validate:"required"`
	Href     string    `json:"href" validate:"required"`
	Children []NavItem `json:"children,omitempty" validate:"omitempty,dive"`
}

// HeaderContent renders the brand bar.
type HeaderContent struct {
	Logo        string    `json:"logo,omitempty"`
	CompanyName string    `json:"companyName" validate:"required"`
	Navigation  []NavItem `json:"navigation" validate:"dive"`
	CTAButton   *Button   `json:"ctaButton,omitempty"`
	Sticky      bool      `json:"sticky,omitempty"`
}

// HeroCTA is the hero call to action. It uses link rather than href on the wire.
type HeroCTA struct {
	Text    string `json:"text" validate:"required"`
	Link    string `json:"link" validate:"required"`
	Variant string `json:"variant,omitempty" validate:"omitempty,oneof=primary secondary outline"`
}

// HeroSlide is one frame of the slider variant.
type HeroSlide struct {
	Title    string   `json:"title" validate:"required"`
	Subtitle string   `json:"subtitle,omitempty"`
	Image    string   `json:"image" validate:"required"`
	CTA      *HeroCTA `json:"cta,omitempty"`
}

// HeroContent renders the opening banner.
type HeroContent struct {
	Title           string      `json:"title" validate:"required"`
	Subtitle        string      `json:"subtitle"`
	Description     string      `json:"description,omitempty"`
	Image           string      `json:"image,omitempty"`
	BackgroundVideo string      `json:"backgroundVideo,omitempty"`
	CTA             *HeroCTA    `json:"cta,omitempty"`
	Alignment       string      `json:"alignment,omitempty" validate:"omitempty,oneof=left center right"`
	Overlay         bool        `json:"overlay,omitempty"`
	Variant         string      `json:"variant,omitempty" validate:"omitempty,oneof=standard split slider"`
	Slides          []HeroSlide `json:"slides,omitempty" validate:"omitempty,dive"`
}

// Stat is a headline figure.
type Stat struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// AboutContent renders the company story. Description, mission and vision accept Markdown.
type AboutContent struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description" validate:"required"`
	Mission     string `json:"mission,omitempty"`
	Vision      string `json:"vision,omitempty"`
	Image       string `json:"image,omitempty"`
	Stats       []Stat `json:"stats,omitempty" validate:"omitempty,dive"`
	Variant     string `json:"variant,omitempty" validate:"omitempty,oneof=simple enhanced"`
}

// ServiceItem is one offered service.
type ServiceItem struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
	Price       string `json:"price,omitempty"`
	Href        string `json:"href,omitempty"`
}

// ServicesContent lists services.
type ServicesContent struct {
	Title    string        `json:"title" validate:"required"`
	Subtitle string        `json:"subtitle,omitempty"`
	Services []ServiceItem `json:"services" validate:"dive"`
	Layout   string        `json:"layout,omitempty" validate:"omitempty,oneof=grid list cards"`
}

// FeatureItem is one highlight.
type FeatureItem struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
}

// FeaturesContent lists highlights.
type FeaturesContent struct {
	Title    string        `json:"title" validate:"required"`
	Subtitle string        `json:"subtitle,omitempty"`
	Features []FeatureItem `json:"features" validate:"dive"`
	Layout   string        `json:"layout,omitempty" validate:"omitempty,oneof=grid alternating centered"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID      string `json:"id" validate:"required"`
	Quote   string `json:"quote" validate:"required"`
	Author  string `json:"author" validate:"required"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Rating  int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// TestimonialsContent lists customer quotes.
type TestimonialsContent struct {
	Title        string        `json:"title" validate:"required"`
	Subtitle     string        `json:"subtitle,omitempty"`
	Testimonials []Testimonial `json:"testimonials" validate:"dive"`
	Layout       string        `json:"layout,omitempty" validate:"omitempty,oneof=carousel grid masonry"`
}

// Address is a postal address.
type Address struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Country    string `json:"country" validate:"required"`
	PostalCode string `json:"postalCode,omitempty"`
}

// FormField describes one input of the contact form.
type FormField struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=text email tel textarea"`
	Label       string `json:"label" validate:"required"`
	Required    bool   `json:"required,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// ContactContent renders contact details and an optional form.
type ContactContent struct {
	Title       string       `json:"title" validate:"required"`
	Subtitle    string       `json:"subtitle,omitempty"`
	Description string       `json:"description,omitempty"`
	Email       string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string       `json:"phone,omitempty"`
	Address     *Address     `json:"address,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty" validate:"omitempty,dive"`
	ShowForm    *bool        `json:"showForm,omitempty"`
	FormFields  []FormField  `json:"formFields,omitempty" validate:"omitempty,dive"`
	MapEmbed    string       `json:"mapEmbed,omitempty"`
}

// FormVisible reports whether the contact form is shown.
func (c *ContactContent) FormVisible() bool {
	return c.ShowForm == nil || *c.ShowForm
}

// GalleryImage is one picture.
type GalleryImage struct {
	ID      string `json:"id" validate:"required"`
	Src     string `json:"src" validate:"required"`
	Alt     string `json:"alt" validate:"required"`
	Caption string `json:"caption,omitempty"`
	Href    string `json:"href,omitempty"`
}

// GalleryContent renders an image grid.
type GalleryContent struct {
	Title    string         `json:"title,omitempty"`
	Subtitle string         `json:"subtitle,omitempty"`
	Images   []GalleryImage `json:"images" validate:"dive"`
	Layout   string         `json:"layout,omitempty" validate:"omitempty,oneof=grid masonry carousel"`
	Columns  int            `json:"columns,omitempty" validate:"omitempty,oneof=2 3 4"`
}

// CTAContent renders a conversion banner.
type CTAContent struct {
	Headline        string  `json:"headline" validate:"required"`
	Description     string  `json:"description,omitempty"`
	PrimaryButton   Button  `json:"primaryButton"`
	SecondaryButton *Button `json:"secondaryButton,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	BackgroundImage string  `json:"backgroundImage,omitempty"`
}

// FooterLink is a footer hyperlink. It uses url rather than href on the wire.
type FooterLink struct {
	Text string `json:"text" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

// FooterColumn groups links under a title.
type FooterColumn struct {
	Title string       `json:"title" validate:"required"`
	Links []FooterLink `json:"links" validate:"dive"`
}

// OpeningHours is one free-form opening hours row, shown verbatim.
type OpeningHours struct {
	Days  string `json:"days" validate:"required"`
	Hours string `json:"hours" validate:"required"`
}

// ContactInfo is the footer contact block.
type ContactInfo struct {
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// Newsletter is the footer signup form.
type Newsletter struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
}

// FooterContent renders the closing section.
type FooterContent struct {
	Variant      string         `json:"variant,omitempty" validate:"omitempty,oneof=simple restaurant"`
	Logo         string         `json:"logo,omitempty"`
	CompanyName  string         `json:"companyName,omitempty"`
	Description  string         `json:"description,omitempty"`
	Copyright    string         `json:"copyright" validate:"required"`
	Columns      []FooterColumn `json:"columns,omitempty" validate:"omitempty,dive"`
	Links        []FooterLink   `json:"links,omitempty" validate:"omitempty,dive"`
	SocialLinks  []SocialLink   `json:"socialLinks,omitempty" validate:"omitempty,dive"`
	OpeningHours []OpeningHours `json:"openingHours,omitempty" validate:"omitempty,dive"`
	ContactInfo  *ContactInfo   `json:"contactInfo,omitempty"`
	Newsletter   *Newsletter    `json:"newsletter,omitempty"`
}

// MenuItem is one dish.
type MenuItem struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Price       Price    `json:"price"`
	Image       string   `json:"image,omitempty"`
	IsHighlight bool     `json:"isHighlight,omitempty"`
	Dietary     []string `json:"dietary,omitempty"`
}

// MenuCategory groups dishes.
type MenuCategory struct {
	ID    string     `json:"id" validate:"required"`
	Title string     `json:"title" validate:"required"`
	Items []MenuItem `json:"items" validate:"dive"`
}

// MenuContent renders a restaurant menu.
type MenuContent struct {
	Title      string         `json:"title" validate:"required"`
	Subtitle   string         `json:"subtitle,omitempty"`
	Categories []MenuCategory `json:"categories" validate:"dive"`
	Currency   string         `json:"currency,omitempty"`
}
