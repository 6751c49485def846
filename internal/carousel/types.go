package carousel

const (
	// CarouselTag is the custom element wrapping the knowledge panel carousel.
	CarouselTag = "g-scrolling-carousel"
	// ItemSelector matches a single painting card inside the carousel.
	ItemSelector      = "a.klitem"
	NameSelector      = "div.kltat"
	MetaSelector      = "div.klmeta"
	ThumbnailSelector = ".klic img.rISBZc"

	// LinkOrigin is prepended verbatim to the relative href of every card.
	LinkOrigin         = "https://www.google.com"
	ExtensionSeparator = ", "
)

// thumbnail attributes in order of preference, data-src holds the lazy-loaded image.
var thumbnailAttrs = []string{"data-src", "src"}

// Painting is a single card of the carousel.
type Painting struct {
	Name string `json:"name"`
	// Extensions are the metadata tags of the card (year, medium, etc...), never nil
	// for paintings produced by Extract.
	Extensions []string `json:"extensions"`
	Link       string   `json:"link"`
	// Thumbnail is nil when the card has no thumbnail image.
	Thumbnail *string `json:"thumbnail"`
}

// Summary describes the outcome of a single extraction.
type Summary struct {
	// Candidates is the amount of cards matched inside the carousel.
	Candidates int
	Emitted    int
	// Incomplete is the amount of cards skipped for lacking a name or link.
	Incomplete int
	// Faulted is the amount of cards skipped because processing them failed.
	Faulted int
}
