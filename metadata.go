package docmeta

// Attribute is a single attribute of a matched element.
// Name duplicates the key it is stored under in Attributes.
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Attributes maps attribute names to attributes for one element.
type Attributes map[string]Attribute

// Get returns the value of the named attribute and whether it is present.
func (a Attributes) Get(name string) (string, bool) {
	attr, ok := a[name]
	return attr.Value, ok
}

// Metadata is the aggregate metadata record of a document.
// A nil pointer or nil slice means the document has no such metadata.
type Metadata struct {
	Title        string       `json:"title"`
	Description  *string      `json:"description"`
	Apple        []Attributes `json:"apple"`
	AppLink      []Attributes `json:"applink"`
	Charset      *string      `json:"charset"`
	Canonical    *string      `json:"canonical"`
	Alternatives []Attributes `json:"alternatives"`
	DublinCore   []Attributes `json:"dc"`
	DNSPrefetch  []Attributes `json:"dnsPrefetch"`
	Favicons     []Attributes `json:"favicons"`
	JSONLD       []any        `json:"jsonld"`
	Manifest     *string      `json:"manifest"`
	Opengraph    []Attributes `json:"opengraph"`
	Preconnect   []Attributes `json:"preconnect"`
	Prefetch     []Attributes `json:"prefetch"`
	Preload      []Attributes `json:"preload"`
	Robots       *string      `json:"robots"`
	Stylesheets  []Attributes `json:"stylesheets"`
	Twitter      []Attributes `json:"twitter"`
	Viewport     *string      `json:"viewport"`
	Other        []Attributes `json:"other"`
}

// MetadataExtractor extracts metadata from raw HTML.
type MetadataExtractor interface {
	// Extract parses html and returns its aggregate metadata record.
	// Returns a *ParseError if a JSON-LD script holds malformed JSON.
	Extract(html string) (*Metadata, error)
}

// Formatter renders a metadata record for output.
type Formatter interface {
	Format(m *Metadata) ([]byte, error)
}
