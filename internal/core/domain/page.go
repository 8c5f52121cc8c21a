package domain

// PageRequest describes one remote page to create from a converted
// file. It is built once per detected file, sent once, and never
// retried.
type PageRequest struct {
	// Title becomes the page's title property.
	Title string

	// RelationID optionally references an existing remote record.
	// When empty the relation property is omitted from the request
	// entirely.
	RelationID string

	// Blocks is the converted content in source order. May be empty,
	// in which case the page is created without children.
	Blocks []Block
}

// PageRef identifies a page created in the remote store.
type PageRef struct {
	// ID is the remote page identifier.
	ID string

	// URL is a browser-openable link to the page.
	URL string
}
