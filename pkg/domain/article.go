package domain

import "encoding/json"

// Trust tags how much an article can be trusted. Anything other than
// TrustReal is considered simulated on the wire, the tag keeps the reason
// for diagnostics.
type Trust string

// trust levels
const (
	TrustReal       Trust = "real"       // fetched from a real upstream and successfully enriched
	TrustFallback   Trust = "fallback"   // produced by the simulated fallback provider
	TrustEnrichment Trust = "enrichment" // real upstream but summarization failed
	TrustLegacy     Trust = "legacy"     // loaded from a persisted document, original reason unknown
)

// Simulated reports whether the article should be presented as simulated content
func (t Trust) Simulated() bool { return t != TrustReal }

// Article is the canonical unit of content, one short news entry for a
// (region, category) pair
type Article struct {
	Title    string
	Content  string
	Link     string
	ImageURL string
	Trust    Trust
}

// wireArticle is the persisted JSON shape shared with the front end
type wireArticle struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Link        string `json:"link"`
	ImageURL    string `json:"imageUrl"`
	IsSimulated *bool  `json:"isSimulated,omitempty"`
}

// MarshalJSON writes the front-end wire shape, trust collapses to the
// isSimulated boolean
func (a Article) MarshalJSON() ([]byte, error) {
	simulated := a.Trust.Simulated()
	return json.Marshal(wireArticle{
		Title:       a.Title,
		Content:     a.Content,
		Link:        a.Link,
		ImageURL:    a.ImageURL,
		IsSimulated: &simulated,
	})
}

// UnmarshalJSON reads the wire shape. A missing isSimulated field is treated
// as untrusted, legacy documents predate the flag.
func (a *Article) UnmarshalJSON(data []byte) error {
	var w wireArticle
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.Title = w.Title
	a.Content = w.Content
	a.Link = w.Link
	a.ImageURL = w.ImageURL
	switch {
	case w.IsSimulated == nil, *w.IsSimulated:
		a.Trust = TrustLegacy
	default:
		a.Trust = TrustReal
	}
	return nil
}

// Valid reports whether the article carries all required fields
func (a Article) Valid() bool {
	return a.Title != "" && a.Content != "" && a.Link != "" && a.ImageURL != ""
}

// WorkItem identifies one (region, category) pair subject to refresh
type WorkItem struct {
	Region   string
	Category string
}

func (w WorkItem) String() string { return w.Region + "/" + w.Category }
