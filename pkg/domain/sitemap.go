package domain

import (
	"encoding/xml"
	"net/url"
	"strings"
)

const (
	SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

	ChangeFrequency_Weekly  = "weekly"
	ChangeFrequency_Monthly = "monthly"
)

type SitemapEntry struct {
	URL             string  `json:"url" xml:"loc"`
	Priority        float64 `json:"priority" xml:"priority"`
	ChangeFrequency string  `json:"changeFrequency" xml:"changefreq"`
}

type Sitemap struct {
	XMLName   xml.Name       `json:"-" xml:"urlset"`
	Namespace string         `json:"-" xml:"xmlns,attr"`
	Entries   []SitemapEntry `json:"entries" xml:"url"`
}

// BuildSitemap lists the catalog root followed by one entry per tool, in
// registration order.
func BuildSitemap(baseURL string, tools []Tool) Sitemap {
	baseURL = strings.TrimRight(baseURL, "/")

	entries := make([]SitemapEntry, 0, len(tools)+1)
	entries = append(entries, SitemapEntry{
		URL:             baseURL + "/",
		Priority:        1.0,
		ChangeFrequency: ChangeFrequency_Weekly,
	})

	for _, tool := range tools {
		entries = append(entries, SitemapEntry{
			URL:             ToolURL(baseURL, tool.ID),
			Priority:        0.8,
			ChangeFrequency: ChangeFrequency_Monthly,
		})
	}

	return Sitemap{
		Namespace: SitemapNamespace,
		Entries:   entries,
	}
}

func ToolURL(baseURL string, id ToolType) string {
	query := url.Values{}
	query.Set("tool", string(id))

	return strings.TrimRight(baseURL, "/") + "/?" + query.Encode()
}
