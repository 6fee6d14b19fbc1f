package domain

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSitemap(t *testing.T) {
	tools := []Tool{
		testTool("base64", "Base64", Category_Encoding),
		testTool("cron-parser", "Cron Parser", Category_DateTime),
	}

	sitemap := BuildSitemap("https://tools.example.com/", tools)

	require.Len(t, sitemap.Entries, 3)
	assert.Equal(t, SitemapEntry{URL: "https://tools.example.com/", Priority: 1.0, ChangeFrequency: "weekly"}, sitemap.Entries[0])
	assert.Equal(t, "https://tools.example.com/?tool=base64", sitemap.Entries[1].URL)
	assert.Equal(t, "https://tools.example.com/?tool=cron-parser", sitemap.Entries[2].URL)
	assert.Equal(t, 0.8, sitemap.Entries[2].Priority)
	assert.Equal(t, "monthly", sitemap.Entries[2].ChangeFrequency)

	data, err := xml.Marshal(sitemap)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, string(data), `<url><loc>https://tools.example.com/?tool=base64</loc><priority>0.8</priority><changefreq>monthly</changefreq></url>`)
}
