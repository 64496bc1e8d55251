package etcatalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_Attribute(t *testing.T) {
	p := &Product{Attributes: map[string]interface{}{"brand": "Acme", "ean": "8712345678906"}}

	assert.Equal(t, "Acme", p.Brand())
	assert.Equal(t, "8712345678906", p.Attribute("ean"))
	assert.Nil(t, p.Attribute("upc"))
	assert.Nil(t, p.Attribute(""))
	assert.Nil(t, (&Product{}).Brand())
}

func TestProduct_StandardAttribute(t *testing.T) {
	p := &Product{
		SKU:        "SNK-001",
		Name:       "Canvas Sneaker",
		Price:      decimal.RequireFromString("59.95"),
		Image:      "/c/a/canvas.jpg",
		Attributes: map[string]interface{}{"name": "Custom Name"},
	}

	assert.Equal(t, "SNK-001", p.Attribute("sku"))
	assert.Equal(t, "59.9500", p.Attribute("price"))
	assert.Equal(t, "/c/a/canvas.jpg", p.Attribute("image"))
	assert.Equal(t, "Custom Name", p.Attribute("name"), "custom attribute wins over the standard field")
	assert.Nil(t, p.Attribute("url_key"), "unset standard field")
}

func TestProduct_Images(t *testing.T) {
	assert.False(t, (&Product{}).HasImage())
	assert.False(t, (&Product{Image: NoSelection}).HasImage())
	assert.True(t, (&Product{Image: "/a/b/ab.jpg"}).HasImage())

	assert.Nil(t, (&Product{}).FirstGalleryImage())
	p := &Product{Gallery: []*GalleryImage{{File: "/x/y/first.jpg"}, {File: "/x/y/second.jpg", Position: 2}}}
	assert.Equal(t, "/x/y/first.jpg", p.FirstGalleryImage().File)
}
