// Package data embeds the static product, bundle, and content datasets
// that ship with the server binary.
package data

import "embed"

//go:embed products.json bundles.json articles.json pages.json
var FS embed.FS
