package assistant

import "regexp"

// Mentions look like [[Magnesium Glycinate]]: double square brackets, no
// nesting, span ends at the first closing bracket pair.
var productMarker = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// ExtractProductNames returns the product names marked in generated
// text, in order of appearance. Duplicates are kept; the resolver
// deduplicates downstream.
func ExtractProductNames(content string) []string {
	matches := productMarker.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
