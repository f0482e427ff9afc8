package service

import (
	"strings"

	"github.com/goccy/go-json"
)

const lineItemSeparator = ";"

// ParseProductTitles extracts the product titles of a semicolon separated list
// of single-quoted line item objects, e.g. "{'node': {'title': 'Shampoo'}}".
// Fragments that are not objects with a string node.title are skipped. Keys are
// matched exactly.
func ParseProductTitles(lineItems string) []string {
	titles := []string{}

	for _, fragment := range strings.Split(lineItems, lineItemSeparator) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		var item map[string]interface{}
		if err := json.Unmarshal([]byte(strings.ReplaceAll(fragment, "'", `"`)), &item); err != nil {
			continue
		}

		if title, ok := nodeTitle(item); ok {
			titles = append(titles, title)
		}
	}

	return titles
}

func nodeTitle(item map[string]interface{}) (string, bool) {
	node, ok := item["node"].(map[string]interface{})
	if !ok {
		return "", false
	}

	title, ok := node["title"].(string)

	return title, ok
}
