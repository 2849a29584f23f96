package parser

import "strings"

// ResolveSource maps a sender id + body to a canonical funding-source name.
// Total function: falls back to SourceUnknown when nothing in the taxonomy
// matches.
func ResolveSource(sender, body string) string {
	senderUpper := strings.ToUpper(sender)
	bodyUpper := strings.ToUpper(body)

	for _, entry := range sourceTaxonomy {
		for _, keyword := range entry.Keywords {
			if strings.Contains(senderUpper, keyword) || strings.Contains(bodyUpper, keyword) {
				return entry.Name
			}
		}
	}
	return SourceUnknown
}
