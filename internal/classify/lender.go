package classify

import "strings"

// ExtractLender pulls the lender name out of an MCA payment description.
// Capture patterns are tried in order; if none match, the first three
// whitespace-delimited words stand in. Returns nil for an empty description.
func ExtractLender(description string) *string {
	for _, re := range lenderCaptures {
		m := re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name != "" {
			return &name
		}
	}

	words := strings.Fields(description)
	if len(words) == 0 {
		return nil
	}
	if len(words) > 3 {
		words = words[:3]
	}
	name := strings.Join(words, " ")
	return &name
}
