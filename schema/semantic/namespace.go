package semantic

import "strings"

// candidateNamespaces implements namespace resolution's walk-up search
// order: for n = n1.n2...nk, try n, n1...nk-1, ..., n1, then "".
func candidateNamespaces(n string) []string {
	if n == "" {
		return []string{""}
	}
	parts := strings.Split(n, ".")
	out := make([]string, 0, len(parts)+1)
	for i := len(parts); i > 0; i-- {
		out = append(out, strings.Join(parts[:i], "."))
	}
	out = append(out, "")
	return out
}
