package directive

// defaultRedirects maps content codes of moved or deleted legacy pages
// to their current external location.
var defaultRedirects = map[string]string{
	"CON123123": "https://www.gov.uk/drug-safety-update/addiction-to-benzodiazepines-and-codeine",
}

// DefaultRedirects returns a copy of the built-in redirect table.
func DefaultRedirects() map[string]string {
	return MergeRedirects(nil, defaultRedirects)
}

// MergeRedirects returns a new table holding base overlaid with extra.
// Entries in extra win on conflict. Neither argument is modified.
func MergeRedirects(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for code, target := range base {
		out[code] = target
	}
	for code, target := range extra {
		out[code] = target
	}
	return out
}
