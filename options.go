package coffeelex

// Options configures how the pipeline scans a source (spec.md §6).
type Options struct {
	// UseCS2 enables recognising `# …` line comments inside heregexes
	// (spec.md §4.1, §4.3.4). Default false.
	UseCS2 bool
}
