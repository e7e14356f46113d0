package tracing

// Span names for picker interactions recorded by the showcase.
const (
	SpanPickerOpen   = "picker.open"
	SpanPickerClose  = "picker.close"
	SpanPickerSelect = "picker.select"
	SpanPickerSearch = "picker.search"
	SpanPickerClean  = "picker.clean"
)

// Span attribute keys. These constants define the semantic conventions for
// span attributes across the showcase.
const (
	// Picker attributes
	AttrPickerID    = "picker.id"
	AttrOptionValue = "picker.option.value"
	AttrItemCount   = "picker.item.count"

	// Search attributes
	AttrKeyword    = "search.keyword"
	AttrMatchCount = "search.match_count"

	// Showcase attributes
	AttrDemoName = "demo.name"
)
