package encode

type EncodeOption func(*EncState)

// Indent sets the indent unit for one nesting level.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}
