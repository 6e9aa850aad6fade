package command

// Range is a byte range [Start, End) within Output.Text.
type Range struct {
	Start uint32 `json:"start" yaml:"start"`
	End   uint32 `json:"end" yaml:"end"`
}

// Section labels a range of the output for the host to highlight.
type Section struct {
	Range Range  `json:"range" yaml:"range"`
	Label string `json:"label" yaml:"label"`
}

// Output is the artifact returned to the host.
type Output struct {
	Text     string    `json:"text" yaml:"text"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Assemble wraps text in a single section covering all of it. End is the
// byte length of text, not its rune count.
func Assemble(text, title, sourceURL string) Output {
	return Output{
		Text: text,
		Sections: []Section{{
			Range: Range{Start: 0, End: uint32(len(text))},
			Label: title + " ( " + sourceURL + " )",
		}},
	}
}
