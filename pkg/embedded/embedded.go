package embedded

import (
	_ "embed"
)

// SystemPromptTxt is the system message sent with every enhancement request
//
//go:embed data/system_prompt.txt
var SystemPromptTxt []byte

// PlaceholderTmpl is the text/template rendered when no model credential is configured.
// Fields: .Subject, .OriginalContent
//
//go:embed data/placeholder.md.tmpl
var PlaceholderTmpl []byte
