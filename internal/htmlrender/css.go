package htmlrender

import _ "embed"

// CSS is the stylesheet the xhtml and table styles link to. Batch
// conversion and the HTTP server ship it next to the generated pages.
//
//go:embed irclog.css
var CSS []byte
