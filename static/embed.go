package static

import "embed"

// FS embeds the site content (document, stylesheet and any generated pages)
// into the binary. This allows the server to run standalone without external
// static files
//
//go:embed *.html *.css
var FS embed.FS
