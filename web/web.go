// Package web embeds the default page served at "/" and its static assets.
package web

import "embed"

// IndexFile is the name of the page inside FS.
const IndexFile = "index.html"

// PublicDir is the directory of FS holding the static assets.
const PublicDir = "public"

//go:embed index.html public
var FS embed.FS
