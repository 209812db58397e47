package artifact

import (
	"html"
	"strings"

	"github.com/dmitrymomot/honohub/pkg/admin"
)

// MountElementID is the id of the element pages are rendered into.
const MountElementID = "root"

func htmlEntry(title, module string) []byte {
	var b strings.Builder
	b.WriteString(`<!doctype html><html lang="en"><head><meta charset="UTF-8" />`)
	b.WriteString(`<link rel="icon" type="image/svg+xml" href="/vite.svg" />`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0" />`)
	b.WriteString(`<title>` + html.EscapeString(title) + `</title></head>`)
	b.WriteString(`<body><div id="` + MountElementID + `"></div>`)
	b.WriteString(`<script type="module" src="` + html.EscapeString(module) + `"></script></body></html>`)
	return []byte(b.String())
}

func scriptEntry(t admin.Target) []byte {
	var b strings.Builder
	b.WriteString(`import React from "react";import ReactDOM from "react-dom/client";`)
	b.WriteString(t.Import() + ";")
	b.WriteString(`ReactDOM.createRoot(document.getElementById("` + MountElementID + `")).render(`)
	b.WriteString(`<React.StrictMode><` + t.Identifier() + ` /></React.StrictMode>);`)
	return []byte(b.String())
}
