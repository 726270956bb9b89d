// Package engine is the boundary between the CLI and the templating engine.
// Callers depend on the Renderer interface only; TemplateEngine is the
// implementation backed by text/template over a templates.Store. A template
// contains one project directory whose name carries a substitution marker
// (e.g. "{{.project_slug}}"); it is rendered, with every path segment and text
// file inside it, into the output directory.
package engine
