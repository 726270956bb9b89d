// Package manifest handles parsing and validation of template manifests. Every
// template directory may carry a template.yaml describing the template, the
// default values of its substitution variables, the files that must be copied
// without rendering, and the range of CLI versions it supports. Manifests are
// validated against an embedded JSON Schema before use.
package manifest
