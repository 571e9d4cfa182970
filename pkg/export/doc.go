// Package export renders catalogs in the formats consumed outside Go:
// nested JSON bundles for the web frontend, a CSV sheet for translators,
// an ordered YAML tree and an x/text message catalog for Go services.
//
// Every writer keeps declaration order, so regenerated files diff cleanly.
package export
