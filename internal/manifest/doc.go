// Package manifest parses Minecraft Bedrock addon manifest.json documents
// into a normalized, strongly typed model. The wire format is loosely typed
// and historically inconsistent (two version encodings, two dependency
// reference styles, open-ended capability strings); this package resolves
// all of that into closed types with explicit custom escape hatches.
// It also provides JSON Schema validation against the schema embedded in
// the schema/ subdirectory.
package manifest
