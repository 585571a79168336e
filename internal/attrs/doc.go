// Package attrs decodes the compound additional-attributes field carried by
// catalog exports.
//
// The field encodes a flat key=value list joined by a configurable separator
// (the section sign by default). Values are HTML-entity escaped and may be
// wrapped in one layer of quotes; pairs without an equals sign are
// boolean-style flags. Decoded maps preserve first-seen key order so that
// comparison output is stable.
package attrs
