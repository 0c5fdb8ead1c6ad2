// Package validate runs quick structural checks on a document before it
// is parsed.
//
// The YAML and TOML checks are line patterns, permissive by nature: they
// reject text that is obviously not the declared format and say which
// line gave it away. JSON and XML are checked with full parses. With
// [Strict], YAML and TOML text is additionally decoded by complete
// third-party decoders.
package validate
