// Package format names the serialization formats the translator
// understands.
//
// # Usage
//
//	f, err := format.ParseFormat("yml") // format.YAMLFormat
//	f = format.FromPath("config.toml")  // format.TOMLFormat
//
// AutoFormat is accepted as an input format and means "detect it";
// UnknownFormat is what detection reports when it cannot decide.
//
// # Related Packages
//
//   - github.com/Ssajaia/universal-data-translator/parse - Parse text to IR
//   - github.com/Ssajaia/universal-data-translator/encode - Encode IR to text
package format
