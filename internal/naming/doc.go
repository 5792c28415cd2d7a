// Package naming converts declared variant names into the identifiers the
// generator emits.
//
// Variant names may be written in any mix of casing: acronyms ("XMLIsNotCool"),
// embedded underscores ("Rust_IsCoolThough") or plain CamelCase. They are
// tokenized first and then rendered as:
//   - Camel: Go MixedCaps, used for method names (IsXMLIsNotCool)
//   - LowerCamel: unexported identifiers (xmlIsNotCool)
//   - Snake: lower_case_with_underscores, used for file names and reports
//
// The package also ranks "did you mean" suggestions with Levenshtein distance.
package naming
