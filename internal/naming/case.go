package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// commonInitialisms are words rendered fully upper case in Go identifiers when
// they appear lower-cased in a declared name ("xml_thing" -> "XMLThing").
var commonInitialisms = map[string]bool{
	"acl": true, "api": true, "ascii": true, "cpu": true, "css": true,
	"dns": true, "eof": true, "guid": true, "html": true, "http": true,
	"https": true, "id": true, "ip": true, "json": true, "lhs": true,
	"qps": true, "ram": true, "rhs": true, "rpc": true, "sla": true,
	"smtp": true, "sql": true, "ssh": true, "tcp": true, "tls": true,
	"ttl": true, "udp": true, "ui": true, "uid": true, "uuid": true,
	"uri": true, "url": true, "utf8": true, "vm": true, "xml": true,
	"xmpp": true, "xsrf": true, "xss": true,
}

// IsInitialism reports whether word is rendered as an initialism.
func IsInitialism(word string) bool {
	return commonInitialisms[strings.ToLower(word)]
}

// Camel renders s as an exported Go MixedCaps identifier.
// Tokens written in all caps in the source keep their casing, so distinct
// acronyms survive: "YMCA" -> "YMCA", "Rust_IsCoolThough" -> "RustIsCoolThough".
func Camel(s string) string {
	title := cases.Title(language.Und)

	var sb strings.Builder
	for _, token := range Tokenize(s) {
		sb.WriteString(camelToken(title, token))
	}

	return sb.String()
}

// LowerCamel renders s as an unexported Go identifier: the first token is
// lower-cased entirely ("XMLIsNotCool" -> "xmlIsNotCool").
func LowerCamel(s string) string {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return ""
	}

	title := cases.Title(language.Und)

	var sb strings.Builder
	sb.WriteString(strings.ToLower(tokens[0]))

	for _, token := range tokens[1:] {
		sb.WriteString(camelToken(title, token))
	}

	return sb.String()
}

// Snake renders s as lower_case_with_underscores ("XMLIsNotCool" -> "xml_is_not_cool").
func Snake(s string) string {
	return strings.Join(LowerTokens(s), "_")
}

// Exported returns name with its first letter upper-cased.
func Exported(name string) string {
	return withFirst(name, unicode.ToUpper)
}

func camelToken(title cases.Caser, token string) string {
	if isAllUpper(token) || IsInitialism(token) {
		return strings.ToUpper(token)
	}

	return title.String(token)
}

func isAllUpper(s string) bool {
	hasLetter := false

	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}

			hasLetter = true
		}
	}

	return hasLetter
}

func withFirst(name string, f func(rune) rune) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	runes[0] = f(runes[0])

	return string(runes)
}
