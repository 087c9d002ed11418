// Package conf parses nginx-style block configuration files into directive
// trees. A configuration consists of directives: a name, zero or more
// bare-word arguments, and either a terminating semicolon or a
// brace-delimited block of nested directives.
//
// The package does not attach meaning to directive names; knowing that
// "listen" expects a port number is the caller's business.
package conf

// Directive is a single named configuration statement.
type Directive struct {
	Name string
	Args []string

	// Block is nil for semicolon-terminated directives. A directive
	// terminated by an empty pair of braces has a non-nil, empty Block,
	// which is distinct from having no block at all.
	Block Block
}

// HasBlock reports whether the directive was terminated by a brace block
// rather than a semicolon.
func (d Directive) HasBlock() bool {
	return d.Block != nil
}

// Block is an ordered sequence of directives, either at file scope or nested
// within a directive. The order matches the source text and is significant.
type Block []Directive
