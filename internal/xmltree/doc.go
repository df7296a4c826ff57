// Package xmltree provides a generic, mutable XML element tree for
// namespace-qualified documents. Parsing and serialization share an
// explicit namespace table so that prefixed output can be reproduced
// without process-wide registration state.
package xmltree
