package musicbrainz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Join is the boolean operator placed before a search term.
type Join string

// Boolean joins.
const (
	JoinNone Join = ""
	JoinAnd  Join = "AND"
	JoinOr   Join = "OR"
)

type term struct {
	join  Join
	field string
	value string
	raw   bool
}

// Query is a search predicate in the API's Lucene query grammar.
//
// A Query is immutable: every method returns a new Query and leaves the
// receiver untouched, so partially built queries can be reused.
//
// Example:
//
//	q := musicbrainz.NewQuery().
//	    Where("artist", "Nirvana").
//	    And("type", "group")
//	fmt.Println(q) // artist:(Nirvana) AND type:(group)
type Query struct {
	terms []term
	errs  []error
}

// NewQuery returns an empty query.
func NewQuery() Query {
	return Query{}
}

// Where adds a field:value term. On a non-empty query it joins with AND.
func (q Query) Where(field, value string) Query {
	return q.add(JoinAnd, field, value)
}

// And adds a field:value term joined with AND.
func (q Query) And(field, value string) Query {
	return q.add(JoinAnd, field, value)
}

// Or adds a field:value term joined with OR.
func (q Query) Or(field, value string) Query {
	return q.add(JoinOr, field, value)
}

// Raw appends a Lucene fragment verbatim. The caller is responsible for
// its escaping and for any boolean operator it needs.
func (q Query) Raw(fragment string) Query {
	next := q.clone()
	if strings.TrimSpace(fragment) == "" {
		next.errs = append(next.errs, errors.New("raw query fragment is empty"))
		return next
	}
	next.terms = append(next.terms, term{value: fragment, raw: true})
	return next
}

func (q Query) add(join Join, field, value string) Query {
	next := q.clone()
	switch {
	case field == "":
		next.errs = append(next.errs, fmt.Errorf("search term %q has no field", value))
		return next
	case strings.TrimSpace(value) == "":
		next.errs = append(next.errs, fmt.Errorf("search field %q has no value", field))
		return next
	}
	next.terms = append(next.terms, term{join: join, field: field, value: value})
	return next
}

func (q Query) clone() Query {
	return Query{
		terms: append([]term(nil), q.terms...),
		errs:  append([]error(nil), q.errs...),
	}
}

// Empty reports whether the query has no terms.
func (q Query) Empty() bool {
	return len(q.terms) == 0
}

// Fields returns the field names used by the query, in order. Raw
// fragments are not inspected.
func (q Query) Fields() []string {
	fields := make([]string, 0, len(q.terms))
	for _, t := range q.terms {
		if !t.raw {
			fields = append(fields, t.field)
		}
	}
	return fields
}

// Err returns the problems recorded while building the query, if any.
func (q Query) Err() error {
	var result *multierror.Error
	for _, err := range q.errs {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// String encodes the query. It is equivalent to Encode(q).
func (q Query) String() string {
	return Encode(q)
}

// Encode renders q in the Lucene grammar accepted by the search endpoint.
//
// Each term is rendered as field:(value) with reserved characters
// backslash-escaped. The first term carries no join token; later terms are
// prefixed with AND or OR. Raw fragments are copied verbatim. Equal term
// sequences always produce identical output.
func Encode(q Query) string {
	var b strings.Builder
	for i, t := range q.terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t.raw {
			b.WriteString(t.value)
			continue
		}
		if i > 0 && t.join != JoinNone {
			b.WriteString(string(t.join))
			b.WriteByte(' ')
		}
		b.WriteString(t.field)
		b.WriteString(":(")
		b.WriteString(Escape(t.value))
		b.WriteByte(')')
	}
	return b.String()
}

// luceneEscaper escapes every Lucene reserved token. The backslash is part
// of the same replacer so escapes are never escaped again.
var luceneEscaper = strings.NewReplacer(
	`\`, `\\`,
	`+`, `\+`,
	`-`, `\-`,
	`&&`, `\&&`,
	`||`, `\||`,
	`!`, `\!`,
	`(`, `\(`,
	`)`, `\)`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
	`^`, `\^`,
	`"`, `\"`,
	`~`, `\~`,
	`*`, `\*`,
	`?`, `\?`,
	`:`, `\:`,
	`/`, `\/`,
)

// Escape backslash-escapes Lucene reserved characters in s.
func Escape(s string) string {
	return luceneEscaper.Replace(s)
}
