package musicbrainz

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// Pagination bounds accepted by the API.
const (
	MinLimit = 1
	MaxLimit = 100
)

// Operation is the kind of request a Builder produces.
type Operation int

// Operations.
const (
	OpLookup Operation = iota + 1
	OpBrowse
	OpSearch
)

func (o Operation) String() string {
	switch o {
	case OpLookup:
		return "lookup"
	case OpBrowse:
		return "browse"
	case OpSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Builder assembles a Request one step at a time.
//
// Builder is a value type. Every step returns a new Builder and never
// mutates the receiver or any Builder returned earlier, so intermediate
// builders can be shared and extended independently. Problems found
// along the way are collected and reported together by Build.
//
// Example:
//
//	req, err := musicbrainz.Lookup(musicbrainz.KindArtist).
//	    ID("5b11f4ce-a62d-471e-81fc-a69a8278c7da").
//	    Include(musicbrainz.IncRecordings).
//	    Build()
type Builder struct {
	op       Operation
	kind     Kind
	id       string
	includes []Include
	link     BrowseBy
	linkID   string
	query    *Query
	rawQuery string
	types    []string
	statuses []string
	limit    *int
	offset   *int
}

// Lookup starts a request that fetches one entity by id.
func Lookup(kind Kind) Builder {
	return Builder{op: OpLookup, kind: kind}
}

// Browse starts a request that lists entities linked to another entity.
func Browse(kind Kind) Builder {
	return Builder{op: OpBrowse, kind: kind}
}

// Search starts a full-text search request.
func Search(kind Kind) Builder {
	return Builder{op: OpSearch, kind: kind}
}

func (b Builder) clone() Builder {
	next := b
	next.includes = slices.Clone(b.includes)
	next.types = slices.Clone(b.types)
	next.statuses = slices.Clone(b.statuses)
	return next
}

// ID sets the identifier of the entity to look up.
func (b Builder) ID(id string) Builder {
	next := b.clone()
	next.id = id
	return next
}

// Include adds include flags.
func (b Builder) Include(incs ...Include) Builder {
	next := b.clone()
	next.includes = append(next.includes, incs...)
	return next
}

// Relations adds relationship includes for the given target kinds.
func (b Builder) Relations(targets ...Kind) Builder {
	next := b.clone()
	for _, target := range targets {
		next.includes = append(next.includes, RelationsTo(target))
	}
	return next
}

// By sets the entity a browse request is linked to.
func (b Builder) By(link BrowseBy, id string) Builder {
	next := b.clone()
	next.link = link
	next.linkID = id
	return next
}

// Query sets the structured search query.
func (b Builder) Query(q Query) Builder {
	next := b.clone()
	next.query = &q
	next.rawQuery = ""
	return next
}

// QueryString sets a pre-encoded Lucene search query.
func (b Builder) QueryString(raw string) Builder {
	next := b.clone()
	next.query = nil
	next.rawQuery = raw
	return next
}

// Limit sets the page size. It must be within [MinLimit, MaxLimit].
func (b Builder) Limit(n int) Builder {
	next := b.clone()
	next.limit = &n
	return next
}

// Offset sets the page offset. It must not be negative.
func (b Builder) Offset(n int) Builder {
	next := b.clone()
	next.offset = &n
	return next
}

// Types filters releases and release groups by primary or secondary type,
// e.g. "album" or "live".
func (b Builder) Types(types ...string) Builder {
	next := b.clone()
	next.types = append(next.types, types...)
	return next
}

// Statuses filters releases by status, e.g. "official".
func (b Builder) Statuses(statuses ...string) Builder {
	next := b.clone()
	next.statuses = append(next.statuses, statuses...)
	return next
}

// validMBID reports whether id is an MBID in the canonical 36-character
// hyphenated form. Braced, urn and unhyphenated UUIDs are rejected by the
// web service.
func validMBID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Build validates the accumulated steps and returns the finished Request.
//
// Build never touches the network. Any problem is returned as a single
// Validation error listing every issue found.
func (b Builder) Build() (Request, error) {
	var result *multierror.Error
	fail := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}

	if !b.kind.Valid() {
		return Request{}, validationErrorf("unknown kind %q", b.kind)
	}

	switch b.op {
	case OpLookup:
		switch {
		case !b.kind.Lookupable():
			fail("%s cannot be looked up by id", b.kind)
		case b.id == "":
			fail("lookup of %s requires an id", b.kind)
		case b.kind.usesMBID():
			if !validMBID(b.id) {
				fail("id %q is not a valid MBID", b.id)
			}
		}
		if b.limit != nil || b.offset != nil {
			fail("pagination is not supported for lookups")
		}
		if b.link != "" {
			fail("browse linkage is not supported for lookups")
		}
	case OpBrowse:
		switch {
		case b.link == "":
			fail("browse of %s requires a linked entity", b.kind)
		case !b.kind.BrowsableBy(b.link):
			fail("%s cannot be browsed by %s", b.kind, b.link)
		case b.linkID == "":
			fail("browse by %s requires an id", b.link)
		case b.link.usesMBID():
			if !validMBID(b.linkID) {
				fail("%s id %q is not a valid MBID", b.link, b.linkID)
			}
		}
		if b.id != "" {
			fail("browse requests do not take an id")
		}
	case OpSearch:
		if !b.kind.Searchable() {
			fail("%s is not searchable", b.kind)
		}
		if b.query == nil && b.rawQuery == "" {
			fail("search of %s requires a query", b.kind)
		}
		if b.query != nil {
			if err := b.query.Err(); err != nil {
				result = multierror.Append(result, err)
			}
			if b.query.Empty() {
				fail("search of %s requires a query", b.kind)
			}
			for _, field := range b.query.Fields() {
				if !b.kind.SearchField(field) {
					fail("%q is not a search field for %s", field, b.kind)
				}
			}
		}
		if len(b.includes) > 0 {
			fail("includes are not supported for searches")
		}
		if b.id != "" {
			fail("search requests do not take an id")
		}
	default:
		fail("unknown operation")
	}

	if err := validatePagination(b.limit, b.offset); err != nil {
		result = multierror.Append(result, err)
	}

	if (len(b.types) > 0 || len(b.statuses) > 0) && !b.acceptsReleaseFilters() {
		fail("type and status filters need release or release-group results")
	}

	var includes []Include
	if len(b.includes) > 0 && b.op != OpSearch {
		expanded, err := ExpandIncludes(b.kind, b.includes...)
		if err != nil {
			var mbErr *Error
			if errors.As(err, &mbErr) && mbErr.Kind == ErrKindConfiguration {
				return Request{}, err
			}
			result = multierror.Append(result, err)
		}
		includes = expanded
	}

	if err := result.ErrorOrNil(); err != nil {
		return Request{}, validationError(err)
	}

	req := Request{
		op:       b.op,
		kind:     b.kind,
		id:       b.id,
		includes: includes,
		link:     b.link,
		linkID:   b.linkID,
		types:    slices.Clone(b.types),
		statuses: slices.Clone(b.statuses),
		limit:    b.limit,
		offset:   b.offset,
	}
	if b.query != nil {
		req.search = Encode(*b.query)
	} else {
		req.search = b.rawQuery
	}
	return req, nil
}

// acceptsReleaseFilters reports whether type/status filters apply: the
// request must produce releases or release groups.
func (b Builder) acceptsReleaseFilters() bool {
	if b.op == OpBrowse && (b.kind == KindRelease || b.kind == KindReleaseGroup) {
		return true
	}
	if b.op == OpLookup {
		return slices.Contains(b.includes, IncReleases) || slices.Contains(b.includes, IncReleaseGroups)
	}
	return false
}

func validatePagination(limit, offset *int) error {
	var result *multierror.Error
	if limit != nil {
		if err := validation.Validate(*limit, validation.Min(MinLimit), validation.Max(MaxLimit)); err != nil {
			result = multierror.Append(result, fmt.Errorf("limit %d: %w", *limit, err))
		}
	}
	if offset != nil {
		if err := validation.Validate(*offset, validation.Min(0)); err != nil {
			result = multierror.Append(result, fmt.Errorf("offset %d: %w", *offset, err))
		}
	}
	return result.ErrorOrNil()
}

// Request is a fully specified, immutable API request.
//
// Requests are produced by Builder.Build and are safe to share between
// goroutines and to execute more than once.
type Request struct {
	op       Operation
	kind     Kind
	id       string
	includes []Include
	link     BrowseBy
	linkID   string
	search   string
	types    []string
	statuses []string
	limit    *int
	offset   *int
}

// Method returns the HTTP method. The API is read-only, so this is GET.
func (r Request) Method() string {
	return http.MethodGet
}

// Operation returns whether the request is a lookup, browse or search.
func (r Request) Operation() Operation {
	return r.op
}

// Kind returns the resource kind requested.
func (r Request) Kind() Kind {
	return r.kind
}

// ID returns the looked-up identifier, empty for browse and search.
func (r Request) ID() string {
	return r.id
}

// Includes returns the expanded include flags.
func (r Request) Includes() []Include {
	return slices.Clone(r.includes)
}

// SearchQuery returns the encoded search string, empty unless searching.
func (r Request) SearchQuery() string {
	return r.search
}

// Path returns the resource path, e.g. "/artist/<mbid>".
func (r Request) Path() string {
	if r.id == "" {
		return r.kind.Path()
	}
	return r.kind.Path() + "/" + url.PathEscape(r.id)
}

// RawQuery returns the encoded query string. Parameters are emitted in a
// fixed order with fmt=json last.
func (r Request) RawQuery() string {
	type param struct{ key, value string }
	var params []param

	if r.link != "" {
		params = append(params, param{string(r.link), r.linkID})
	}
	if len(r.includes) > 0 {
		// Spaces encode as '+', the separator the API expects.
		params = append(params, param{"inc", joinIncludes(r.includes, " ")})
	}
	if len(r.types) > 0 {
		params = append(params, param{"type", strings.Join(r.types, "|")})
	}
	if len(r.statuses) > 0 {
		params = append(params, param{"status", strings.Join(r.statuses, "|")})
	}
	if r.search != "" {
		params = append(params, param{"query", r.search})
	}
	if r.limit != nil {
		params = append(params, param{"limit", strconv.Itoa(*r.limit)})
	}
	if r.offset != nil {
		params = append(params, param{"offset", strconv.Itoa(*r.offset)})
	}
	params = append(params, param{"fmt", "json"})

	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.key + "=" + url.QueryEscape(p.value)
	}
	return strings.Join(parts, "&")
}

// URI returns the path and query, e.g.
// "/artist/<mbid>?inc=recordings&fmt=json".
func (r Request) URI() string {
	return r.Path() + "?" + r.RawQuery()
}

// String implements fmt.Stringer.
func (r Request) String() string {
	return r.Method() + " " + r.URI()
}
