package musicbrainz

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Include requests a linked sub-resource or relation category alongside a
// lookup or browse. Relationship includes end in "-rels".
type Include string

// Subquery includes.
const (
	IncAliases        Include = "aliases"
	IncAnnotation     Include = "annotation"
	IncArtistCredits  Include = "artist-credits"
	IncArtists        Include = "artists"
	IncCollections    Include = "collections"
	IncDiscIDs        Include = "discids"
	IncGenres         Include = "genres"
	IncISRCs          Include = "isrcs"
	IncLabels         Include = "labels"
	IncMedia          Include = "media"
	IncRatings        Include = "ratings"
	IncRecordings     Include = "recordings"
	IncReleaseGroups  Include = "release-groups"
	IncReleases       Include = "releases"
	IncTags           Include = "tags"
	IncVariousArtists Include = "various-artists"
	IncWorks          Include = "works"
)

// Relationship includes.
const (
	IncAreaRels           Include = "area-rels"
	IncArtistRels         Include = "artist-rels"
	IncEventRels          Include = "event-rels"
	IncGenreRels          Include = "genre-rels"
	IncInstrumentRels     Include = "instrument-rels"
	IncLabelRels          Include = "label-rels"
	IncPlaceRels          Include = "place-rels"
	IncRecordingRels      Include = "recording-rels"
	IncReleaseRels        Include = "release-rels"
	IncReleaseGroupRels   Include = "release-group-rels"
	IncSeriesRels         Include = "series-rels"
	IncURLRels            Include = "url-rels"
	IncWorkRels           Include = "work-rels"
	IncRecordingLevelRels Include = "recording-level-rels"
	IncWorkLevelRels      Include = "work-level-rels"
)

// IsRelationship reports whether the include selects a relation category.
func (i Include) IsRelationship() bool {
	return strings.HasSuffix(string(i), "-rels")
}

// RelationsTo returns the relationship include targeting kind, e.g.
// KindURL -> "url-rels".
func RelationsTo(target Kind) Include {
	return Include(string(target) + "-rels")
}

// implicationTable maps, per kind, an include to the includes it needs in
// order to be meaningful. The closure over this table must be acyclic.
type implicationTable map[Kind]map[Include][]Include

var implications = implicationTable{
	KindArtist: {
		IncReleaseGroups:  {IncReleases},
		IncVariousArtists: {IncReleases},
		IncDiscIDs:        {IncMedia},
		IncMedia:          {IncReleases},
		IncISRCs:          {IncRecordings},
	},
	KindLabel: {
		IncDiscIDs: {IncMedia},
		IncMedia:   {IncReleases},
	},
	KindRecording: {
		IncDiscIDs: {IncMedia},
		IncMedia:   {IncReleases},
	},
	KindReleaseGroup: {
		IncDiscIDs: {IncMedia},
		IncMedia:   {IncReleases},
	},
	KindRelease: {
		IncISRCs:              {IncRecordings},
		IncRecordingLevelRels: {IncRecordings},
		IncWorkLevelRels:      {IncRecordingLevelRels},
	},
	KindDiscID: {
		IncISRCs: {IncRecordings},
	},
}

var (
	implicationsOnce sync.Once
	implicationsErr  error
)

// checkImplications verifies that no include implies itself, directly or
// transitively, for any kind.
func checkImplications(table implicationTable) error {
	const (
		unvisited = iota
		visiting
		done
	)

	for kind, edges := range table {
		state := make(map[Include]int, len(edges))

		var visit func(inc Include, path []Include) error
		visit = func(inc Include, path []Include) error {
			switch state[inc] {
			case visiting:
				return &Error{
					Kind:    ErrKindConfiguration,
					Message: fmt.Sprintf("include implication cycle for %s: %s", kind, joinIncludes(append(path, inc), " -> ")),
				}
			case done:
				return nil
			}
			state[inc] = visiting
			path = append(slices.Clone(path), inc)
			for _, next := range edges[inc] {
				if err := visit(next, path); err != nil {
					return err
				}
			}
			state[inc] = done
			return nil
		}

		keys := make([]Include, 0, len(edges))
		for inc := range edges {
			keys = append(keys, inc)
		}
		slices.Sort(keys)
		for _, inc := range keys {
			if err := visit(inc, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// closure expands incs to a fixed point over table. The table must have
// passed checkImplications.
func closure(table implicationTable, kind Kind, incs []Include) []Include {
	seen := make(map[Include]bool, len(incs))
	queue := make([]Include, 0, len(incs))
	for _, inc := range incs {
		if !seen[inc] {
			seen[inc] = true
			queue = append(queue, inc)
		}
	}

	for i := 0; i < len(queue); i++ {
		for _, implied := range table[kind][queue[i]] {
			if !seen[implied] {
				seen[implied] = true
				queue = append(queue, implied)
			}
		}
	}

	slices.Sort(queue)
	return queue
}

// ExpandIncludes validates incs for kind and returns the implication
// closure, de-duplicated and sorted.
//
// Every illegal include is reported in a single Validation error. A cyclic
// implication table is reported as a Configuration error.
func ExpandIncludes(kind Kind, incs ...Include) ([]Include, error) {
	implicationsOnce.Do(func() {
		implicationsErr = checkImplications(implications)
	})
	if implicationsErr != nil {
		return nil, implicationsErr
	}
	if err := ValidateIncludes(kind, incs...); err != nil {
		return nil, err
	}

	expanded := closure(implications, kind, incs)
	// Implied includes come from the same per-kind table, but a bad table
	// entry must not leak an illegal include onto the wire.
	if err := ValidateIncludes(kind, expanded...); err != nil {
		return nil, &Error{Kind: ErrKindConfiguration, Message: "implied include is illegal", Err: err}
	}
	return expanded, nil
}

// ValidateIncludes checks every include against the legality table for
// kind.
func ValidateIncludes(kind Kind, incs ...Include) error {
	rules, ok := kindRules[kind]
	if !ok {
		return validationErrorf("unknown kind %q", kind)
	}

	var result *multierror.Error
	for _, inc := range incs {
		legal := rules.includes
		if inc.IsRelationship() {
			legal = rules.relations
		}
		if !slices.Contains(legal, inc) {
			result = multierror.Append(result, fmt.Errorf("include %q is not valid for %s", inc, kind))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return validationError(err)
	}
	return nil
}

// LegalIncludes returns the subquery and relationship includes accepted
// for kind.
func LegalIncludes(kind Kind) []Include {
	rules := kindRules[kind]
	out := with(rules.includes, rules.relations...)
	slices.Sort(out)
	return out
}

func joinIncludes(incs []Include, sep string) string {
	parts := make([]string, len(incs))
	for i, inc := range incs {
		parts[i] = string(inc)
	}
	return strings.Join(parts, sep)
}
