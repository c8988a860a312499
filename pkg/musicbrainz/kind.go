package musicbrainz

import "slices"

// Kind identifies a MusicBrainz resource type.
//
// The set is closed: every Kind the API exposes is declared below, and
// each one maps to a resource path segment plus static tables of legal
// includes, relation targets, browse linkages and search fields.
type Kind string

// Resource kinds.
const (
	KindAnnotation   Kind = "annotation"
	KindArea         Kind = "area"
	KindArtist       Kind = "artist"
	KindCDStub       Kind = "cdstub"
	KindDiscID       Kind = "discid"
	KindEvent        Kind = "event"
	KindGenre        Kind = "genre"
	KindInstrument   Kind = "instrument"
	KindLabel        Kind = "label"
	KindPlace        Kind = "place"
	KindRecording    Kind = "recording"
	KindRelease      Kind = "release"
	KindReleaseGroup Kind = "release-group"
	KindSeries       Kind = "series"
	KindTag          Kind = "tag"
	KindURL          Kind = "url"
	KindWork         Kind = "work"
)

// Kinds returns every known kind in a stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindRules))
	for k := range kindRules {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// String returns the resource path segment.
func (k Kind) String() string {
	return string(k)
}

// Path returns the resource path for the kind, e.g. "/release-group".
func (k Kind) Path() string {
	return "/" + string(k)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindRules[k]
	return ok
}

// Lookupable reports whether entities of this kind can be fetched by id.
func (k Kind) Lookupable() bool {
	return kindRules[k].lookup
}

// Searchable reports whether the search endpoint exists for this kind.
func (k Kind) Searchable() bool {
	return kindRules[k].search
}

// usesMBID reports whether lookups of this kind are keyed by MBID.
// Disc IDs are base64-ish strings computed from the TOC.
func (k Kind) usesMBID() bool {
	return k != KindDiscID && k != KindCDStub
}

// BrowseBy names the linked entity a browse request is filtered by.
type BrowseBy string

// Browse linkages. Most are named after a kind; the track linkages and
// collection are browse-only.
const (
	ByArea         BrowseBy = "area"
	ByArtist       BrowseBy = "artist"
	ByCollection   BrowseBy = "collection"
	ByEvent        BrowseBy = "event"
	ByLabel        BrowseBy = "label"
	ByPlace        BrowseBy = "place"
	ByRecording    BrowseBy = "recording"
	ByRelease      BrowseBy = "release"
	ByReleaseGroup BrowseBy = "release-group"
	ByResource     BrowseBy = "resource"
	ByTrack        BrowseBy = "track"
	ByTrackArtist  BrowseBy = "track_artist"
	ByWork         BrowseBy = "work"
)

// usesMBID reports whether the linkage value is an MBID. A resource
// linkage carries a URL.
func (b BrowseBy) usesMBID() bool {
	return b != ByResource
}

type kindRule struct {
	lookup       bool
	search       bool
	includes     []Include
	relations    []Include
	browseBy     []BrowseBy
	searchFields []string
}

var (
	commonIncludes = []Include{IncAliases, IncAnnotation, IncTags, IncGenres}
	rated          = []Include{IncRatings}

	relationTargets = []Include{
		IncAreaRels, IncArtistRels, IncEventRels, IncGenreRels, IncInstrumentRels,
		IncLabelRels, IncPlaceRels, IncRecordingRels, IncReleaseRels,
		IncReleaseGroupRels, IncSeriesRels, IncURLRels, IncWorkRels,
	}
)

func with(base []Include, extra ...Include) []Include {
	out := make([]Include, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

// kindRules is the static legality table for every kind.
var kindRules = map[Kind]kindRule{
	KindAnnotation: {
		search:       true,
		searchFields: []string{"entity", "id", "name", "text", "type"},
	},
	KindArea: {
		lookup:    true,
		search:    true,
		includes:  commonIncludes,
		relations: relationTargets,
		browseBy:  []BrowseBy{ByCollection},
		searchFields: []string{
			"aid", "alias", "area", "begin", "comment", "end", "ended",
			"iso", "iso1", "iso2", "iso3", "sortname", "tag", "type",
		},
	},
	KindArtist: {
		lookup: true,
		search: true,
		includes: with(commonIncludes, IncRatings, IncRecordings, IncReleases,
			IncReleaseGroups, IncWorks, IncVariousArtists, IncDiscIDs, IncMedia, IncISRCs),
		relations: relationTargets,
		browseBy:  []BrowseBy{ByArea, ByCollection, ByRecording, ByRelease, ByReleaseGroup, ByWork},
		searchFields: []string{
			"alias", "primary_alias", "area", "arid", "artist", "artistaccent",
			"begin", "beginarea", "comment", "country", "end", "endarea", "ended",
			"gender", "ipi", "isni", "sortname", "tag", "type",
		},
	},
	KindCDStub: {
		search:       true,
		searchFields: []string{"added", "artist", "barcode", "comment", "discid", "id", "title", "tracks"},
	},
	KindDiscID: {
		lookup: true,
		includes: []Include{IncArtists, IncArtistCredits, IncLabels, IncRecordings,
			IncReleaseGroups, IncISRCs, IncAliases, IncTags, IncGenres},
	},
	KindEvent: {
		lookup:    true,
		search:    true,
		includes:  with(commonIncludes, rated...),
		relations: relationTargets,
		browseBy:  []BrowseBy{ByArea, ByArtist, ByCollection, ByPlace},
		searchFields: []string{
			"aid", "alias", "area", "arid", "artist", "begin", "comment", "eid",
			"end", "ended", "event", "eventaccent", "pid", "place", "tag", "type",
		},
	},
	KindGenre: {
		lookup:   true,
		includes: []Include{IncAliases},
	},
	KindInstrument: {
		lookup:    true,
		search:    true,
		includes:  commonIncludes,
		relations: relationTargets,
		browseBy:  []BrowseBy{ByCollection},
		searchFields: []string{
			"alias", "comment", "description", "iid", "instrument",
			"instrumentaccent", "tag", "type",
		},
	},
	KindLabel: {
		lookup:    true,
		search:    true,
		includes:  with(commonIncludes, IncRatings, IncReleases, IncDiscIDs, IncMedia),
		relations: relationTargets,
		browseBy:  []BrowseBy{ByArea, ByCollection, ByRelease},
		searchFields: []string{
			"alias", "area", "begin", "code", "comment", "country", "end", "ended",
			"ipi", "isni", "label", "labelaccent", "laid", "release_count",
			"sortname", "tag", "type",
		},
	},
	KindPlace: {
		lookup:    true,
		search:    true,
		includes:  commonIncludes,
		relations: relationTargets,
		browseBy:  []BrowseBy{ByArea, ByCollection},
		searchFields: []string{
			"address", "alias", "area", "begin", "comment", "end", "ended", "lat",
			"long", "place", "placeaccent", "pid", "type",
		},
	},
	KindRecording: {
		lookup: true,
		search: true,
		includes: with(commonIncludes, IncRatings, IncArtists, IncReleases,
			IncReleaseGroups, IncISRCs, IncArtistCredits, IncDiscIDs, IncMedia),
		relations: with(relationTargets, IncWorkLevelRels),
		browseBy:  []BrowseBy{ByArtist, ByCollection, ByRelease, ByWork},
		searchFields: []string{
			"alias", "arid", "artist", "artistname", "comment", "country",
			"creditname", "date", "dur", "firstreleasedate", "format", "isrc",
			"number", "position", "primarytype", "qdur", "recording",
			"recordingaccent", "reid", "release", "rgid", "rid", "secondarytype",
			"status", "tag", "tid", "tnum", "tracks", "tracksrelease", "type", "video",
		},
	},
	KindRelease: {
		lookup: true,
		search: true,
		includes: with(commonIncludes, IncRatings, IncArtists, IncCollections,
			IncLabels, IncRecordings, IncReleaseGroups, IncArtistCredits,
			IncDiscIDs, IncMedia, IncISRCs),
		relations: with(relationTargets, IncRecordingLevelRels, IncWorkLevelRels),
		browseBy: []BrowseBy{ByArea, ByArtist, ByCollection, ByLabel, ByTrack,
			ByTrackArtist, ByRecording, ByReleaseGroup},
		searchFields: []string{
			"alias", "arid", "artist", "artistname", "asin", "barcode", "catno",
			"comment", "country", "creditname", "date", "discids", "discidsmedium",
			"format", "laid", "label", "lang", "mediums", "packaging",
			"primarytype", "quality", "reid", "release", "releaseaccent", "rgid",
			"script", "secondarytype", "status", "tag", "tracks", "tracksmedium", "type",
		},
	},
	KindReleaseGroup: {
		lookup: true,
		search: true,
		includes: with(commonIncludes, IncRatings, IncArtists, IncReleases,
			IncArtistCredits, IncDiscIDs, IncMedia),
		relations: relationTargets,
		browseBy:  []BrowseBy{ByArtist, ByCollection, ByRelease},
		searchFields: []string{
			"alias", "arid", "artist", "artistname", "comment", "creditname",
			"firstreleasedate", "primarytype", "reid", "release", "releasegroup",
			"releasegroupaccent", "releases", "rgid", "secondarytype", "status",
			"tag", "type",
		},
	},
	KindSeries: {
		lookup:    true,
		search:    true,
		includes:  commonIncludes,
		relations: relationTargets,
		browseBy:  []BrowseBy{ByCollection},
		searchFields: []string{
			"alias", "comment", "orderingattribute", "series", "seriesaccent",
			"sid", "tag", "type",
		},
	},
	KindTag: {
		search:       true,
		searchFields: []string{"tag"},
	},
	KindURL: {
		lookup:       true,
		search:       true,
		relations:    relationTargets,
		browseBy:     []BrowseBy{ByResource},
		searchFields: []string{"relationtype", "targetid", "targettype", "uid", "url"},
	},
	KindWork: {
		lookup:    true,
		search:    true,
		includes:  with(commonIncludes, rated...),
		relations: relationTargets,
		browseBy:  []BrowseBy{ByArtist, ByCollection},
		searchFields: []string{
			"alias", "arid", "artist", "comment", "iswc", "lang", "recording",
			"recording_count", "rid", "tag", "type", "wid", "work", "workaccent",
		},
	},
}

// BrowsableBy reports whether entities of kind k can be browsed by link.
func (k Kind) BrowsableBy(link BrowseBy) bool {
	return slices.Contains(kindRules[k].browseBy, link)
}

// SearchField reports whether field is a documented search field for k.
func (k Kind) SearchField(field string) bool {
	return slices.Contains(kindRules[k].searchFields, field)
}
