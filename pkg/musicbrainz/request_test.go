package musicbrainz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		builder Builder
		wantURI string
	}{
		{
			name:    "lookup with include",
			builder: Lookup(KindArtist).ID(nirvanaMBID).Include(IncRecordings),
			wantURI: "/artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da?inc=recordings&fmt=json",
		},
		{
			name:    "lookup without includes",
			builder: Lookup(KindArtist).ID(nirvanaMBID),
			wantURI: "/artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da?fmt=json",
		},
		{
			name:    "includes are sorted and joined with plus",
			builder: Lookup(KindArtist).ID(nirvanaMBID).Include(IncTags, IncAliases),
			wantURI: "/artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da?inc=aliases+tags&fmt=json",
		},
		{
			name:    "implied includes are expanded",
			builder: Lookup(KindArtist).ID(nirvanaMBID).Include(IncReleaseGroups),
			wantURI: "/artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da?inc=release-groups+releases&fmt=json",
		},
		{
			name:    "relations",
			builder: Lookup(KindArtist).ID(nirvanaMBID).Relations(KindURL, KindArtist),
			wantURI: "/artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da?inc=artist-rels+url-rels&fmt=json",
		},
		{
			name: "lookup with release filters",
			builder: Lookup(KindArtist).ID(nirvanaMBID).
				Include(IncReleases).
				Types("album").
				Statuses("official"),
			wantURI: "/artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da?inc=releases&type=album&status=official&fmt=json",
		},
		{
			name:    "disc id lookup",
			builder: Lookup(KindDiscID).ID("oEbhAqfQ0VJH4BdTAT2xM3NyhDs-"),
			wantURI: "/discid/oEbhAqfQ0VJH4BdTAT2xM3NyhDs-?fmt=json",
		},
		{
			name: "browse",
			builder: Browse(KindRelease).
				By(ByArtist, nirvanaMBID).
				Types("album", "ep").
				Statuses("official").
				Limit(100).
				Offset(0),
			wantURI: "/release?artist=5b11f4ce-a62d-471e-81fc-a69a8278c7da&type=album%7Cep&status=official&limit=100&offset=0&fmt=json",
		},
		{
			name:    "browse by url resource",
			builder: Browse(KindURL).By(ByResource, "http://www.nirvana.com/"),
			wantURI: "/url?resource=http%3A%2F%2Fwww.nirvana.com%2F&fmt=json",
		},
		{
			name:    "browse by track artist",
			builder: Browse(KindRelease).By(ByTrackArtist, nirvanaMBID).Include(IncLabels),
			wantURI: "/release?track_artist=5b11f4ce-a62d-471e-81fc-a69a8278c7da&inc=labels&fmt=json",
		},
		{
			name:    "search",
			builder: Search(KindArtist).Query(NewQuery().Where("artist", "AC/DC")).Limit(10),
			wantURI: "/artist?query=artist%3A%28AC%5C%2FDC%29&limit=10&fmt=json",
		},
		{
			name:    "search with raw query string",
			builder: Search(KindReleaseGroup).QueryString("releasegroup:Nevermind"),
			wantURI: "/release-group?query=releasegroup%3ANevermind&fmt=json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.builder.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantURI, req.URI())
			assert.Equal(t, "GET", req.Method())
			assert.Equal(t, "GET "+tt.wantURI, req.String())
		})
	}
}

func TestBuilder_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		builder  Builder
		contains string
	}{
		{name: "limit zero", builder: Browse(KindRelease).By(ByArtist, nirvanaMBID).Limit(0), contains: "limit 0"},
		{name: "limit over max", builder: Browse(KindRelease).By(ByArtist, nirvanaMBID).Limit(101), contains: "limit 101"},
		{name: "negative offset", builder: Search(KindArtist).QueryString("Nirvana").Offset(-1), contains: "offset -1"},
		{name: "lookup without id", builder: Lookup(KindArtist), contains: "requires an id"},
		{name: "lookup with malformed mbid", builder: Lookup(KindArtist).ID("nirvana"), contains: "not a valid MBID"},
		{name: "lookup with braced mbid", builder: Lookup(KindArtist).ID("{5b11f4ce-a62d-471e-81fc-a69a8278c7da}"), contains: "not a valid MBID"},
		{name: "lookup with urn mbid", builder: Lookup(KindArtist).ID("urn:uuid:5b11f4ce-a62d-471e-81fc-a69a8278c7da"), contains: "not a valid MBID"},
		{name: "lookup with unhyphenated mbid", builder: Lookup(KindArtist).ID("5b11f4cea62d471e81fca69a8278c7da"), contains: "not a valid MBID"},
		{name: "browse by braced mbid", builder: Browse(KindRelease).By(ByArtist, "{5b11f4ce-a62d-471e-81fc-a69a8278c7da}"), contains: "not a valid MBID"},
		{name: "browse by unhyphenated mbid", builder: Browse(KindRelease).By(ByArtist, "5b11f4cea62d471e81fca69a8278c7da"), contains: "not a valid MBID"},
		{name: "lookup with pagination", builder: Lookup(KindArtist).ID(nirvanaMBID).Limit(10), contains: "pagination"},
		{name: "lookup of tag", builder: Lookup(KindTag).ID(nirvanaMBID), contains: "cannot be looked up"},
		{name: "illegal include", builder: Lookup(KindArtist).ID(nirvanaMBID).Include(IncLabels), contains: `"labels"`},
		{name: "illegal relation", builder: Lookup(KindArtist).ID(nirvanaMBID).Include(IncWorkLevelRels), contains: `"work-level-rels"`},
		{name: "browse without link", builder: Browse(KindRelease), contains: "requires a linked entity"},
		{name: "browse by unsupported link", builder: Browse(KindArea).By(ByArtist, nirvanaMBID), contains: "cannot be browsed by"},
		{name: "browse with id", builder: Browse(KindRelease).By(ByArtist, nirvanaMBID).ID(nirvanaMBID), contains: "do not take an id"},
		{name: "search without query", builder: Search(KindArtist), contains: "requires a query"},
		{name: "search with empty query", builder: Search(KindArtist).Query(NewQuery()), contains: "requires a query"},
		{name: "search with broken query", builder: Search(KindArtist).Query(NewQuery().Where("", "x")), contains: "has no field"},
		{name: "search with unknown field", builder: Search(KindArtist).Query(NewQuery().Where("barcode", "1")), contains: `"barcode"`},
		{name: "search with includes", builder: Search(KindArtist).QueryString("Nirvana").Include(IncTags), contains: "includes are not supported"},
		{name: "search of genre", builder: Search(KindGenre).QueryString("rock"), contains: "not searchable"},
		{name: "filters without releases", builder: Lookup(KindArtist).ID(nirvanaMBID).Types("album"), contains: "type and status filters"},
		{name: "unknown kind", builder: Lookup(Kind("playlist")).ID(nirvanaMBID), contains: "unknown kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestBuilder_BrokenImplicationsAreConfigurationErrors(t *testing.T) {
	_, err := ExpandIncludes(KindArtist)
	require.NoError(t, err)
	saved := implicationsErr
	implicationsErr = fmt.Errorf("loading implications: %w", &Error{Kind: ErrKindConfiguration, Message: "include implication cycle"})
	t.Cleanup(func() { implicationsErr = saved })

	_, err = Lookup(KindArtist).ID(nirvanaMBID).Include(IncReleaseGroups).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration), "got %v", err)
	assert.False(t, errors.Is(err, ErrValidation), "got %v", err)
}

func TestBuilder_ReportsEveryProblem(t *testing.T) {
	_, err := Lookup(KindArtist).Include(IncLabels).Limit(0).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires an id")
	assert.Contains(t, err.Error(), "pagination")
	assert.Contains(t, err.Error(), "limit 0")
	assert.Contains(t, err.Error(), `"labels"`)
}

func TestBuilder_Immutable(t *testing.T) {
	base := Lookup(KindArtist).ID(nirvanaMBID).Include(IncTags)

	// Extending the same builder twice must not let the branches see each
	// other's includes through a shared backing array.
	withAliases := base.Include(IncAliases)
	withGenres := base.Include(IncGenres)

	baseReq := mustBuild(t, base)
	aliasesReq := mustBuild(t, withAliases)
	genresReq := mustBuild(t, withGenres)

	assert.Equal(t, []Include{IncTags}, baseReq.Includes())
	assert.Equal(t, []Include{IncAliases, IncTags}, aliasesReq.Includes())
	assert.Equal(t, []Include{IncGenres, IncTags}, genresReq.Includes())

	paged := Browse(KindRelease).By(ByArtist, nirvanaMBID)
	first := paged.Limit(25)
	second := first.Offset(25)
	assert.Equal(t, "/release?artist=5b11f4ce-a62d-471e-81fc-a69a8278c7da&limit=25&fmt=json", mustBuild(t, first).URI())
	assert.Equal(t, "/release?artist=5b11f4ce-a62d-471e-81fc-a69a8278c7da&limit=25&offset=25&fmt=json", mustBuild(t, second).URI())
	assert.Equal(t, "/release?artist=5b11f4ce-a62d-471e-81fc-a69a8278c7da&fmt=json", mustBuild(t, paged).URI())
}

func TestRequest_Accessors(t *testing.T) {
	req := mustBuild(t, Search(KindRecording).
		Query(NewQuery().Where("recording", "Lithium").And("artist", "Nirvana")))

	assert.Equal(t, OpSearch, req.Operation())
	assert.Equal(t, KindRecording, req.Kind())
	assert.Empty(t, req.ID())
	assert.Equal(t, "recording:(Lithium) AND artist:(Nirvana)", req.SearchQuery())
	assert.Equal(t, "/recording", req.Path())

	lookup := mustBuild(t, Lookup(KindArtist).ID(nirvanaMBID).Include(IncTags))
	incs := lookup.Includes()
	incs[0] = IncAliases
	assert.Equal(t, []Include{IncTags}, lookup.Includes())
	assert.Equal(t, nirvanaMBID, lookup.ID())
}
