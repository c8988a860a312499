// Package entity defines the MusicBrainz records returned by the web
// service and the JSON codec used to read and write them.
//
// Records mirror the API's JSON shape with kebab-case keys. Optional
// scalars are omitted when empty and list fields are kept as-is, so a
// decoded record marshals back to JSON that decodes to an equal record.
package entity

import "encoding/json"

// Record is implemented by every entity that can be the target of a
// lookup, browse or search.
type Record interface {
	// MBID returns the entity's identifier.
	MBID() string
	// ResourcePath returns the API resource segment, e.g. "release-group".
	ResourcePath() string
	// ListKey returns the JSON key holding a list of these records, e.g.
	// "release-groups".
	ListKey() string
}

// Alias is an alternate name for an entity.
type Alias struct {
	Name     string      `json:"name"`
	SortName string      `json:"sort-name,omitempty"`
	Type     string      `json:"type,omitempty"`
	TypeID   string      `json:"type-id,omitempty"`
	Locale   string      `json:"locale,omitempty"`
	Primary  *bool       `json:"primary,omitempty"`
	Begin    PartialDate `json:"begin,omitempty"`
	End      PartialDate `json:"end,omitempty"`
	Ended    bool        `json:"ended,omitempty"`
}

// Tag is a folksonomy tag with its vote count. It is also the record
// returned by tag searches.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
	Score int    `json:"score,omitempty"`
}

func (t Tag) MBID() string         { return "" }
func (t Tag) ResourcePath() string { return "tag" }
func (t Tag) ListKey() string      { return "tags" }

// Genre is a curated tag. Genres can be looked up by id.
type Genre struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Count          int    `json:"count,omitempty"`
	Disambiguation string `json:"disambiguation,omitempty"`
}

func (g Genre) MBID() string         { return g.ID }
func (g Genre) ResourcePath() string { return "genre" }
func (g Genre) ListKey() string      { return "genres" }

// Rating is the aggregated user rating on a 0-5 scale.
type Rating struct {
	Value      *float64 `json:"value,omitempty"`
	VotesCount int      `json:"votes-count,omitempty"`
}

// LifeSpan bounds the existence of an artist, label, area or event.
type LifeSpan struct {
	Begin PartialDate `json:"begin,omitempty"`
	End   PartialDate `json:"end,omitempty"`
	Ended bool        `json:"ended,omitempty"`
}

// ArtistCredit is one artist's entry in a credit line, with the phrase
// joining it to the next entry.
type ArtistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase,omitempty"`
	Artist     Artist `json:"artist"`
}

// Relation links the entity to another entity or URL.
type Relation struct {
	Type            string            `json:"type"`
	TypeID          string            `json:"type-id,omitempty"`
	Direction       string            `json:"direction,omitempty"`
	TargetType      string            `json:"target-type,omitempty"`
	TargetCredit    string            `json:"target-credit,omitempty"`
	SourceCredit    string            `json:"source-credit,omitempty"`
	Begin           PartialDate       `json:"begin,omitempty"`
	End             PartialDate       `json:"end,omitempty"`
	Ended           bool              `json:"ended,omitempty"`
	Attributes      []string          `json:"attributes"`
	AttributeValues map[string]string `json:"attribute-values"`
	OrderingKey     int               `json:"ordering-key,omitempty"`

	Area         *Area         `json:"area,omitempty"`
	Artist       *Artist       `json:"artist,omitempty"`
	Event        *Event        `json:"event,omitempty"`
	Instrument   *Instrument   `json:"instrument,omitempty"`
	Label        *Label        `json:"label,omitempty"`
	Place        *Place        `json:"place,omitempty"`
	Recording    *Recording    `json:"recording,omitempty"`
	Release      *Release      `json:"release,omitempty"`
	ReleaseGroup *ReleaseGroup `json:"release_group,omitempty"`
	Series       *Series       `json:"series,omitempty"`
	URL          *URL          `json:"url,omitempty"`
	Work         *Work         `json:"work,omitempty"`
}

// TextRepresentation is the language and script of a release's track list.
type TextRepresentation struct {
	Language string `json:"language,omitempty"`
	Script   string `json:"script,omitempty"`
}

// Media is one medium (disc, side pair, file set) of a release.
type Media struct {
	Title       string  `json:"title,omitempty"`
	Position    int     `json:"position,omitempty"`
	Format      string  `json:"format,omitempty"`
	FormatID    string  `json:"format-id,omitempty"`
	TrackCount  int     `json:"track-count"`
	TrackOffset *int    `json:"track-offset,omitempty"`
	Tracks      []Track `json:"tracks"`
	Discs       []Disc  `json:"discs"`
}

// Track is a recording as it appears on a particular medium.
type Track struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Number       string         `json:"number,omitempty"`
	Position     int            `json:"position,omitempty"`
	Length       *int           `json:"length,omitempty"`
	Recording    *Recording     `json:"recording,omitempty"`
	ArtistCredit []ArtistCredit `json:"artist-credit"`
}

// LabelInfo pairs a release with a label and catalog number.
type LabelInfo struct {
	CatalogNumber string `json:"catalog-number,omitempty"`
	Label         *Label `json:"label,omitempty"`
}

// Coordinates locate a place.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UnmarshalJSON accepts the release group target under either the
// web service's "release_group" key or "release-group".
func (r *Relation) UnmarshalJSON(data []byte) error {
	type plain Relation
	var aux struct {
		plain
		ReleaseGroupAlt *ReleaseGroup `json:"release-group,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Relation(aux.plain)
	if r.ReleaseGroup == nil {
		r.ReleaseGroup = aux.ReleaseGroupAlt
	}
	return nil
}
