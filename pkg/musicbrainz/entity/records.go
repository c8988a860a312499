package entity

// Area is a geographic region: a country, subdivision, city or district.
type Area struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SortName       string     `json:"sort-name,omitempty"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	ISO31661Codes  []string   `json:"iso-3166-1-codes"`
	ISO31662Codes  []string   `json:"iso-3166-2-codes"`
	LifeSpan       *LifeSpan  `json:"life-span,omitempty"`
	Aliases        []Alias    `json:"aliases"`
	Tags           []Tag      `json:"tags"`
	Genres         []Genre    `json:"genres"`
	Relations      []Relation `json:"relations"`
	Annotation     string     `json:"annotation,omitempty"`
	Score          int        `json:"score,omitempty"`
}

func (a Area) MBID() string         { return a.ID }
func (a Area) ResourcePath() string { return "area" }
func (a Area) ListKey() string      { return "areas" }

// Artist is a person, group or other credited performer.
type Artist struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	SortName       string         `json:"sort-name,omitempty"`
	Type           string         `json:"type,omitempty"`
	TypeID         string         `json:"type-id,omitempty"`
	Gender         string         `json:"gender,omitempty"`
	GenderID       string         `json:"gender-id,omitempty"`
	Country        string         `json:"country,omitempty"`
	Disambiguation string         `json:"disambiguation,omitempty"`
	Area           *Area          `json:"area,omitempty"`
	BeginArea      *Area          `json:"begin-area,omitempty"`
	EndArea        *Area          `json:"end-area,omitempty"`
	LifeSpan       *LifeSpan      `json:"life-span,omitempty"`
	IPIs           []string       `json:"ipis"`
	ISNIs          []string       `json:"isnis"`
	Aliases        []Alias        `json:"aliases"`
	Tags           []Tag          `json:"tags"`
	Genres         []Genre        `json:"genres"`
	Rating         *Rating        `json:"rating,omitempty"`
	Recordings     []Recording    `json:"recordings"`
	Releases       []Release      `json:"releases"`
	ReleaseGroups  []ReleaseGroup `json:"release-groups"`
	Works          []Work         `json:"works"`
	Relations      []Relation     `json:"relations"`
	Annotation     string         `json:"annotation,omitempty"`
	Score          int            `json:"score,omitempty"`
}

func (a Artist) MBID() string         { return a.ID }
func (a Artist) ResourcePath() string { return "artist" }
func (a Artist) ListKey() string      { return "artists" }

// Event is a concert, festival or other dated happening.
type Event struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	Time           string     `json:"time,omitempty"`
	Cancelled      bool       `json:"cancelled,omitempty"`
	Setlist        string     `json:"setlist,omitempty"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	LifeSpan       *LifeSpan  `json:"life-span,omitempty"`
	Aliases        []Alias    `json:"aliases"`
	Tags           []Tag      `json:"tags"`
	Genres         []Genre    `json:"genres"`
	Rating         *Rating    `json:"rating,omitempty"`
	Relations      []Relation `json:"relations"`
	Annotation     string     `json:"annotation,omitempty"`
	Score          int        `json:"score,omitempty"`
}

func (e Event) MBID() string         { return e.ID }
func (e Event) ResourcePath() string { return "event" }
func (e Event) ListKey() string      { return "events" }

// Instrument is a musical instrument credited in relationships.
type Instrument struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	Description    string     `json:"description,omitempty"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	Aliases        []Alias    `json:"aliases"`
	Tags           []Tag      `json:"tags"`
	Genres         []Genre    `json:"genres"`
	Relations      []Relation `json:"relations"`
	Annotation     string     `json:"annotation,omitempty"`
	Score          int        `json:"score,omitempty"`
}

func (i Instrument) MBID() string         { return i.ID }
func (i Instrument) ResourcePath() string { return "instrument" }
func (i Instrument) ListKey() string      { return "instruments" }

// Label is a record label or imprint.
type Label struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SortName       string     `json:"sort-name,omitempty"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	LabelCode      *int       `json:"label-code,omitempty"`
	Country        string     `json:"country,omitempty"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	Area           *Area      `json:"area,omitempty"`
	LifeSpan       *LifeSpan  `json:"life-span,omitempty"`
	IPIs           []string   `json:"ipis"`
	ISNIs          []string   `json:"isnis"`
	Aliases        []Alias    `json:"aliases"`
	Tags           []Tag      `json:"tags"`
	Genres         []Genre    `json:"genres"`
	Rating         *Rating    `json:"rating,omitempty"`
	Releases       []Release  `json:"releases"`
	Relations      []Relation `json:"relations"`
	Annotation     string     `json:"annotation,omitempty"`
	Score          int        `json:"score,omitempty"`
}

func (l Label) MBID() string         { return l.ID }
func (l Label) ResourcePath() string { return "label" }
func (l Label) ListKey() string      { return "labels" }

// Place is a venue, studio or other physical location.
type Place struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           string       `json:"type,omitempty"`
	TypeID         string       `json:"type-id,omitempty"`
	Address        string       `json:"address,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Disambiguation string       `json:"disambiguation,omitempty"`
	Area           *Area        `json:"area,omitempty"`
	LifeSpan       *LifeSpan    `json:"life-span,omitempty"`
	Aliases        []Alias      `json:"aliases"`
	Tags           []Tag        `json:"tags"`
	Genres         []Genre      `json:"genres"`
	Relations      []Relation   `json:"relations"`
	Annotation     string       `json:"annotation,omitempty"`
	Score          int          `json:"score,omitempty"`
}

func (p Place) MBID() string         { return p.ID }
func (p Place) ResourcePath() string { return "place" }
func (p Place) ListKey() string      { return "places" }

// Recording is a distinct audio capture, possibly on many releases.
type Recording struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Length           *int           `json:"length,omitempty"`
	Video            bool           `json:"video,omitempty"`
	Disambiguation   string         `json:"disambiguation,omitempty"`
	FirstReleaseDate PartialDate    `json:"first-release-date,omitempty"`
	ArtistCredit     []ArtistCredit `json:"artist-credit"`
	ISRCs            []string       `json:"isrcs"`
	Releases         []Release      `json:"releases"`
	Aliases          []Alias        `json:"aliases"`
	Tags             []Tag          `json:"tags"`
	Genres           []Genre        `json:"genres"`
	Rating           *Rating        `json:"rating,omitempty"`
	Relations        []Relation     `json:"relations"`
	Annotation       string         `json:"annotation,omitempty"`
	Score            int            `json:"score,omitempty"`
}

func (r Recording) MBID() string         { return r.ID }
func (r Recording) ResourcePath() string { return "recording" }
func (r Recording) ListKey() string      { return "recordings" }

// Release is a concrete issue of a release group: a product with a
// date, country, label and track list.
type Release struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Status             string              `json:"status,omitempty"`
	StatusID           string              `json:"status-id,omitempty"`
	Date               PartialDate         `json:"date,omitempty"`
	Country            string              `json:"country,omitempty"`
	Barcode            string              `json:"barcode,omitempty"`
	ASIN               string              `json:"asin,omitempty"`
	Quality            string              `json:"quality,omitempty"`
	Packaging          string              `json:"packaging,omitempty"`
	PackagingID        string              `json:"packaging-id,omitempty"`
	Disambiguation     string              `json:"disambiguation,omitempty"`
	TextRepresentation *TextRepresentation `json:"text-representation,omitempty"`
	ReleaseGroup       *ReleaseGroup       `json:"release-group,omitempty"`
	ArtistCredit       []ArtistCredit      `json:"artist-credit"`
	LabelInfo          []LabelInfo         `json:"label-info"`
	Media              []Media             `json:"media"`
	TrackCount         int                 `json:"track-count,omitempty"`
	Aliases            []Alias             `json:"aliases"`
	Tags               []Tag               `json:"tags"`
	Genres             []Genre             `json:"genres"`
	Relations          []Relation          `json:"relations"`
	Annotation         string              `json:"annotation,omitempty"`
	Score              int                 `json:"score,omitempty"`
}

func (r Release) MBID() string         { return r.ID }
func (r Release) ResourcePath() string { return "release" }
func (r Release) ListKey() string      { return "releases" }

// ReleaseGroup groups the releases of one album, single or other work
// product.
type ReleaseGroup struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	PrimaryType      string         `json:"primary-type,omitempty"`
	PrimaryTypeID    string         `json:"primary-type-id,omitempty"`
	SecondaryTypes   []string       `json:"secondary-types"`
	SecondaryTypeIDs []string       `json:"secondary-type-ids"`
	FirstReleaseDate PartialDate    `json:"first-release-date,omitempty"`
	Disambiguation   string         `json:"disambiguation,omitempty"`
	ArtistCredit     []ArtistCredit `json:"artist-credit"`
	Releases         []Release      `json:"releases"`
	Aliases          []Alias        `json:"aliases"`
	Tags             []Tag          `json:"tags"`
	Genres           []Genre        `json:"genres"`
	Rating           *Rating        `json:"rating,omitempty"`
	Relations        []Relation     `json:"relations"`
	Annotation       string         `json:"annotation,omitempty"`
	Score            int            `json:"score,omitempty"`
}

func (g ReleaseGroup) MBID() string         { return g.ID }
func (g ReleaseGroup) ResourcePath() string { return "release-group" }
func (g ReleaseGroup) ListKey() string      { return "release-groups" }

// Series is an ordered sequence of releases, works or events.
type Series struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	Aliases        []Alias    `json:"aliases"`
	Tags           []Tag      `json:"tags"`
	Genres         []Genre    `json:"genres"`
	Relations      []Relation `json:"relations"`
	Annotation     string     `json:"annotation,omitempty"`
	Score          int        `json:"score,omitempty"`
}

func (s Series) MBID() string         { return s.ID }
func (s Series) ResourcePath() string { return "series" }
func (s Series) ListKey() string      { return "series" }

// URL is an external link known to MusicBrainz.
type URL struct {
	ID        string     `json:"id"`
	Resource  string     `json:"resource"`
	Relations []Relation `json:"relations"`
	Score     int        `json:"score,omitempty"`
}

func (u URL) MBID() string         { return u.ID }
func (u URL) ResourcePath() string { return "url" }
func (u URL) ListKey() string      { return "urls" }

// Work is a composition or other abstract musical work.
type Work struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Type           string     `json:"type,omitempty"`
	TypeID         string     `json:"type-id,omitempty"`
	Language       string     `json:"language,omitempty"`
	Languages      []string   `json:"languages"`
	ISWCs          []string   `json:"iswcs"`
	Disambiguation string     `json:"disambiguation,omitempty"`
	Aliases        []Alias    `json:"aliases"`
	Tags           []Tag      `json:"tags"`
	Genres         []Genre    `json:"genres"`
	Rating         *Rating    `json:"rating,omitempty"`
	Relations      []Relation `json:"relations"`
	Annotation     string     `json:"annotation,omitempty"`
	Score          int        `json:"score,omitempty"`
}

func (w Work) MBID() string         { return w.ID }
func (w Work) ResourcePath() string { return "work" }
func (w Work) ListKey() string      { return "works" }

// Disc is a CD table of contents identified by its disc id. The id is not
// an MBID.
type Disc struct {
	ID          string    `json:"id"`
	OffsetCount int       `json:"offset-count,omitempty"`
	Sectors     int       `json:"sectors,omitempty"`
	Offsets     []int     `json:"offsets"`
	Releases    []Release `json:"releases"`
}

func (d Disc) MBID() string         { return d.ID }
func (d Disc) ResourcePath() string { return "discid" }
func (d Disc) ListKey() string      { return "discs" }

// CDStub is an unverified track list submitted for an unknown disc id.
type CDStub struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist,omitempty"`
	Barcode    string `json:"barcode,omitempty"`
	Comment    string `json:"comment,omitempty"`
	TrackCount int    `json:"count,omitempty"`
	Score      int    `json:"score,omitempty"`
}

func (c CDStub) MBID() string         { return c.ID }
func (c CDStub) ResourcePath() string { return "cdstub" }
func (c CDStub) ListKey() string      { return "cdstubs" }

// Annotation is free text attached to an entity. Only annotation search
// returns it as a record.
type Annotation struct {
	Type   string `json:"type,omitempty"`
	Entity string `json:"entity"`
	Name   string `json:"name,omitempty"`
	Text   string `json:"text,omitempty"`
	Score  int    `json:"score,omitempty"`
}

func (a Annotation) MBID() string         { return a.Entity }
func (a Annotation) ResourcePath() string { return "annotation" }
func (a Annotation) ListKey() string      { return "annotations" }
