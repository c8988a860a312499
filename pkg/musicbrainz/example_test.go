package musicbrainz_test

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/jfmyers9/musicbrainz/pkg/musicbrainz"
	"github.com/jfmyers9/musicbrainz/pkg/musicbrainz/entity"
)

func ExampleEncode() {
	q := musicbrainz.NewQuery().
		Where("artist", "AC/DC").
		And("type", "group").
		Or("country", "AU")
	fmt.Println(musicbrainz.Encode(q))
	// Output: artist:(AC\/DC) AND type:(group) OR country:(AU)
}

func ExampleLookup() {
	req, err := musicbrainz.Lookup(musicbrainz.KindArtist).
		ID("5b11f4ce-a62d-471e-81fc-a69a8278c7da").
		Include(musicbrainz.IncReleaseGroups).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(req.URI())
	// Output: /artist/5b11f4ce-a62d-471e-81fc-a69a8278c7da?inc=release-groups+releases&fmt=json
}

func ExampleBrowse() {
	req, err := musicbrainz.Browse(musicbrainz.KindRelease).
		By(musicbrainz.ByLabel, "46f0f4cd-8aab-4b33-b698-f459faf64190").
		Statuses("official").
		Limit(50).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(req)
	// Output: GET /release?label=46f0f4cd-8aab-4b33-b698-f459faf64190&status=official&limit=50&fmt=json
}

func ExampleBuilder_Build_invalid() {
	_, err := musicbrainz.Browse(musicbrainz.KindRelease).
		By(musicbrainz.ByLabel, "46f0f4cd-8aab-4b33-b698-f459faf64190").
		Limit(500).
		Build()
	fmt.Println(err != nil)
	// Output: true
}

func ExampleGet() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"5b11f4ce-a62d-471e-81fc-a69a8278c7da","name":"Nirvana","country":"US"}`)
	}))
	defer server.Close()

	client, err := musicbrainz.NewClient(musicbrainz.Config{
		BaseURL:   server.URL,
		UserAgent: "example/1.0 ( example@example.com )",
	})
	if err != nil {
		log.Fatal(err)
	}

	req, err := musicbrainz.Lookup(musicbrainz.KindArtist).
		ID("5b11f4ce-a62d-471e-81fc-a69a8278c7da").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	artist, err := musicbrainz.Get[entity.Artist](context.Background(), client, req)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(artist.Name, artist.Country)
	// Output: Nirvana US
}
