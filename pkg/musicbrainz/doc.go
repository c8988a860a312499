// Package musicbrainz provides a typed client library for the MusicBrainz
// web service (version 2).
//
// # Overview
//
// The package builds lookup, browse and search requests, checks them
// against the rules of the web service before anything is sent, executes
// them under the service's rate limit and decodes the JSON responses into
// the records of package entity.
//
// # Installation
//
//	go get github.com/jfmyers9/musicbrainz/pkg/musicbrainz
//
// # Quick Start
//
// Create a client with a User-Agent that identifies your application:
//
//	import "github.com/jfmyers9/musicbrainz/pkg/musicbrainz"
//
//	client, err := musicbrainz.NewClient(musicbrainz.Config{
//	    UserAgent: "my-app/1.0 ( me@example.com )",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Building Requests
//
// Requests are built with immutable steps. Every step returns a new
// Builder, so an intermediate builder can be reused:
//
//	base := musicbrainz.Lookup(musicbrainz.KindArtist).
//	    ID("5b11f4ce-a62d-471e-81fc-a69a8278c7da")
//
//	withRecordings, err := base.Include(musicbrainz.IncRecordings).Build()
//	withTags, err := base.Include(musicbrainz.IncTags).Build()
//
// Build rejects includes that are not legal for the entity kind, missing
// identifiers and out-of-range pagination. Includes that imply others
// (release-groups implies releases on an artist) are expanded.
//
// # Searching
//
// Search predicates are encoded into the Lucene syntax the search server
// understands:
//
//	q := musicbrainz.NewQuery().
//	    Where("artist", "Nirvana").
//	    And("country", "US")
//
//	req, err := musicbrainz.Search(musicbrainz.KindArtist).Query(q).Limit(10).Build()
//	res, err := musicbrainz.GetSearch[entity.Artist](ctx, client, req)
//
// # Browsing
//
//	req, err := musicbrainz.Browse(musicbrainz.KindRelease).
//	    By(musicbrainz.ByArtist, artistID).
//	    Limit(100).
//	    Offset(100).
//	    Build()
//	page, err := musicbrainz.GetBrowse[entity.Release](ctx, client, req)
//
// # Execution Modes
//
// In ModeBlocking (the default) Client.Do and Client.Go run on the
// caller's goroutine, including any wait for the rate limiter. In
// ModeAsync Client.Go returns a Call at once and the work happens on
// another goroutine:
//
//	call := client.Go(ctx, req, &artist)
//	// ... other work ...
//	if err := call.Wait(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Rate Limiting
//
// Each Client owns a limiter granting one request per RateInterval
// (one second by default). When the service answers 429 or 503 the
// client waits for Retry-After, or an exponential backoff when the header
// is absent, and retries up to MaxRetries times before returning a
// RateLimited error.
//
// # Error Handling
//
// Every error returned by the client is an *Error with a Kind. Use
// errors.Is with the sentinel errors to classify them:
//
//	if err := client.Do(ctx, req, &artist); err != nil {
//	    switch {
//	    case errors.Is(err, musicbrainz.ErrValidation):
//	        // the request was never sent
//	    case errors.Is(err, musicbrainz.ErrRateLimited):
//	        // retries exhausted
//	    }
//	}
//
// # MusicBrainz API Documentation
//
// For more information about the web service:
// https://musicbrainz.org/doc/MusicBrainz_API
package musicbrainz
