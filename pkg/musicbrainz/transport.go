package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jfmyers9/musicbrainz/pkg/musicbrainz/entity"
)

// apiErrorBody is the JSON error envelope returned by the web service.
type apiErrorBody struct {
	Error string `json:"error"`
	Help  string `json:"help"`
}

// Do executes req and decodes the response into v, which must be a
// pointer. v may be nil to discard the body.
//
// Do always returns once the request has finished. In ModeAsync the work
// still runs on its own goroutine and Do waits for it.
func (c *Client) Do(ctx context.Context, req Request, v interface{}) error {
	return c.Go(ctx, req, v).Wait()
}

// Go starts req and returns its Call. The response is decoded into v.
//
// In ModeAsync Go returns immediately; the permit wait and the round trip
// happen on another goroutine. In ModeBlocking Go returns a completed
// Call. Calls are dispatched in the order their permits were granted.
func (c *Client) Go(ctx context.Context, req Request, v interface{}) *Call {
	call := newCall(req, v)
	c.dispatcher.dispatch(ctx, call, c.execute)
	return call
}

// execute is the request pipeline shared by both modes: acquire a permit,
// send, classify, decode. Throttling responses are retried up to
// maxRetries times; nothing else is.
func (c *Client) execute(ctx context.Context, call *Call) error {
	req := call.Request
	if req.op == 0 {
		return validationErrorf("request was not built with Builder.Build")
	}

	var bo *backoff.ExponentialBackOff
	for attempt := 1; ; attempt++ {
		call.setState(StateWaiting)
		if err := c.limiter.acquire(ctx); err != nil {
			return transportError(err)
		}

		call.setState(StateDispatched)
		c.stats.requests.Add(1)
		if attempt > 1 {
			c.stats.retries.Add(1)
		}
		c.logger.Debug().
			Str("method", req.Method()).
			Str("uri", req.URI()).
			Int("attempt", attempt).
			Msg("Dispatching request")

		resp, body, err := c.roundTrip(ctx, req)
		if err != nil {
			return transportError(err)
		}

		if isThrottled(resp.StatusCode) {
			c.stats.throttled.Add(1)
			if attempt > c.maxRetries {
				return &Error{
					Kind:       ErrKindRateLimited,
					StatusCode: resp.StatusCode,
					Body:       body,
					Attempts:   attempt,
					Message:    fmt.Sprintf("still throttled after %d attempts", attempt),
				}
			}

			delay, ok := retryAfter(resp.Header, c.clock.Now())
			if !ok {
				if bo == nil {
					bo = c.newBackOff()
				}
				delay = bo.NextBackOff()
			}
			call.setState(StateThrottled)
			c.limiter.throttle(delay)
			c.logger.Debug().
				Int("status", resp.StatusCode).
				Dur("delay", delay).
				Int("attempt", attempt).
				Msg("Throttled, retrying")
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return newAPIError(resp.StatusCode, body)
		}

		if call.Result != nil {
			if err := c.codec.Unmarshal(body, call.Result); err != nil {
				return &Error{Kind: ErrKindDeserialization, Body: body, Err: err}
			}
		}

		c.logger.Debug().Str("uri", req.URI()).Int("attempts", attempt).Msg("Request succeeded")
		return nil
	}
}

// roundTrip sends one HTTP request and reads the whole body.
func (c *Client) roundTrip(ctx context.Context, req Request) (*http.Response, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), c.baseURL+req.URI(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.UserAgent())
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, body, nil
}

// newBackOff returns the delay schedule used when a throttling response
// carries no Retry-After header. It starts at the rate interval and is
// capped at 30 seconds.
func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.interval
	if bo.InitialInterval <= 0 {
		bo.InitialInterval = DefaultRateInterval
	}
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

func isThrottled(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

func newAPIError(status int, body []byte) *Error {
	e := &Error{Kind: ErrKindAPI, StatusCode: status, Body: body}
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		e.Message = parsed.Error
	} else {
		e.Message = http.StatusText(status)
	}
	return e
}

// Get looks up one entity and decodes it into T.
//
// Example:
//
//	req, _ := musicbrainz.Lookup(musicbrainz.KindArtist).ID(mbid).Build()
//	artist, err := musicbrainz.Get[entity.Artist](ctx, client, req)
func Get[T entity.Record](ctx context.Context, c *Client, req Request) (*T, error) {
	if err := checkTarget[T](req, OpLookup); err != nil {
		return nil, err
	}
	var out T
	if err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBrowse executes a browse request and decodes one page of T.
//
// Browsing URLs by a single resource answers with the URL entity itself
// rather than a page; it is returned as a page holding that one entity.
func GetBrowse[T entity.Record](ctx context.Context, c *Client, req Request) (*entity.BrowseResult[T], error) {
	if err := checkTarget[T](req, OpBrowse); err != nil {
		return nil, err
	}
	if req.link == ByResource {
		var one T
		if err := c.Do(ctx, req, &one); err != nil {
			return nil, err
		}
		return &entity.BrowseResult[T]{Count: 1, Entities: []T{one}}, nil
	}
	var out entity.BrowseResult[T]
	if err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSearch executes a search request and decodes one page of scored T.
func GetSearch[T entity.Record](ctx context.Context, c *Client, req Request) (*entity.SearchResult[T], error) {
	if err := checkTarget[T](req, OpSearch); err != nil {
		return nil, err
	}
	var out entity.SearchResult[T]
	if err := c.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// checkTarget makes sure T is the record type the request returns.
func checkTarget[T entity.Record](req Request, op Operation) error {
	var zero T
	if req.op != op {
		return validationErrorf("expected a %s request, got %s", op, req.op)
	}
	if zero.ResourcePath() != req.kind.String() {
		return validationErrorf("%T cannot hold a %s response", zero, req.kind)
	}
	return nil
}
