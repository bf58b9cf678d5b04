// Package probe checks a running stub against its response contract and
// measures request latency.
package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/darbotlabs/lanton-stubs/internal/config"
	"github.com/darbotlabs/lanton-stubs/internal/http"
	"github.com/darbotlabs/lanton-stubs/pkg/jsonpath"
	"github.com/darbotlabs/lanton-stubs/pkg/jsonschema"
)

// Check names
const (
	CheckReachable   = "reachable"
	CheckStatus      = "status 200"
	CheckContentType = "content type"
	CheckSchema      = "schema"
	CheckTimestamps  = "timestamps non-decreasing"
	CheckParsed      = "post valid json"
	CheckMalformed   = "post malformed json"
	CheckPage        = "status page"
)

// Check is the outcome of one named assertion across all probe requests
type Check struct {
	Name   string `json:"name" yaml:"name"`
	Passed bool   `json:"passed" yaml:"passed"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Latency summarises request latency in milliseconds
type Latency struct {
	Min float64 `json:"minMs" yaml:"minMs"`
	P50 float64 `json:"p50Ms" yaml:"p50Ms"`
	P99 float64 `json:"p99Ms" yaml:"p99Ms"`
	Max float64 `json:"maxMs" yaml:"maxMs"`
}

// Report is the result of probing one target
type Report struct {
	Target   string  `json:"target" yaml:"target"`
	Kind     string  `json:"kind" yaml:"kind"`
	URL      string  `json:"url" yaml:"url"`
	Requests int     `json:"requests" yaml:"requests"`
	Checks   []Check `json:"checks" yaml:"checks"`
	Latency  Latency `json:"latency" yaml:"latency"`
}

// Passed reports whether every check passed
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return len(r.Checks) > 0
}

// Failures returns the checks that did not pass
func (r *Report) Failures() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

// Probe sends target.Count GET requests (at least one) to the target and
// checks each response. OmniParser targets also get one valid and one
// malformed POST.
func Probe(ctx context.Context, target config.Target, timeout time.Duration) *Report {
	p := &prober{
		target: target,
		client: http.NewClient(
			http.WithBaseURL(target.URL),
			http.WithTimeout(timeout),
			http.WithHeader("User-Agent", "stubctl"),
		),
		hist:    hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3),
		results: make(map[string]*Check),
	}
	return p.run(ctx)
}

type prober struct {
	target   config.Target
	client   *http.Client
	hist     *hdrhistogram.Histogram
	requests int
	order    []string
	results  map[string]*Check
}

func (p *prober) run(ctx context.Context) *Report {
	count := p.target.Count
	if count < 1 {
		count = 1
	}

	lastTimestamp := ""
	for i := 0; i < count; i++ {
		resp, ok := p.get(ctx, getPath(p.target.Kind))
		if !ok {
			break
		}
		p.expectJSON(resp, getSchema(p.target.Kind))

		if p.target.Kind != config.KindFlaskGUI {
			ts, err := jsonpath.Extract(resp.BodyString(), "$.timestamp")
			switch {
			case err != nil:
				p.record(CheckTimestamps, false, err.Error())
			case ts < lastTimestamp:
				p.record(CheckTimestamps, false, fmt.Sprintf("%s issued after %s", ts, lastTimestamp))
			default:
				p.record(CheckTimestamps, true, "")
				lastTimestamp = ts
			}
		}
	}

	if p.passed(CheckReachable) {
		switch p.target.Kind {
		case config.KindOmniParser:
			p.probeParse(ctx)
		case config.KindFlaskGUI:
			p.probePage(ctx)
		}
	}

	return p.report()
}

func (p *prober) get(ctx context.Context, path string) (*http.Response, bool) {
	resp, err := p.client.Get(ctx, path)
	return p.received(resp, err)
}

func (p *prober) post(ctx context.Context, body string) (*http.Response, bool) {
	resp, err := p.client.Post(ctx, "/", "application/json", []byte(body))
	return p.received(resp, err)
}

func (p *prober) received(resp *http.Response, err error) (*http.Response, bool) {
	if err != nil {
		p.record(CheckReachable, false, err.Error())
		return nil, false
	}
	p.record(CheckReachable, true, "")

	p.requests++
	us := resp.ResponseTime.Microseconds()
	if us < 1 {
		us = 1
	}
	p.hist.RecordValue(us)

	p.record(CheckStatus, resp.StatusCode == 200, fmt.Sprintf("got %s", resp.Status))
	return resp, true
}

func (p *prober) expectJSON(resp *http.Response, schema *jsonschema.Schema) {
	mt := resp.MediaType()
	p.record(CheckContentType, mt == "application/json", fmt.Sprintf("got %q", mt))

	if err := schema.Validate(resp.Body); err != nil {
		p.record(CheckSchema, false, fmt.Sprintf("%s: %v", schema.Name(), err))
		return
	}
	p.record(CheckSchema, true, "")
}

func (p *prober) probeParse(ctx context.Context) {
	if resp, ok := p.post(ctx, `{"type":"json"}`); ok {
		err := parsedSchema.Validate(resp.Body)
		inputType, _ := jsonpath.Extract(resp.BodyString(), "$.input_type")
		switch {
		case err != nil:
			p.record(CheckParsed, false, err.Error())
		case inputType != "json":
			p.record(CheckParsed, false, fmt.Sprintf("input_type %q, want \"json\"", inputType))
		default:
			p.record(CheckParsed, true, "")
		}
	}

	if resp, ok := p.post(ctx, "not-json"); ok {
		if err := failedSchema.Validate(resp.Body); err != nil {
			p.record(CheckMalformed, false, err.Error())
		} else {
			p.record(CheckMalformed, true, "")
		}
	}
}

func (p *prober) probePage(ctx context.Context) {
	resp, ok := p.get(ctx, "/")
	if !ok {
		return
	}

	switch {
	case resp.MediaType() != "text/html":
		p.record(CheckPage, false, fmt.Sprintf("content type %q", resp.MediaType()))
	case !strings.Contains(resp.BodyString(), "Darbot Flask GUI"):
		p.record(CheckPage, false, "page title missing")
	default:
		p.record(CheckPage, true, "")
	}
}

// record keeps the first failure detail for each check; a check that has
// failed once stays failed.
func (p *prober) record(name string, passed bool, detail string) {
	c, ok := p.results[name]
	if !ok {
		c = &Check{Name: name, Passed: true}
		p.results[name] = c
		p.order = append(p.order, name)
	}
	if !passed && c.Passed {
		c.Passed = false
		c.Detail = detail
	}
}

func (p *prober) passed(name string) bool {
	c, ok := p.results[name]
	return ok && c.Passed
}

func (p *prober) report() *Report {
	r := &Report{
		Target:   p.target.Name,
		Kind:     p.target.Kind,
		URL:      p.target.URL,
		Requests: p.requests,
	}
	for _, name := range p.order {
		r.Checks = append(r.Checks, *p.results[name])
	}

	if p.hist.TotalCount() > 0 {
		r.Latency = Latency{
			Min: millis(p.hist.Min()),
			P50: millis(p.hist.ValueAtQuantile(50)),
			P99: millis(p.hist.ValueAtQuantile(99)),
			Max: millis(p.hist.Max()),
		}
	}
	return r
}

func millis(us int64) float64 {
	return float64(us) / 1000
}

func getPath(kind string) string {
	if kind == config.KindFlaskGUI {
		return "/api/status"
	}
	return "/"
}

func getSchema(kind string) *jsonschema.Schema {
	switch kind {
	case config.KindOmniParser:
		return omniparserSchema
	case config.KindFlaskGUI:
		return flaskStatusSchema
	default:
		return bitnetSchema
	}
}
