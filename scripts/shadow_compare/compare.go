package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"
)

// volatileFields differ between backends for the same logical record.
var volatileFields = map[string]bool{
	"_id":        true,
	"id":         true,
	"__v":        true,
	"created_at": true,
	"updated_at": true,
	"token":      true,
}

type target struct {
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body,omitempty"`
	Critical bool            `json:"critical"`
	// Unordered compares array payloads as multisets.
	Unordered bool `json:"unordered"`
}

type targetFile struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Err            error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func (c comparison) breaking() bool {
	return c.Target.Critical && (c.Err != nil || !c.StatusMatch || !c.BodyMatch)
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return file.Targets, nil
}

type comparer struct {
	client     *http.Client
	goBase     string
	legacyBase string
}

func (c comparer) compare(ctx context.Context, tgt target) comparison {
	comp := comparison{Target: tgt}

	goStatus, goBody, goDur, err := c.fetch(ctx, c.goBase, tgt)
	comp.DurationGo = goDur
	if err != nil {
		comp.Err = fmt.Errorf("go request failed: %w", err)
		return comp
	}
	legacyStatus, legacyBody, legacyDur, err := c.fetch(ctx, c.legacyBase, tgt)
	comp.DurationLegacy = legacyDur
	if err != nil {
		comp.Err = fmt.Errorf("legacy request failed: %w", err)
		return comp
	}

	comp.GoStatus = goStatus
	comp.LegacyStatus = legacyStatus
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(unwrapEnvelope(goBody), legacyBody, tgt.Unordered)
	return comp
}

func (c comparer) fetch(ctx context.Context, base string, tgt target) (int, []byte, time.Duration, error) {
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var body io.Reader
	if len(tgt.Body) > 0 {
		body = bytes.NewReader(tgt.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(base, "/")+path, body)
	if err != nil {
		return 0, nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, payload, time.Since(start), nil
}

// unwrapEnvelope returns the data member of a {data, error, meta} envelope.
// Bodies that are not envelopes are returned unchanged.
func unwrapEnvelope(body []byte) []byte {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}
	data, ok := env["data"]
	if !ok {
		return body
	}
	for key := range env {
		if key != "data" && key != "meta" && key != "error" {
			return body
		}
	}
	return data
}

func bodiesEqual(a, b []byte, unordered bool) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}
	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	aj = normalize(aj, unordered)
	bj = normalize(bj, unordered)
	return reflect.DeepEqual(aj, bj)
}

func normalize(v interface{}, unordered bool) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			if volatileFields[k] {
				continue
			}
			out[k] = normalize(item, unordered)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalize(item, unordered)
		}
		if unordered {
			sort.Slice(out, func(i, j int) bool {
				return canonical(out[i]) < canonical(out[j])
			})
		}
		return out
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return val
	default:
		return v
	}
}

func canonical(v interface{}) string {
	raw, _ := json.Marshal(v)
	return string(raw)
}

func printReport(w io.Writer, results []comparison) {
	fmt.Fprintln(w, "Legacy Parity Report")
	fmt.Fprintln(w, "====================")
	for _, res := range results {
		status := "OK"
		switch {
		case res.Err != nil:
			status = "ERROR"
		case !res.StatusMatch || !res.BodyMatch:
			status = "DIFF"
		}
		fmt.Fprintf(w, "[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		fmt.Fprintf(w, "  Go: %d (%s) | Legacy: %d (%s)\n", res.GoStatus, res.DurationGo, res.LegacyStatus, res.DurationLegacy)
		if res.Err != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Err)
			continue
		}
		fmt.Fprintf(w, "  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
	}
}
