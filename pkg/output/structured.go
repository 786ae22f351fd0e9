package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/pathglob/pkg/types"
)

// PatternResult is the document entry written for one pattern
type PatternResult struct {
	Pattern string   `json:"pattern" yaml:"pattern"`
	Mode    string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Paths   []string `json:"paths" yaml:"paths"`
	Errors  []string `json:"errors" yaml:"errors"`
}

type encodeFunc func(w io.Writer, results []PatternResult) error

func encodeJSON(w io.Writer, results []PatternResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func encodeYAML(w io.Writer, results []PatternResult) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(results); err != nil {
		return err
	}
	return encoder.Close()
}

// structuredRenderer collects every pattern and writes a single
// document on Flush
type structuredRenderer struct {
	out     io.Writer
	encode  encodeFunc
	results []PatternResult
}

func newStructuredRenderer(out io.Writer, encode encodeFunc) *structuredRenderer {
	return &structuredRenderer{
		out:     out,
		encode:  encode,
		results: []PatternResult{},
	}
}

func (r *structuredRenderer) open(pattern, mode string) {
	r.results = append(r.results, PatternResult{
		Pattern: pattern,
		Mode:    mode,
		Paths:   []string{},
		Errors:  []string{},
	})
}

func (r *structuredRenderer) current() *PatternResult {
	if len(r.results) == 0 {
		r.open("", "")
	}
	return &r.results[len(r.results)-1]
}

func (r *structuredRenderer) Begin(pattern string, mode types.ResolutionMode) error {
	r.open(pattern, mode.String())
	return nil
}

func (r *structuredRenderer) Invalid(pattern string, err error) error {
	r.open(pattern, "")
	cur := r.current()
	cur.Errors = append(cur.Errors, err.Error())
	return nil
}

func (r *structuredRenderer) Path(path string) error {
	cur := r.current()
	cur.Paths = append(cur.Paths, path)
	return nil
}

func (r *structuredRenderer) Failure(_ string, err error) error {
	cur := r.current()
	cur.Errors = append(cur.Errors, err.Error())
	return nil
}

func (r *structuredRenderer) Flush() error {
	return r.encode(r.out, r.results)
}
