// Package feeds loads the collector's feed registry: named API queries
// declared in YAML or JSON.
package feeds

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/football-stats/pkg/footballapi"
)

// Feed is one recurring API query.
type Feed struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Operation string `json:"operation" yaml:"operation"`
	Enabled   *bool  `json:"enabled" yaml:"enabled"`

	footballapi.Params `yaml:",inline"`

	op footballapi.Operation
}

// Op returns the resolved operation. Only valid on feeds loaded through a Registry.
func (f Feed) Op() footballapi.Operation { return f.op }

// EnabledValue returns enabled flag defaulting to true.
func (f Feed) EnabledValue() bool {
	if f.Enabled == nil {
		return true
	}
	return *f.Enabled
}

type registryFile struct {
	Feeds []Feed `json:"feeds" yaml:"feeds"`
}

// Registry holds the feeds loaded from a config file.
type Registry struct {
	mu    sync.RWMutex
	feeds []Feed
	idx   map[string]Feed
}

// LoadRegistry loads feeds from a YAML/JSON file.
func LoadRegistry(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("feeds file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feeds file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}

	parsed, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return NewRegistry(parsed.Feeds)
}

// NewRegistry sanitizes and validates feeds.
func NewRegistry(feeds []Feed) (*Registry, error) {
	if len(feeds) == 0 {
		return nil, errors.New("feeds file contains no feeds entries")
	}

	reg := &Registry{
		feeds: make([]Feed, len(feeds)),
		idx:   make(map[string]Feed, len(feeds)),
	}
	for i := range feeds {
		f, err := sanitizeFeed(feeds[i])
		if err == nil {
			err = validateFeed(f)
		}
		if err != nil {
			return nil, fmt.Errorf("feeds[%d]: %w", i, err)
		}
		if _, exists := reg.idx[f.ID]; exists {
			return nil, fmt.Errorf("duplicate feed id %q", f.ID)
		}
		reg.feeds[i] = f
		reg.idx[f.ID] = f
	}
	return reg, nil
}

func parseRegistry(data []byte, ext string) (registryFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg registryFile
		if err := d.fn(data, &reg); err == nil {
			return reg, nil
		}
	}

	return registryFile{}, errors.New("feeds file format not recognized (expected YAML or JSON)")
}

func sanitizeFeed(f Feed) (Feed, error) {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Operation = strings.TrimSpace(f.Operation)
	f.League = strings.TrimSpace(f.League)
	f.Season = strings.TrimSpace(f.Season)

	if f.Name == "" {
		f.Name = f.ID
	}
	if f.Enabled == nil {
		def := true
		f.Enabled = &def
	}
	if f.Operation == "" {
		return f, fmt.Errorf("operation is required for feed %q", f.ID)
	}
	op, err := footballapi.ParseOperation(f.Operation)
	if err != nil {
		return f, fmt.Errorf("feed %q: %w", f.ID, err)
	}
	f.op = op
	f.Operation = op.String()
	return f, nil
}

func validateFeed(f Feed) error {
	if f.ID == "" {
		return errors.New("id is required")
	}
	ep, ok := f.op.Endpoint()
	if !ok {
		return fmt.Errorf("feed %q has no endpoint", f.ID)
	}
	if _, err := ep.Query(f.Params); err != nil {
		return fmt.Errorf("feed %q: %w", f.ID, err)
	}
	return nil
}

// ByID returns the feed by id.
func (r *Registry) ByID(id string) (Feed, bool) {
	if r == nil {
		return Feed{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.idx[strings.TrimSpace(id)]
	return f, ok
}

// All returns all configured feeds in file order.
func (r *Registry) All() []Feed {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Feed, len(r.feeds))
	copy(out, r.feeds)
	return out
}

// Enabled returns feeds that are enabled.
func (r *Registry) Enabled() []Feed {
	all := r.All()
	out := make([]Feed, 0, len(all))
	for _, f := range all {
		if f.EnabledValue() {
			out = append(out, f)
		}
	}
	return out
}
