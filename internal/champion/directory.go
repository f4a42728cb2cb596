// Package champion resolves champion names and aliases to the numeric ids
// the client API speaks, backed by a Data Dragon table cached on disk.
package champion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const ddragonBase = "https://ddragon.leagueoflegends.com"

// Record is one champion entry. Immutable once loaded.
type Record struct {
	ID        int
	Name      string // display name, e.g. "Nunu & Willump"
	Slug      string // internal id, e.g. "Nunu"
	SearchKey string // normalized Name
}

// table is swapped whole on refresh; readers hold a snapshot pointer and are
// never exposed to in-place mutation.
type table struct {
	version string
	byKey   map[string]*Record
	byID    map[int]*Record
}

// Directory owns the champion name table.
type Directory struct {
	cache  *Cache
	log    *zap.Logger
	client *http.Client
	tab    atomic.Pointer[table]
}

func NewDirectory(cache *Cache, log *zap.Logger) *Directory {
	d := &Directory{
		cache:  cache,
		log:    log,
		client: &http.Client{Timeout: 8 * time.Second},
	}
	d.tab.Store(buildTable("builtin", fallbackRecords))
	return d
}

// Load refreshes the table. It short-circuits to the on-disk cache when the
// cached Data Dragon version is still current, and degrades to the built-in
// fallback table on any failure. It never returns an error; callers keep
// resolving against whatever table is loaded.
func (d *Directory) Load(ctx context.Context) {
	version, err := d.currentVersion(ctx)
	if err != nil {
		d.log.Warn("champion data version lookup failed, using fallback table", zap.Error(err))
		d.loadFromCacheAnyVersion()
		return
	}

	if d.cache != nil {
		if records, err := d.cache.Records(ctx, version); err == nil && len(records) > 0 {
			d.tab.Store(buildTable(version, records))
			d.log.Debug("champion table loaded from cache", zap.String("version", version), zap.Int("count", len(records)))
			return
		}
	}

	records, err := d.fetchRecords(ctx, version)
	if err != nil {
		d.log.Warn("champion data fetch failed, using fallback table", zap.Error(err))
		d.loadFromCacheAnyVersion()
		return
	}

	d.tab.Store(buildTable(version, records))
	d.log.Info("champion table refreshed", zap.String("version", version), zap.Int("count", len(records)))

	if d.cache != nil {
		if err := d.cache.Store(ctx, version, records); err != nil {
			d.log.Warn("champion cache write failed", zap.Error(err))
		}
	}
}

// loadFromCacheAnyVersion is the offline path: a stale cached table beats the
// tiny built-in one.
func (d *Directory) loadFromCacheAnyVersion() {
	if d.cache == nil {
		return
	}
	records, version, err := d.cache.LatestRecords(context.Background())
	if err != nil || len(records) == 0 {
		return
	}
	d.tab.Store(buildTable(version, records))
	d.log.Info("champion table loaded from stale cache", zap.String("version", version))
}

// Resolve maps a champion name, alias, or numeric id string to its id.
func (d *Directory) Resolve(nameOrID string) (int, bool) {
	if id, err := strconv.Atoi(nameOrID); err == nil && id > 0 {
		return id, true
	}
	key := Normalize(nameOrID)
	if key == "" {
		return 0, false
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	tab := d.tab.Load()
	if rec, ok := tab.byKey[key]; ok {
		return rec.ID, true
	}
	return 0, false
}

// NameFromID is the inverse lookup, for status messages.
func (d *Directory) NameFromID(id int) (string, bool) {
	if rec, ok := d.tab.Load().byID[id]; ok {
		return rec.Name, true
	}
	return "", false
}

// Version reports the loaded table's data version.
func (d *Directory) Version() string {
	return d.tab.Load().version
}

func (d *Directory) currentVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := d.getJSON(ctx, ddragonBase+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("empty version list")
	}
	return versions[0], nil
}

func (d *Directory) fetchRecords(ctx context.Context, version string) ([]Record, error) {
	var payload struct {
		Data map[string]struct {
			Key  string `json:"key"`
			Name string `json:"name"`
			ID   string `json:"id"`
		} `json:"data"`
	}
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", ddragonBase, version)
	if err := d.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(payload.Data))
	for _, entry := range payload.Data {
		id, err := strconv.Atoi(entry.Key)
		if err != nil {
			continue
		}
		records = append(records, Record{
			ID:        id,
			Name:      entry.Name,
			Slug:      entry.ID,
			SearchKey: Normalize(entry.Name),
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("champion data contained no entries")
	}
	return records, nil
}

func (d *Directory) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func buildTable(version string, records []Record) *table {
	t := &table{
		version: version,
		byKey:   make(map[string]*Record, len(records)),
		byID:    make(map[int]*Record, len(records)),
	}
	for i := range records {
		rec := records[i]
		if rec.SearchKey == "" {
			rec.SearchKey = Normalize(rec.Name)
		}
		t.byKey[rec.SearchKey] = &rec
		if slug := Normalize(rec.Slug); slug != "" && slug != rec.SearchKey {
			t.byKey[slug] = &rec
		}
		t.byID[rec.ID] = &rec
	}
	return t
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics, and drops everything that is not
// a letter or digit, so "Kai'Sa", "kaisa" and "KAÏSA" all key identically.
func Normalize(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}
	out := make([]rune, 0, len(folded))
	for _, r := range folded {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		}
	}
	return string(out)
}
