package modules

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dsimunic/elm-wrap-sub004/internal/logger"
	"github.com/dsimunic/elm-wrap-sub004/internal/parser"
)

// Cache is the shared ExportSource. Records are memoized by module name;
// population (locate, parse, extract) is serialized so each module is
// read at most once per Cache. Memoized records are served concurrently.
type Cache struct {
	locator Locator
	index   *Index
	log     *zap.Logger

	// fill serializes population; mu guards the maps, so hits never wait
	// for a parse in progress.
	fill    sync.Mutex
	mu      sync.RWMutex
	records map[string]ExportRecord
	modules map[string]*Module
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithIndex adds a persistent second tier.
func WithIndex(ix *Index) CacheOption {
	return func(c *Cache) { c.index = ix }
}

// WithLogger overrides the global logger.
func WithLogger(l *zap.Logger) CacheOption {
	return func(c *Cache) { c.log = l }
}

func NewCache(locator Locator, opts ...CacheOption) *Cache {
	c := &Cache{
		locator: locator,
		records: make(map[string]ExportRecord),
		modules: make(map[string]*Module),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.L()
	}
	return c
}

// Exports implements ExportSource.
func (c *Cache) Exports(module string) ExportRecord {
	if rec, ok := c.lookup(module); ok {
		return rec
	}

	c.fill.Lock()
	defer c.fill.Unlock()
	if rec, ok := c.lookup(module); ok {
		return rec
	}
	rec, parsed := c.populate(module)

	c.mu.Lock()
	c.records[module] = rec
	if parsed != nil {
		c.modules[module] = parsed
	}
	c.mu.Unlock()
	return rec
}

func (c *Cache) lookup(module string) (ExportRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[module]
	return rec, ok
}

// Module returns the parsed module if this cache had to parse it. Modules
// answered from the index have no parsed form.
func (c *Cache) Module(name string) (*Module, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.modules[name]
	return m, ok
}

// Len returns the number of memoized records, including misses.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// populate locates and reads module. The parsed module is returned only
// when this call parsed it.
func (c *Cache) populate(module string) (ExportRecord, *Module) {
	miss := ExportRecord{Module: module}
	log := c.log.With(zap.String(logger.FieldModule, module))

	path, src, err := c.locator.Locate(module)
	if err != nil {
		log.Debug("module not located", zap.Error(err))
		return miss, nil
	}
	fp := Fingerprint(src)

	ctx := context.Background()
	if c.index != nil {
		rec, ok, err := c.index.Lookup(ctx, module, fp)
		if err != nil {
			log.Warn("export index lookup failed", zap.Error(err))
		} else if ok {
			log.Debug("export index hit")
			return rec, nil
		}
	}

	file, errs := parser.ParseFile(path, string(src))
	if len(errs) > 0 {
		log.Debug("module parsed with errors",
			zap.String(logger.FieldFile, path),
			zap.Int(logger.FieldCount, len(errs)),
			zap.Error(errs[0]))
	}
	if file == nil || (file.Module == nil && len(errs) > 0) {
		log.Debug("module header unreadable", zap.String(logger.FieldFile, path))
		return miss, nil
	}
	if file.ModuleName() != module {
		log.Warn("module name does not match its path",
			zap.String(logger.FieldFile, path),
			zap.String("declared", file.ModuleName()))
	}

	rec := ExtractExports(file)
	rec.Module = module
	parsed := &Module{Name: module, Path: path, Source: string(src), Fingerprint: fp, File: file}

	if c.index != nil {
		if err := c.index.Store(ctx, rec, fp); err != nil {
			log.Warn("export index store failed", zap.Error(err))
		}
	}
	return rec, parsed
}

// StaticSource is an ExportSource over fixed records.
type StaticSource map[string]ExportRecord

// NewStaticSource builds a StaticSource; every given record is marked Parsed.
func NewStaticSource(records ...ExportRecord) StaticSource {
	s := make(StaticSource, len(records))
	for _, r := range records {
		r.Parsed = true
		s[r.Module] = r
	}
	return s
}

func (s StaticSource) Exports(module string) ExportRecord {
	if r, ok := s[module]; ok {
		return r
	}
	return ExportRecord{Module: module}
}
