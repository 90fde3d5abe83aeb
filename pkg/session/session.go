// Package session manages the connection to a Snowflake engine and
// hands out table facades and eager operations over it.
//
// The session owns the key-mapping options: the mapper is resolved once
// at Open time (explicitly via WithKeyMapper, by name from the config,
// or the documented default) and passed down to every facade and
// conversion call. The conversion layer itself never consults a
// default.
package session

import (
	"context"
	"database/sql"
	"time"

	sf "github.com/snowflakedb/gosnowflake"
	"go.uber.org/zap"

	"github.com/borealis-data/borealis/pkg/colname"
	"github.com/borealis-data/borealis/pkg/config"
	"github.com/borealis-data/borealis/pkg/convert"
	"github.com/borealis-data/borealis/pkg/errors"
	"github.com/borealis-data/borealis/pkg/keymap"
	"github.com/borealis-data/borealis/pkg/logger"
	"github.com/borealis-data/borealis/pkg/metrics"
	"github.com/borealis-data/borealis/pkg/record"
	"github.com/borealis-data/borealis/pkg/schema"
	"github.com/borealis-data/borealis/pkg/table"
)

// Session is an open connection to a Snowflake database plus the
// key-mapping options shared by everything derived from it.
type Session struct {
	db     *sql.DB
	cfg    *config.Config
	mapper keymap.Mapper
	logger *zap.Logger
}

// Option configures a Session at Open time.
type Option func(*Session)

// WithKeyMapper selects the key-mapping convention for the session,
// overriding the config's key_mapper name.
func WithKeyMapper(m keymap.Mapper) Option {
	return func(s *Session) { s.mapper = m }
}

// WithLogger supplies a logger; defaults to the global one.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Open connects to Snowflake with the given configuration. The mapper
// defaults to keymap.CamelUpper, matching Go application keys against
// Snowflake's upper-case identifier convention.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		mapper: keymap.CamelUpper,
		logger: logger.Get(),
	}
	if cfg.KeyMapper != "" {
		m, err := mapperByName(cfg.KeyMapper)
		if err != nil {
			return nil, err
		}
		s.mapper = m
	}
	for _, opt := range opts {
		opt(s)
	}

	dsn, err := sf.DSN(&sf.Config{
		Account:        cfg.Account,
		User:           cfg.User,
		Password:       cfg.Password,
		Database:       cfg.Database,
		Schema:         cfg.Schema,
		Warehouse:      cfg.Warehouse,
		Role:           cfg.Role,
		LoginTimeout:   cfg.Timeouts.Login,
		RequestTimeout: cfg.Timeouts.Request,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "building DSN")
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConnection, "opening connection")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, errors.ErrorTypeConnection, "pinging engine")
	}
	s.db = db

	s.logger.Info("session opened",
		zap.String("account", cfg.Account),
		zap.String("database", cfg.Database),
		zap.String("schema", cfg.Schema),
		zap.String("warehouse", cfg.Warehouse),
		zap.String("key_mapper", s.mapper.Name()))

	return s, nil
}

// Close releases the underlying connection pool.
func (s *Session) Close() error {
	s.logger.Info("session closed", zap.String("account", s.cfg.Account))
	return s.db.Close()
}

// Mapper returns the session's resolved key mapper.
func (s *Session) Mapper() keymap.Mapper {
	return s.mapper
}

// Table returns a column-resolving facade over the named remote table.
// The facade reads live metadata on every call and caches nothing.
func (s *Session) Table(name string) *table.Table {
	return table.New(&tableHandle{s: s, name: name}, s.mapper)
}

// CreateRecords creates a temporary table shaped by the schema and
// loads the records into it, returning a facade over the new table.
func (s *Session) CreateRecords(ctx context.Context, name string, recs []record.Record, sc *schema.Schema) (*table.Table, error) {
	createSQL := buildCreateTableSQL(name, sc, true)
	if err := s.execute(ctx, "create", createSQL); err != nil {
		return nil, err
	}

	rows := convert.RecordsToRows(recs, sc, s.mapper)
	metrics.RecordsConverted.WithLabelValues("to_row").Add(float64(len(rows)))

	insertSQL := buildInsertSQL(name, sc)
	for _, row := range rows {
		if err := s.execute(ctx, "insert", insertSQL, row...); err != nil {
			return nil, err
		}
	}

	s.logger.Info("records loaded",
		zap.String("table", name),
		zap.Int("records", len(recs)),
		zap.Int("fields", sc.Len()))

	return s.Table(name), nil
}

// Collect runs a query and returns its result set as application
// records, with null columns omitted per record.
func (s *Session) Collect(ctx context.Context, query string) ([]record.Record, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("select", "error").Inc()
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "executing query")
	}
	defer rows.Close()
	metrics.QueriesTotal.WithLabelValues("select", "ok").Inc()
	metrics.QueryDuration.WithLabelValues("select").Observe(time.Since(start).Seconds())

	sc, err := resultSchema(rows)
	if err != nil {
		return nil, err
	}

	var out []record.Row
	for rows.Next() {
		slots := make([]interface{}, sc.Len())
		ptrs := make([]interface{}, sc.Len())
		for i := range slots {
			ptrs[i] = &slots[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeQuery, "scanning row")
		}
		out = append(out, record.Row(slots))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "reading result set")
	}

	recs, err := convert.RowsToRecords(out, sc, s.mapper)
	if err != nil {
		return nil, err
	}
	metrics.RecordsConverted.WithLabelValues("to_record").Add(float64(len(recs)))
	return recs, nil
}

// Count returns the number of rows in the named table.
func (s *Session) Count(ctx context.Context, name string) (int64, error) {
	var n int64
	start := time.Now()
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+name).Scan(&n)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues("count", "error").Inc()
		return 0, errors.Wrap(err, errors.ErrorTypeQuery, "counting rows")
	}
	metrics.QueriesTotal.WithLabelValues("count", "ok").Inc()
	metrics.QueryDuration.WithLabelValues("count").Observe(time.Since(start).Seconds())
	return n, nil
}

// execute runs one statement with logging and metrics.
func (s *Session) execute(ctx context.Context, kind, stmt string, args ...interface{}) error {
	start := time.Now()
	_, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(kind, "error").Inc()
		s.logger.Error("statement failed",
			zap.String("kind", kind),
			zap.Error(err))
		return errors.Wrap(err, errors.ErrorTypeQuery, "executing "+kind)
	}
	metrics.QueriesTotal.WithLabelValues(kind, "ok").Inc()
	metrics.QueryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	return nil
}

// resultSchema builds a schema descriptor from a live result set. The
// engine reports synthetic names for computed columns; normalization
// flattens them before they enter the schema.
func resultSchema(rows *sql.Rows) (*schema.Schema, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "reading column types")
	}

	fields := make([]schema.Field, len(types))
	for i, ct := range types {
		name, err := colname.Normalize(ct.Name())
		if err != nil {
			return nil, err
		}
		nullable, known := ct.Nullable()
		fields[i] = schema.Field{
			Name:     name,
			Type:     fieldTypeFor(ct.DatabaseTypeName()),
			Nullable: nullable || !known,
		}
	}
	return &schema.Schema{Fields: fields}, nil
}

// mapperByName resolves a convention name from configuration.
func mapperByName(name string) (keymap.Mapper, error) {
	m, ok := keymap.ByName(name)
	if !ok {
		return keymap.Mapper{}, errors.Newf(errors.ErrorTypeConfig,
			"unknown key mapper %q", name)
	}
	return m, nil
}

// tableHandle adapts a session-scoped table to the facade's Handle
// interface. Field names come from the engine on every call.
type tableHandle struct {
	s    *Session
	name string
}

func (h *tableHandle) Name() string {
	return h.name
}

func (h *tableHandle) FieldNames(ctx context.Context) ([]string, error) {
	metrics.SchemaReads.Inc()

	// LIMIT 0 returns no rows but carries the full column metadata.
	rows, err := h.s.db.QueryContext(ctx, "SELECT * FROM "+h.name+" LIMIT 0")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "reading table metadata")
	}
	defer rows.Close()

	raw, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeQuery, "reading column names")
	}

	names := make([]string, len(raw))
	for i, r := range raw {
		name, err := colname.Normalize(r)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

func (h *tableHandle) ColumnRef(name string) *table.Column {
	return &table.Column{Table: h.name, Name: name}
}
