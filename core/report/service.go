package report

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/pkg/log"
)

const instrumentationName = "github.com/goto/folio/core/report"

//go:generate mockery --name=metadataRepository --exported --with-expecter
type metadataRepository interface {
	GetPrintFormat(ctx context.Context, id int64) (*domain.PrintFormat, error)
	GetTableName(ctx context.Context, tableID int64) (string, error)
	GetReportView(ctx context.Context, id int64) (*domain.ReportView, error)
	GetIdentifierColumns(ctx context.Context, tableName string) ([]*domain.IdentifierColumn, error)
	GetTableReference(ctx context.Context, referenceValueID int64) (*domain.TableReference, error)
	TableExists(ctx context.Context, tableName string) (bool, error)
}

//go:generate mockery --name=accessFilter --exported --with-expecter
type accessFilter interface {
	AddAccessSQL(ctx context.Context, stmt, tableName string, principal domain.Principal) (string, error)
}

//go:generate mockery --name=rowSource --exported --with-expecter
type rowSource interface {
	QueryRows(ctx context.Context, query string) (*sql.Rows, error)
}

//go:generate mockery --name=dialect --exported --with-expecter
type dialect interface {
	IsPagingSupported() bool
	AddPagingSQL(stmt string, start, end int) string
	IsQueryTimeout(err error) bool
}

// GetPrintDataRequest identifies the print format to load and the rows to
// read. Format takes precedence over PrintFormatID.
type GetPrintDataRequest struct {
	PrintFormatID int64
	Format        *domain.PrintFormat
	Query         *domain.Query
	Principal     domain.Principal
}

type Service struct {
	metadata metadataRepository
	access   accessFilter
	rows     rowSource
	dialect  dialect
	config   Config
	logger   log.Logger

	tracer     trace.Tracer
	rowCounter metric.Int64Counter
}

type ServiceDeps struct {
	Metadata     metadataRepository
	AccessFilter accessFilter
	RowSource    rowSource
	Dialect      dialect
	Config       Config
	Logger       log.Logger
}

func NewService(deps ServiceDeps) *Service {
	rowCounter, _ := otel.Meter(instrumentationName).Int64Counter("report.rows",
		metric.WithDescription("Rows appended to loaded reports"))

	return &Service{
		metadata:   deps.Metadata,
		access:     deps.AccessFilter,
		rows:       deps.RowSource,
		dialect:    deps.Dialect,
		config:     deps.Config,
		logger:     deps.Logger,
		tracer:     otel.Tracer(instrumentationName),
		rowCounter: rowCounter,
	}
}

// GetPrintData builds the statement of a print format, runs it and returns
// its rows with group, total and running total rows folded in. Nothing is
// returned when the load fails.
func (s *Service) GetPrintData(ctx context.Context, req GetPrintDataRequest, opts ...Option) (*domain.PrintData, error) {
	ctx, span := s.tracer.Start(ctx, "report.GetPrintData")
	defer span.End()

	runID := uuid.New().String()
	if mdCtx, err := log.WithMetadata(ctx, map[string]interface{}{"report_run_id": runID}); err == nil {
		ctx = mdCtx
	}
	span.SetAttributes(attribute.String("report.run_id", runID))

	pd, err := s.getPrintData(ctx, req, s.getOptions(opts...))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.String("report.table", pd.TableName),
		attribute.Int("report.rows", pd.RowCount()),
	)
	return pd, nil
}

func (s *Service) getPrintData(ctx context.Context, req GetPrintDataRequest, o options) (*domain.PrintData, error) {
	start := time.Now()

	format := req.Format
	if format == nil {
		if req.PrintFormatID == 0 {
			return nil, ErrNoPrintFormat
		}
		var err error
		format, err = s.metadata.GetPrintFormat(ctx, req.PrintFormatID)
		if err != nil {
			return nil, fmt.Errorf("getting print format %d: %w", req.PrintFormatID, err)
		}
		if format == nil {
			return nil, ErrNoPrintFormat
		}
	}

	language := s.config.Language
	if o.language != nil {
		language = *o.language
	}
	query := copyQuery(req.Query)

	reportName := format.Name
	var tableName string
	var view *domain.ReportView
	if format.ReportViewID != 0 {
		var err error
		view, err = s.metadata.GetReportView(ctx, format.ReportViewID)
		if err != nil {
			return nil, fmt.Errorf("getting report view %d: %w", format.ReportViewID, err)
		}
		if view != nil {
			tableName = view.TableName
			reportName = view.Name
			if where := strings.TrimSpace(view.WhereClause); where != "" {
				where = "(" + where + ")"
				if strings.Contains(where, "@") {
					where = parseContext(o.vars, where, true)
				}
				query.Restrictions = append(query.Restrictions, &domain.Restriction{SQL: where})
				query.IsActive = true
			}
		}
	} else {
		var err error
		tableName, err = s.metadata.GetTableName(ctx, format.TableID)
		if err != nil {
			return nil, fmt.Errorf("getting table %d: %w", format.TableID, err)
		}
	}
	if tableName == "" {
		return nil, fmt.Errorf("%w: print format %q", ErrTableNotFound, format.Name)
	}

	var baseTableName string
	if format.IsTranslationView && strings.HasSuffix(strings.ToLower(tableName), "_v") {
		exists, err := s.metadata.TableExists(ctx, tableName+"t")
		if err != nil {
			return nil, fmt.Errorf("checking translation view of %q: %w", tableName, err)
		}
		if exists {
			baseTableName = tableName
			tableName += "t"
			query.Restrictions = append(query.Restrictions, &domain.Restriction{
				ColumnName: "AD_Language",
				Operator:   domain.OperatorEqual,
				Value:      language.Code,
			})
			query.IsActive = true
		}
	}
	query.TableName = tableName

	builder := &planBuilder{
		tableName:     tableName,
		baseTableName: baseTableName,
		vars:          o.vars,
		lookups:       &lookupBuilder{metadata: s.metadata, language: language},
	}
	p, err := builder.build(ctx, format)
	if err != nil {
		return nil, err
	}

	asm := &assembler{access: s.access}
	stmt, err := asm.assemble(ctx, p, query, view, req.Principal)
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "report statement assembled", "report", reportName, "sql", stmt)

	pd := domain.NewPrintData(reportName, tableName)
	pd.Columns = p.columns
	pd.SQL = stmt
	pd.HasLevelNo = p.hasLevelNo

	limits, err := s.config.LimitsFor(req.Principal.ClientID)
	if err != nil {
		return nil, fmt.Errorf("resolving report limits: %w", err)
	}
	l := &loader{
		rows:    s.rows,
		dialect: s.dialect,
		logger:  s.logger,
		limits:  limits,
	}
	f := newFolder(pd, p, s.logger, o.summary, format.PrintFunctionSymbols)
	if err := l.load(ctx, pd, f); err != nil {
		s.logger.Error(ctx, "failed to load report", "report", reportName, "error", err)
		return nil, err
	}

	if s.rowCounter != nil {
		s.rowCounter.Add(ctx, int64(pd.RowCount()), metric.WithAttributes(attribute.String("table", tableName)))
	}
	s.logger.Info(ctx, "report loaded", "report", reportName, "rows", pd.RowCount(), "elapsed", time.Since(start).String())

	return pd, nil
}

func copyQuery(q *domain.Query) *domain.Query {
	if q == nil {
		return &domain.Query{}
	}
	c := *q
	c.Restrictions = make([]*domain.Restriction, 0, len(q.Restrictions))
	for _, r := range q.Restrictions {
		rc := *r
		c.Restrictions = append(c.Restrictions, &rc)
	}
	return &c
}
