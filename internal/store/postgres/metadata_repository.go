package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/goto/folio/domain"
	"github.com/goto/folio/internal/store/postgres/model"
)

const (
	metadataCacheTTL     = 5 * time.Minute
	metadataCacheCleanup = 10 * time.Minute
)

const printFormatItemsQuery = `SELECT pfi.ad_printformatitem_id, pfi.name, pfi.ad_column_id,
	c.columnname, c.columnsql, c.displaytype, c.ad_reference_value_id, c.fieldlength, c.ismandatory, c.iskey,
	rvc.isgroupfunction, rvc.functioncolumn,
	pfi.isgroupby, pfi.issummarized, pfi.isaveraged, pfi.iscounted, pfi.ismincalc, pfi.ismaxcalc,
	pfi.isvariancecalc, pfi.isdeviationcalc, pfi.isrunningtotal, pfi.runningtotallines,
	pfi.isprinted, pfi.sortno, pfi.isdesc, pfi.ispagebreak, pfi.formatpattern, pfi.script, pfi.printformattype
FROM ad_printformatitem pfi
LEFT JOIN ad_column c ON c.ad_column_id = pfi.ad_column_id
LEFT JOIN ad_reportview_col rvc ON rvc.ad_column_id = pfi.ad_column_id
	AND rvc.ad_reportview_id = ? AND rvc.isactive = 'Y'
WHERE pfi.ad_printformat_id = ? AND pfi.isactive = 'Y'
	AND pfi.printformattype IN ('F', 'I', 'P', 'S')
	AND (pfi.isprinted = 'Y' OR c.iskey = 'Y' OR pfi.sortno > 0)
ORDER BY pfi.isprinted DESC, pfi.seqno, pfi.ad_printformatitem_id`

const tableReferenceQuery = `SELECT t.tablename, k.columnname AS keycolumn, d.columnname AS displaycolumn,
	r.isvaluedisplayed, d.istranslated
FROM ad_ref_table r
JOIN ad_table t ON t.ad_table_id = r.ad_table_id
JOIN ad_column k ON k.ad_column_id = r.ad_key
JOIN ad_column d ON d.ad_column_id = r.ad_display
WHERE r.ad_reference_id = ?`

// MetadataRepository reads print formats and the dictionary they refer to.
// Dictionary lookups are cached since they are repeated for every column
// of every report.
type MetadataRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewMetadataRepository(db *gorm.DB) *MetadataRepository {
	return &MetadataRepository{
		db:    db,
		cache: cache.New(metadataCacheTTL, metadataCacheCleanup),
	}
}

// GetPrintFormat returns the print format with its selectable items, printed
// items first then by sequence. Nil is returned when no active print format
// has the id.
func (r *MetadataRepository) GetPrintFormat(ctx context.Context, id int64) (*domain.PrintFormat, error) {
	db := conn(ctx, r.db)

	var m model.PrintFormat
	if err := db.Where("ad_printformat_id = ? AND isactive = 'Y'", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var items []*model.PrintFormatItem
	if err := db.Raw(printFormatItemsQuery, m.ReportViewID.Int64, id).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("reading items of print format %d: %w", id, err)
	}

	return m.ToDomain(items), nil
}

// GetTableName returns the name of the table, empty when unknown.
func (r *MetadataRepository) GetTableName(ctx context.Context, tableID int64) (string, error) {
	key := fmt.Sprintf("table:%d", tableID)
	if v, ok := r.cache.Get(key); ok {
		return v.(string), nil
	}

	var names []string
	if err := conn(ctx, r.db).Raw("SELECT tablename FROM ad_table WHERE ad_table_id = ? AND isactive = 'Y'", tableID).Scan(&names).Error; err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", nil
	}

	r.cache.Set(key, names[0], cache.DefaultExpiration)
	return names[0], nil
}

func (r *MetadataRepository) GetReportView(ctx context.Context, id int64) (*domain.ReportView, error) {
	key := fmt.Sprintf("reportview:%d", id)
	if v, ok := r.cache.Get(key); ok {
		return v.(*domain.ReportView), nil
	}

	var views []*model.ReportView
	err := conn(ctx, r.db).Raw(`SELECT rv.ad_reportview_id, rv.name, t.tablename, rv.whereclause, rv.orderbyclause
		FROM ad_reportview rv JOIN ad_table t ON t.ad_table_id = rv.ad_table_id
		WHERE rv.ad_reportview_id = ? AND rv.isactive = 'Y'`, id).Scan(&views).Error
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}

	view := views[0].ToDomain()
	r.cache.Set(key, view, cache.DefaultExpiration)
	return view, nil
}

// GetIdentifierColumns returns the columns labelling records of the table,
// in sequence order.
func (r *MetadataRepository) GetIdentifierColumns(ctx context.Context, tableName string) ([]*domain.IdentifierColumn, error) {
	key := "identifiers:" + strings.ToLower(tableName)
	if v, ok := r.cache.Get(key); ok {
		return v.([]*domain.IdentifierColumn), nil
	}

	var models []*model.IdentifierColumn
	err := conn(ctx, r.db).Raw(`SELECT c.columnname, c.istranslated
		FROM ad_column c JOIN ad_table t ON t.ad_table_id = c.ad_table_id
		WHERE LOWER(t.tablename) = LOWER(?) AND c.isidentifier = 'Y' AND c.isactive = 'Y'
		ORDER BY c.seqno`, tableName).Scan(&models).Error
	if err != nil {
		return nil, err
	}

	columns := []*domain.IdentifierColumn{}
	for _, m := range models {
		columns = append(columns, m.ToDomain())
	}
	r.cache.Set(key, columns, cache.DefaultExpiration)
	return columns, nil
}

func (r *MetadataRepository) GetTableReference(ctx context.Context, referenceValueID int64) (*domain.TableReference, error) {
	key := fmt.Sprintf("reference:%d", referenceValueID)
	if v, ok := r.cache.Get(key); ok {
		return v.(*domain.TableReference), nil
	}

	var refs []*model.TableReference
	if err := conn(ctx, r.db).Raw(tableReferenceQuery, referenceValueID).Scan(&refs).Error; err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, nil
	}

	ref := refs[0].ToDomain()
	r.cache.Set(key, ref, cache.DefaultExpiration)
	return ref, nil
}

// TableExists reports whether a table or view of that name exists in the
// current schema.
func (r *MetadataRepository) TableExists(ctx context.Context, tableName string) (bool, error) {
	var exists bool
	err := conn(ctx, r.db).Raw(`SELECT EXISTS (SELECT 1 FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = LOWER(?))`, tableName).Scan(&exists).Error
	return exists, err
}
