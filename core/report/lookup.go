package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/goto/folio/domain"
)

const translationSuffix = "_Trl"

// lookupBuilder renders the correlated sub-selects resolving the label of a
// foreign key.
type lookupBuilder struct {
	metadata metadataRepository
	language domain.Language
}

// tableDirEmbed builds the label sub-select of a column named after the
// referenced table (C_BPartner_ID -> C_BPartner). baseColumn is the
// expression holding the key in the report table. It returns an empty
// string when the referenced table has no identifier columns.
func (b *lookupBuilder) tableDirEmbed(ctx context.Context, columnName, baseColumn string) (string, error) {
	tableName := strings.TrimSuffix(columnName, "_ID")
	identifiers, err := b.metadata.GetIdentifierColumns(ctx, tableName)
	if err != nil {
		return "", fmt.Errorf("getting identifier columns of %q: %w", tableName, err)
	}
	if len(identifiers) == 0 {
		return "", nil
	}

	translated := false
	for _, ic := range identifiers {
		if ic.IsTranslated {
			translated = true
			break
		}
	}

	source := tableName
	var conditions []string
	if translated && !b.language.IsBase {
		source = tableName + translationSuffix
		conditions = append(conditions, fmt.Sprintf("%s.AD_Language=%s", source, pq.QuoteLiteral(b.language.Code)))
	}

	displays := make([]string, 0, len(identifiers))
	for _, ic := range identifiers {
		table := tableName
		if ic.IsTranslated && source != tableName {
			table = source
		}
		displays = append(displays, fmt.Sprintf("%s.%s", table, ic.ColumnName))
	}
	display := displays[0]
	if len(displays) > 1 {
		casted := make([]string, 0, len(displays))
		for _, d := range displays {
			casted = append(casted, fmt.Sprintf("COALESCE(CAST(%s AS VARCHAR),'')", d))
		}
		display = strings.Join(casted, "||'_'||")
	}

	from := tableName
	if source != tableName {
		from = fmt.Sprintf("%s INNER JOIN %s ON (%s.%s=%s.%s)", tableName, source, tableName, columnName, source, columnName)
	}
	conditions = append([]string{fmt.Sprintf("%s.%s=%s", tableName, columnName, baseColumn)}, conditions...)

	return fmt.Sprintf("SELECT %s FROM %s WHERE %s", display, from, strings.Join(conditions, " AND ")), nil
}

// tableEmbed builds the label sub-select of a column validated by a table
// reference.
func (b *lookupBuilder) tableEmbed(ctx context.Context, referenceValueID int64, baseColumn string) (string, *domain.TableReference, error) {
	if referenceValueID <= 0 {
		return "", nil, fmt.Errorf("%w: reference value id %d", ErrInvalidReference, referenceValueID)
	}
	ref, err := b.metadata.GetTableReference(ctx, referenceValueID)
	if err != nil {
		return "", nil, fmt.Errorf("getting table reference %d: %w", referenceValueID, err)
	}
	if ref == nil || ref.TableName == "" {
		return "", nil, fmt.Errorf("%w: reference value id %d", ErrInvalidReference, referenceValueID)
	}

	table := ref.TableName
	display := fmt.Sprintf("%s.%s", table, ref.DisplayColumn)
	from := table
	conditions := []string{fmt.Sprintf("%s.%s=%s", table, ref.KeyColumn, baseColumn)}
	if ref.IsTranslated && !b.language.IsBase {
		trl := table + translationSuffix
		display = fmt.Sprintf("%s.%s", trl, ref.DisplayColumn)
		from = fmt.Sprintf("%s INNER JOIN %s ON (%s.%s=%s.%s)", table, trl, table, ref.KeyColumn, trl, ref.KeyColumn)
		conditions = append(conditions, fmt.Sprintf("%s.AD_Language=%s", trl, pq.QuoteLiteral(b.language.Code)))
	}
	if ref.IsValueDisplayed {
		display = fmt.Sprintf("%s.Value||'-'||%s", table, display)
	}

	return fmt.Sprintf("SELECT %s FROM %s WHERE %s", display, from, strings.Join(conditions, " AND ")), ref, nil
}
