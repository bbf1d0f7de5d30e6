package postgres

import (
	"context"

	"gorm.io/gorm"
)

// MasterDataRepository resolves the reference records new master data
// defaults to. Every lookup returns zero when nothing matches.
type MasterDataRepository struct {
	db *gorm.DB
}

func NewMasterDataRepository(db *gorm.DB) *MasterDataRepository {
	return &MasterDataRepository{db}
}

// GetDocTypeID returns the document type of the base type, the default one
// first.
func (r *MasterDataRepository) GetDocTypeID(ctx context.Context, clientID int64, docBaseType string) (int64, error) {
	return r.firstID(ctx, `SELECT c_doctype_id FROM c_doctype
		WHERE docbasetype = ? AND ad_client_id = ? AND isactive = 'Y'
		ORDER BY isdefault DESC, c_doctype_id`, docBaseType, clientID)
}

// GetDefaultUOMID returns the default unit of measure, falling back to
// "each".
func (r *MasterDataRepository) GetDefaultUOMID(ctx context.Context, clientID int64) (int64, error) {
	id, err := r.firstID(ctx, `SELECT c_uom_id FROM c_uom
		WHERE isdefault = 'Y' AND ad_client_id IN (0, ?) AND isactive = 'Y'
		ORDER BY ad_client_id DESC, c_uom_id`, clientID)
	if err != nil || id > 0 {
		return id, err
	}
	return r.firstID(ctx, `SELECT c_uom_id FROM c_uom
		WHERE x12de355 = 'EA' AND ad_client_id IN (0, ?) AND isactive = 'Y'
		ORDER BY ad_client_id DESC, c_uom_id`, clientID)
}

// GetDefaultTaxCategoryID returns the default tax category, falling back to
// the first active one.
func (r *MasterDataRepository) GetDefaultTaxCategoryID(ctx context.Context, clientID int64) (int64, error) {
	id, err := r.firstID(ctx, `SELECT c_taxcategory_id FROM c_taxcategory
		WHERE isdefault = 'Y' AND ad_client_id IN (0, ?) AND isactive = 'Y'
		ORDER BY ad_client_id DESC, c_taxcategory_id`, clientID)
	if err != nil || id > 0 {
		return id, err
	}
	return r.firstID(ctx, `SELECT c_taxcategory_id FROM c_taxcategory
		WHERE ad_client_id IN (0, ?) AND isactive = 'Y'
		ORDER BY ad_client_id DESC, c_taxcategory_id`, clientID)
}

func (r *MasterDataRepository) GetCurrencyID(ctx context.Context, clientID int64) (int64, error) {
	return r.firstID(ctx, `SELECT c_currency_id FROM c_currency
		WHERE ad_client_id IN (0, ?) AND isactive = 'Y'
		ORDER BY ad_client_id DESC, c_currency_id`, clientID)
}

func (r *MasterDataRepository) GetDiscountSchemaID(ctx context.Context, clientID int64) (int64, error) {
	return r.firstID(ctx, `SELECT m_discountschema_id FROM m_discountschema
		WHERE ad_client_id = ? AND isactive = 'Y'
		ORDER BY m_discountschema_id`, clientID)
}

func (r *MasterDataRepository) firstID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var ids []int64
	if err := conn(ctx, r.db).Raw(query+" LIMIT 1", args...).Scan(&ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}
