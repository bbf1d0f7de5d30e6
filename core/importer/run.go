package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bearaujus/bptr"
	"github.com/shopspring/decimal"

	"github.com/goto/folio/domain"
)

// importRun holds the state of one import while its transaction is open.
type importRun struct {
	*Service
	req ImportRequest
	run *domain.ImportRun

	uomID         int64
	taxCategoryID int64
	// productIDs maps the refs imported by this run to their product ids.
	productIDs map[string]int64
	orgIDs     map[string]int64
	versions   map[string]*domain.PriceListVersion
}

func (r *importRun) execute(ctx context.Context, products, prices []record) error {
	r.productIDs = map[string]int64{}
	r.orgIDs = map[string]int64{}
	r.versions = map[string]*domain.PriceListVersion{}

	locator, err := r.resolveLocator(ctx)
	if err != nil {
		return err
	}
	if err := r.importProducts(ctx, products, locator); err != nil {
		return err
	}
	r.run.ProductsImported = len(r.productIDs)

	count, err := r.importPrices(ctx, prices)
	if err != nil {
		return err
	}
	r.run.PricesImported = count
	return nil
}

// resolveLocator returns the default locator of the warehouse, creating a
// "Standard" one when the warehouse has none.
func (r *importRun) resolveLocator(ctx context.Context) (*domain.Locator, error) {
	wh, err := r.warehouses.GetByID(ctx, r.req.WarehouseID)
	if err != nil {
		if errors.Is(err, ErrWarehouseNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrWarehouseNotFound, r.req.WarehouseID)
		}
		return nil, fmt.Errorf("getting warehouse: %w", err)
	}

	locator, err := r.warehouses.GetDefaultLocator(ctx, wh.ID)
	if err == nil {
		return locator, nil
	}
	if !errors.Is(err, ErrLocatorNotFound) {
		return nil, fmt.Errorf("getting default locator: %w", err)
	}

	locator = &domain.Locator{
		ClientID:    wh.ClientID,
		OrgID:       wh.OrgID,
		WarehouseID: wh.ID,
		Value:       domain.DefaultLocatorValue,
		X:           "0",
		Y:           "0",
		Z:           "0",
		IsDefault:   true,
	}
	if err := r.warehouses.CreateLocator(ctx, locator); err != nil {
		return nil, fmt.Errorf("creating default locator: %w", err)
	}
	r.logger.Info(ctx, "default locator created", "warehouse_id", wh.ID, "locator_id", locator.ID)
	return locator, nil
}

func (r *importRun) importProducts(ctx context.Context, records []record, locator *domain.Locator) error {
	docTypeID, err := r.masterData.GetDocTypeID(ctx, r.req.ClientID, domain.DocBaseTypeMaterialPhysicalInventory)
	if err != nil {
		return fmt.Errorf("getting inventory document type: %w", err)
	}
	if docTypeID <= 0 {
		return ErrDocTypeNotFound
	}

	now := TimeNow()
	inventory := &domain.Inventory{
		ClientID:     r.req.ClientID,
		OrgID:        locator.OrgID,
		WarehouseID:  locator.WarehouseID,
		DocTypeID:    docTypeID,
		DocStatus:    domain.DocStatusDrafted,
		Description:  bptr.FromString(fmt.Sprintf("CSV product import %s", now.Format("2006-01-02 15:04:05"))),
		MovementDate: now,
	}
	if err := r.inventories.Create(ctx, inventory); err != nil {
		return fmt.Errorf("creating inventory: %w", err)
	}

	lines := 0
	for _, rec := range records {
		added, err := r.importProduct(ctx, rec, inventory, locator)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", productsFile, rec.line, err)
		}
		if added {
			lines++
		}
	}

	if lines == 0 {
		if err := r.inventories.Delete(ctx, inventory.ID); err != nil {
			return fmt.Errorf("deleting empty inventory: %w", err)
		}
		return nil
	}
	if err := r.inventories.Complete(ctx, inventory.ID); err != nil {
		return fmt.Errorf("completing inventory: %w", err)
	}
	return nil
}

// importProduct upserts the product of a row and reports whether an
// inventory line was added for it.
func (r *importRun) importProduct(ctx context.Context, rec record, inventory *domain.Inventory, locator *domain.Locator) (bool, error) {
	if len(rec.fields) < len(productHeader) {
		r.skip(ctx, productsFile, rec.line, "not enough fields")
		return false, nil
	}

	name, ref := rec.field(1), rec.field(3)
	if name == "" || ref == "" {
		r.skip(ctx, productsFile, rec.line, "empty name or ref")
		return false, nil
	}

	stock, err := decimal.NewFromString(rec.field(4))
	if err != nil {
		r.logger.Warn(ctx, "invalid initial stock, using 0", "line", rec.line, "value", rec.field(4))
		stock = decimal.Zero
	}

	productType, ok := domain.ParseProductType(rec.field(2))
	if !ok {
		r.logger.Warn(ctx, "invalid product type, using item", "line", rec.line, "value", rec.field(2))
		productType = domain.ProductTypeItem
	}

	orgID, err := r.resolveOrg(ctx, rec.field(0))
	if err != nil {
		return false, err
	}

	product, err := r.products.GetByValue(ctx, r.req.ClientID, ref)
	switch {
	case errors.Is(err, ErrProductNotFound):
		product = &domain.Product{ClientID: r.req.ClientID, Value: ref, IsActive: true}
	case err != nil:
		return false, fmt.Errorf("getting product %q: %w", ref, err)
	default:
		r.logger.Debug(ctx, "updating existing product", "ref", ref)
	}

	product.OrgID = orgID
	product.Name = name
	product.ProductType = productType
	product.ProductCategoryID = r.req.ProductCategoryID
	if product.UOMID <= 0 {
		if product.UOMID, err = r.defaultUOM(ctx); err != nil {
			return false, err
		}
	}
	if product.TaxCategoryID <= 0 {
		if product.TaxCategoryID, err = r.defaultTaxCategory(ctx); err != nil {
			return false, err
		}
	}
	product.IsStocked = productType == domain.ProductTypeItem
	product.IsSold = true
	product.IsPurchased = true

	if err := r.products.Save(ctx, product); err != nil {
		return false, fmt.Errorf("saving product %q: %w", ref, err)
	}
	r.productIDs[ref] = product.ID

	if stock.IsZero() {
		return false, nil
	}
	line := &domain.InventoryLine{
		InventoryID: inventory.ID,
		LocatorID:   locator.ID,
		ProductID:   product.ID,
		QtyBook:     decimal.Zero,
		QtyCount:    stock,
	}
	if err := r.inventories.AddLine(ctx, line); err != nil {
		return false, fmt.Errorf("adding inventory line for product %q: %w", ref, err)
	}
	return true, nil
}

// resolveOrg maps an organization name to its id. Blank and "*" mean the
// request's organization, unknown names are created.
func (r *importRun) resolveOrg(ctx context.Context, name string) (int64, error) {
	if name == "" || name == "*" {
		return r.req.OrgID, nil
	}
	if id, ok := r.orgIDs[name]; ok {
		return id, nil
	}

	org, err := r.organizations.GetByName(ctx, r.req.ClientID, name)
	if errors.Is(err, ErrOrganizationNotFound) {
		org = &domain.Organization{ClientID: r.req.ClientID, Value: name, Name: name, IsActive: true}
		if err := r.organizations.Create(ctx, org); err != nil {
			return 0, fmt.Errorf("creating organization %q: %w", name, err)
		}
		r.logger.Info(ctx, "organization created", "name", name, "org_id", org.ID)
	} else if err != nil {
		return 0, fmt.Errorf("getting organization %q: %w", name, err)
	}

	r.orgIDs[name] = org.ID
	return org.ID, nil
}

func (r *importRun) defaultUOM(ctx context.Context) (int64, error) {
	if r.uomID > 0 {
		return r.uomID, nil
	}
	id, err := r.masterData.GetDefaultUOMID(ctx, r.req.ClientID)
	if err != nil {
		return 0, fmt.Errorf("getting default unit of measure: %w", err)
	}
	if id <= 0 {
		return 0, ErrUOMNotFound
	}
	r.uomID = id
	return id, nil
}

func (r *importRun) defaultTaxCategory(ctx context.Context) (int64, error) {
	if r.taxCategoryID > 0 {
		return r.taxCategoryID, nil
	}
	id, err := r.masterData.GetDefaultTaxCategoryID(ctx, r.req.ClientID)
	if err != nil {
		return 0, fmt.Errorf("getting default tax category: %w", err)
	}
	if id <= 0 {
		return 0, ErrTaxCategoryNotFound
	}
	r.taxCategoryID = id
	return id, nil
}

func (r *importRun) importPrices(ctx context.Context, records []record) (int, error) {
	count := 0
	for _, rec := range records {
		imported, err := r.importPrice(ctx, rec)
		if err != nil {
			return 0, fmt.Errorf("%s line %d: %w", pricesFile, rec.line, err)
		}
		if imported {
			count++
		}
	}
	return count, nil
}

func (r *importRun) importPrice(ctx context.Context, rec record) (bool, error) {
	if len(rec.fields) < len(priceHeader) {
		r.skip(ctx, pricesFile, rec.line, "not enough fields")
		return false, nil
	}

	ref, priceListName := rec.field(0), rec.field(1)
	active := strings.EqualFold(rec.field(2), "Y") || strings.EqualFold(rec.field(2), "true")

	var amounts [3]decimal.Decimal
	for i := range amounts {
		v, err := decimal.NewFromString(rec.field(3 + i))
		if err != nil {
			r.skip(ctx, pricesFile, rec.line, "invalid "+priceHeader[3+i])
			return false, nil
		}
		amounts[i] = v
	}
	listPrice, stdPrice, limitPrice := amounts[0], amounts[1], amounts[2]

	productID, ok := r.productIDs[ref]
	if !ok {
		r.skip(ctx, pricesFile, rec.line, fmt.Sprintf("product %q not imported", ref))
		return false, nil
	}
	if priceListName == "" {
		r.skip(ctx, pricesFile, rec.line, "empty price list")
		return false, nil
	}

	version, err := r.resolvePriceListVersion(ctx, priceListName)
	if err != nil {
		return false, err
	}

	pp, err := r.priceLists.GetProductPrice(ctx, version.ID, productID)
	switch {
	case errors.Is(err, ErrProductPriceNotFound):
		pp = &domain.ProductPrice{PriceListVersionID: version.ID, ProductID: productID}
	case err != nil:
		return false, fmt.Errorf("getting price of %q: %w", ref, err)
	}
	pp.PriceList = listPrice
	pp.PriceStd = stdPrice
	pp.PriceLimit = limitPrice
	pp.IsActive = active

	if err := r.priceLists.SaveProductPrice(ctx, pp); err != nil {
		return false, fmt.Errorf("saving price of %q: %w", ref, err)
	}
	return true, nil
}

// resolvePriceListVersion returns the latest version of the named price
// list, creating the list and a version valid from now when missing.
func (r *importRun) resolvePriceListVersion(ctx context.Context, name string) (*domain.PriceListVersion, error) {
	if v, ok := r.versions[name]; ok {
		return v, nil
	}

	pl, err := r.priceLists.GetByName(ctx, r.req.ClientID, name)
	if errors.Is(err, ErrPriceListNotFound) {
		if pl, err = r.createPriceList(ctx, name); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("getting price list %q: %w", name, err)
	}

	version, err := r.priceLists.GetLatestVersion(ctx, r.req.ClientID, pl.ID)
	if errors.Is(err, ErrPriceListVersionNotFound) {
		if version, err = r.createPriceListVersion(ctx, pl); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("getting version of price list %q: %w", name, err)
	}

	r.versions[name] = version
	return version, nil
}

func (r *importRun) createPriceList(ctx context.Context, name string) (*domain.PriceList, error) {
	currencyID, err := r.masterData.GetCurrencyID(ctx, r.req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("getting currency: %w", err)
	}
	if currencyID <= 0 {
		currencyID = r.config.currencyID()
	}

	pl := &domain.PriceList{
		ClientID:      r.req.ClientID,
		OrgID:         r.req.OrgID,
		Name:          name,
		CurrencyID:    currencyID,
		IsSOPriceList: true,
	}
	if err := r.priceLists.Create(ctx, pl); err != nil {
		return nil, fmt.Errorf("creating price list %q: %w", name, err)
	}
	r.logger.Info(ctx, "price list created", "name", name, "price_list_id", pl.ID)
	return pl, nil
}

func (r *importRun) createPriceListVersion(ctx context.Context, pl *domain.PriceList) (*domain.PriceListVersion, error) {
	schemaID, err := r.masterData.GetDiscountSchemaID(ctx, r.req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("getting discount schema: %w", err)
	}

	now := TimeNow()
	stamp := now.Format("2006-01-02 15:04:05")
	version := &domain.PriceListVersion{
		ClientID:    r.req.ClientID,
		OrgID:       r.req.OrgID,
		PriceListID: pl.ID,
		Name:        "Version " + stamp,
		Description: bptr.FromString("Imported on " + stamp),
		ValidFrom:   now,
	}
	if schemaID > 0 {
		version.DiscountSchemaID = &schemaID
	}
	if err := r.priceLists.CreateVersion(ctx, version); err != nil {
		return nil, fmt.Errorf("creating version of price list %q: %w", pl.Name, err)
	}
	return version, nil
}

func (r *importRun) skip(ctx context.Context, file string, line int, reason string) {
	r.logger.Warn(ctx, "row skipped", "file", file, "line", line, "reason", reason)
	r.run.SkippedRows = append(r.run.SkippedRows, &domain.SkippedRow{File: file, Line: line, Reason: reason})
}
