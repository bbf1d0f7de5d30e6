package domain

// DisplayType is the semantic kind of a column value. It drives projection,
// value conversion, formatting and aggregation eligibility.
type DisplayType string

const (
	DisplayTypeString     DisplayType = "string"
	DisplayTypeText       DisplayType = "text"
	DisplayTypeTextLong   DisplayType = "text_long"
	DisplayTypeMemo       DisplayType = "memo"
	DisplayTypeJSON       DisplayType = "json"
	DisplayTypeInteger    DisplayType = "integer"
	DisplayTypeNumber     DisplayType = "number"
	DisplayTypeAmount     DisplayType = "amount"
	DisplayTypeQuantity   DisplayType = "quantity"
	DisplayTypeCostPrice  DisplayType = "cost_price"
	DisplayTypeID         DisplayType = "id"
	DisplayTypeDate       DisplayType = "date"
	DisplayTypeDateTime   DisplayType = "date_time"
	DisplayTypeTime       DisplayType = "time"
	DisplayTypeYesNo      DisplayType = "yes_no"
	DisplayTypeList       DisplayType = "list"
	DisplayTypeButton     DisplayType = "button"
	DisplayTypeTableDir   DisplayType = "table_dir"
	DisplayTypeTable      DisplayType = "table"
	DisplayTypeSearch     DisplayType = "search"
	DisplayTypeLocation   DisplayType = "location"
	DisplayTypeAccount    DisplayType = "account"
	DisplayTypeLocator    DisplayType = "locator"
	DisplayTypePAttribute DisplayType = "attribute_set_instance"
	DisplayTypeImage      DisplayType = "image"
	DisplayTypeBinary     DisplayType = "binary"
)

func (t DisplayType) String() string {
	return string(t)
}

// IsNumeric reports whether values of this type are decimal numbers.
func (t DisplayType) IsNumeric() bool {
	switch t {
	case DisplayTypeInteger, DisplayTypeNumber, DisplayTypeAmount, DisplayTypeQuantity, DisplayTypeCostPrice:
		return true
	}
	return false
}

func (t DisplayType) IsDate() bool {
	switch t {
	case DisplayTypeDate, DisplayTypeDateTime, DisplayTypeTime:
		return true
	}
	return false
}

func (t DisplayType) IsList() bool {
	return t == DisplayTypeList
}

// IsSpecialLookup reports whether the type resolves its label through a
// fixed reference table (address, account combination, locator or
// attribute set instance).
func (t DisplayType) IsSpecialLookup() bool {
	switch t {
	case DisplayTypeLocation, DisplayTypeAccount, DisplayTypeLocator, DisplayTypePAttribute:
		return true
	}
	return false
}
