package model

import (
	"database/sql/driver"
	"fmt"
)

// YesNo is a boolean stored as the 'Y'/'N' flags of the ERP schema.
type YesNo bool

func (b YesNo) Value() (driver.Value, error) {
	if b {
		return "Y", nil
	}
	return "N", nil
}

func (b *YesNo) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*b = false
	case string:
		*b = v == "Y"
	case []byte:
		*b = string(v) == "Y"
	case bool:
		*b = YesNo(v)
	default:
		return fmt.Errorf("cannot scan %T into YesNo", value)
	}
	return nil
}
