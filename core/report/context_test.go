package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContext(t *testing.T) {
	vars := map[string]string{
		"AD_Client_ID": "11",
		"#Date":        "2024-01-31",
		"Empty":        "",
	}

	testCases := []struct {
		name             string
		text             string
		ignoreUnparsable bool
		expected         string
	}{
		{"text without variables", "C_Order.IsSOTrx='Y'", false, "C_Order.IsSOTrx='Y'"},
		{"single variable", "AD_Client_ID=@AD_Client_ID@", false, "AD_Client_ID=11"},
		{"case insensitive name", "AD_Client_ID=@ad_client_id@", false, "AD_Client_ID=11"},
		{"several variables", "@AD_Client_ID@ and '@#Date@'", false, "11 and '2024-01-31'"},
		{"default value", "AD_Org_ID=@AD_Org_ID:0@", false, "AD_Org_ID=0"},
		{"empty value falls back to default", "x=@Empty:1@", false, "x=1"},
		{"missing variable", "AD_Org_ID=@AD_Org_ID@", false, ""},
		{"missing variable ignored", "AD_Org_ID=@AD_Org_ID@", true, "AD_Org_ID="},
		{"unbalanced tag", "AD_Client_ID=@AD_Client_ID", true, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseContext(vars, tc.text, tc.ignoreUnparsable))
		})
	}
}
