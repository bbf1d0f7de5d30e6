package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goto/folio/core/report"
	"github.com/goto/folio/domain"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// restrictionOperators are tried in order, longer operators first.
var restrictionOperators = []string{
	domain.OperatorGreaterEqual,
	domain.OperatorLessEqual,
	domain.OperatorNotEqual,
	domain.OperatorEqual,
	domain.OperatorGreater,
	domain.OperatorLess,
}

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"reports"},
		Short:   "Load report data",
		Example: heredoc.Doc(`
			$ folio report print --format-id 100
		`),
	}

	cmd.AddCommand(
		printReportCmd(),
	)

	return cmd
}

func printReportCmd() *cobra.Command {
	var (
		formatID  int64
		where     []string
		summary   bool
		language  string
		output    string
		principal domain.Principal
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Load the rows of a print format and print them as a table",
		Example: heredoc.Doc(`
			$ folio report print --format-id 100
			$ folio report print --format-id 100 --where "DocStatus=CO" --where "GrandTotal>=1000"
			$ folio report print --format-id 100 --summary --client-id 11 --role-id 102
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputYAML {
				return fmt.Errorf("invalid output %q, expected %q or %q", output, outputTable, outputYAML)
			}

			query := &domain.Query{IsActive: len(where) > 0}
			for _, w := range where {
				r, err := parseRestriction(w)
				if err != nil {
					return err
				}
				query.Restrictions = append(query.Restrictions, r)
			}

			var opts []report.Option
			if summary {
				opts = append(opts, report.Summary())
			}
			if language != "" {
				opts = append(opts, report.WithLanguage(domain.Language{Code: language}))
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			pd, err := a.services.ReportService.GetPrintData(cmd.Context(), report.GetPrintDataRequest{
				PrintFormatID: formatID,
				Query:         query,
				Principal:     principal,
			}, opts...)
			if err != nil {
				return err
			}

			if output == outputYAML {
				return renderPrintDataYAML(cmd.OutOrStdout(), pd)
			}
			renderPrintData(cmd.OutOrStdout(), pd)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&formatID, "format-id", "f", 0, "Print format id")
	cmd.MarkFlagRequired("format-id")
	cmd.Flags().StringArrayVarP(&where, "where", "w", nil, "Restriction as <column><operator><value>, repeatable")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print only subtotal and total rows")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table or yaml")
	cmd.Flags().StringVar(&language, "language", "", "Language of translated lookups, e.g. de_DE")
	cmd.Flags().Int64Var(&principal.ClientID, "client-id", 0, "Client reading the report")
	cmd.Flags().Int64Var(&principal.OrgID, "org-id", 0, "Organization reading the report")
	cmd.Flags().Int64Var(&principal.RoleID, "role-id", 0, "Role reading the report")
	cmd.Flags().Int64Var(&principal.UserID, "user-id", 0, "User reading the report")

	return cmd
}

// parseRestriction reads "<column><operator><value>". An empty value after
// "=" or "!=" restricts to null values.
func parseRestriction(s string) (*domain.Restriction, error) {
	for _, op := range restrictionOperators {
		i := strings.Index(s, op)
		if i <= 0 {
			continue
		}
		column := strings.TrimSpace(s[:i])
		value := strings.TrimSpace(s[i+len(op):])
		if value == "" {
			switch op {
			case domain.OperatorEqual:
				return &domain.Restriction{ColumnName: column, Operator: domain.OperatorIsNull}, nil
			case domain.OperatorNotEqual:
				return &domain.Restriction{ColumnName: column, Operator: domain.OperatorIsNotNull}, nil
			}
			return nil, fmt.Errorf("invalid restriction %q: missing value", s)
		}
		if strings.Contains(value, "%") && op == domain.OperatorEqual {
			op = domain.OperatorLike
		}
		return &domain.Restriction{ColumnName: column, Operator: op, Value: value}, nil
	}
	return nil, fmt.Errorf("invalid restriction %q: expected <column><operator><value>", s)
}

// renderPrintData writes one table line per report row. Function rows are
// marked in the first column.
func renderPrintData(w io.Writer, pd *domain.PrintData) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	header := []string{""}
	for _, c := range pd.Columns {
		header = append(header, c.ColumnName)
	}
	table.SetHeader(header)

	for _, row := range pd.Rows {
		byItem := make(map[int64]*domain.PrintDataElement, len(row.Elements))
		for _, e := range row.Elements {
			byItem[e.ItemID] = e
		}

		marker := ""
		if row.IsFunctionRow {
			marker = "*"
		}
		line := []string{marker}
		for _, c := range pd.Columns {
			line = append(line, byItem[c.ItemID].ValueAsString())
		}
		table.Append(line)
	}

	table.SetFooter(append([]string{""}, footer(len(pd.Columns), fmt.Sprintf("%d rows", len(pd.Rows)))...))
	table.Render()
}

type yamlRow struct {
	Function bool              `yaml:"function,omitempty"`
	Level    int               `yaml:"level,omitempty"`
	Values   map[string]string `yaml:"values"`
}

type yamlReport struct {
	Name  string    `yaml:"name"`
	Table string    `yaml:"table"`
	Rows  []yamlRow `yaml:"rows"`
}

// renderPrintDataYAML writes the rows keyed by column name. Null values are
// left out.
func renderPrintDataYAML(w io.Writer, pd *domain.PrintData) error {
	out := yamlReport{Name: pd.Name, Table: pd.TableName, Rows: []yamlRow{}}
	for _, row := range pd.Rows {
		r := yamlRow{Function: row.IsFunctionRow, Level: row.LevelNo, Values: map[string]string{}}
		for _, e := range row.Elements {
			if e.IsNull() {
				continue
			}
			r.Values[e.ColumnName] = e.ValueAsString()
		}
		out.Rows = append(out.Rows, r)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding report as yaml: %w", err)
	}
	return enc.Close()
}

func footer(n int, last string) []string {
	cells := make([]string, n)
	if n > 0 {
		cells[n-1] = last
	}
	return cells
}
