package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goto/folio/core/importer"
	"github.com/goto/folio/domain"
)

func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import master data from CSV files",
		Example: heredoc.Doc(`
			$ folio import products --products products.csv --prices prices.csv
			$ folio import runs
		`),
	}

	cmd.AddCommand(
		importProductsCmd(),
		listImportRunsCmd(),
	)

	return cmd
}

func importProductsCmd() *cobra.Command {
	var (
		productsFile, pricesFile string
		req                      importer.ImportRequest
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Import products, stock counts and prices",
		Long: heredoc.Doc(`
			Import products with their initial stock and prices.

			The products file has the columns
			organization,name,product_type,ref,init_stock
			and the prices file has the columns
			ref,price_list,active,list_price,standard_price,limit_price.
			Both files are imported in a single transaction.
		`),
		Example: heredoc.Doc(`
			$ folio import products --products products.csv --prices prices.csv
			$ folio import products --products products.csv --prices prices.csv --warehouse-id 104
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := os.Open(productsFile)
			if err != nil {
				return fmt.Errorf("opening products file: %w", err)
			}
			defer products.Close()
			prices, err := os.Open(pricesFile)
			if err != nil {
				return fmt.Errorf("opening prices file: %w", err)
			}
			defer prices.Close()

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			req.Products = products
			req.Prices = prices
			result, err := a.services.ImportService.Import(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.SkippedRows) > 0 {
				renderSkippedRows(out, result.SkippedRows)
			}
			fmt.Fprintln(out, result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&productsFile, "products", "", "Products CSV file")
	cmd.MarkFlagRequired("products")
	cmd.Flags().StringVar(&pricesFile, "prices", "", "Prices CSV file")
	cmd.MarkFlagRequired("prices")
	cmd.Flags().Int64Var(&req.ClientID, "client-id", 0, "Client owning the data, configured default when empty")
	cmd.Flags().Int64Var(&req.OrgID, "org-id", 0, "Organization of rows without one, configured default when empty")
	cmd.Flags().Int64Var(&req.WarehouseID, "warehouse-id", 0, "Warehouse receiving the stock, configured default when empty")
	cmd.Flags().Int64Var(&req.ProductCategoryID, "product-category-id", 0, "Category of new products, configured default when empty")

	return cmd
}

func listImportRunsCmd() *cobra.Command {
	var filter domain.ListImportRunsFilter

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List past imports",
		Example: heredoc.Doc(`
			$ folio import runs --client-id 11 --size 20
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			runs, err := a.services.ImportRuns.Find(cmd.Context(), filter)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "STARTED", "STATUS", "PRODUCTS", "PRICES", "SKIPPED"})
			for _, r := range runs {
				table.Append([]string{
					r.ID,
					r.StartedAt.Format("2006-01-02 15:04:05"),
					r.Status,
					strconv.Itoa(r.ProductsImported),
					strconv.Itoa(r.PricesImported),
					strconv.Itoa(len(r.SkippedRows)),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().Int64Var(&filter.ClientID, "client-id", 0, "Only runs of the client")
	cmd.Flags().IntVar(&filter.Size, "size", 20, "Number of runs")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "Number of runs to skip")

	return cmd
}

func renderSkippedRows(w io.Writer, rows []*domain.SkippedRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"FILE", "LINE", "REASON"})
	for _, r := range rows {
		table.Append([]string{r.File, strconv.Itoa(r.Line), r.Reason})
	}
	table.Render()
}
