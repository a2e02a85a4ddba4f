package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mertowave/nld-vehicle-data-portal/lib/export"
	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"

	"github.com/spf13/cobra"
)

var fetchFlags struct {
	category      string
	licensePlate  string
	brand         string
	model         string
	dateFrom      string
	dateTo        string
	orderByRecent bool

	limit    int
	pageSize int
	preview  int
	csvPath  string
	xlsxPath string
	appToken string
	timeout  int
}

func init() {
	f := fetchCmd.Flags()
	f.StringVar(&fetchFlags.category, "category", "", "Filter by Dutch vehicle category (voertuigsoort).")
	f.StringVar(&fetchFlags.licensePlate, "license-plate", "", "Lookup a single license plate (kenteken).")
	f.StringVar(&fetchFlags.brand, "brand", "", "Filter by make.")
	f.StringVar(&fetchFlags.model, "model", "", "Filter by commercial name.")
	f.StringVar(&fetchFlags.dateFrom, "date-from", "", "Registration date lower bound (YYYY-MM-DD).")
	f.StringVar(&fetchFlags.dateTo, "date-to", "", "Registration date upper bound (YYYY-MM-DD).")
	f.BoolVar(&fetchFlags.orderByRecent, "order-by-recent", false, "Order results by registration date, newest first.")
	f.IntVar(&fetchFlags.limit, "limit", -1, "Maximum number of records to download. Negative means unbounded.")
	f.IntVar(&fetchFlags.pageSize, "page-size", rdw.DefaultPageSize, "Rows fetched per API request.")
	f.IntVar(&fetchFlags.preview, "preview", 5, "Print the first N translated records to stdout. Use 0 to disable.")
	f.StringVar(&fetchFlags.csvPath, "csv-path", "", "Path to save results as CSV.")
	f.StringVar(&fetchFlags.xlsxPath, "excel-path", "", "Path to save results as an .xlsx file.")
	f.StringVar(&fetchFlags.appToken, "app-token", "", "Socrata app token. Defaults to the RDW_APP_TOKEN environment variable.")
	f.IntVar(&fetchFlags.timeout, "timeout", 30, "HTTP timeout per request in seconds.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [filters] [outputs]",
	Short: "Downloads vehicle records, translates them, and writes the selected outputs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if fetchFlags.csvPath == "" && fetchFlags.xlsxPath == "" && fetchFlags.preview == 0 {
			return errors.New("no output selected, enable --preview, --excel-path, or --csv-path")
		}
		if fetchFlags.pageSize <= 0 {
			return errors.New("--page-size must be a positive integer")
		}

		filters := rdw.Filters{
			Category:      fetchFlags.category,
			LicensePlate:  fetchFlags.licensePlate,
			Brand:         fetchFlags.brand,
			Model:         fetchFlags.model,
			DateFrom:      fetchFlags.dateFrom,
			DateTo:        fetchFlags.dateTo,
			OrderByRecent: fetchFlags.orderByRecent,
		}

		client := rdw.NewClient(rdw.ClientOptions{
			AppToken: rdw.ResolveAppToken(fetchFlags.appToken),
			Timeout:  time.Duration(fetchFlags.timeout) * time.Second,
		})

		preview := export.NewPreview(os.Stdout, fetchFlags.preview)

		var csvFile *os.File
		var csvw *export.CSVWriter
		if fetchFlags.csvPath != "" {
			var err error
			csvFile, err = os.Create(fetchFlags.csvPath)
			if err != nil {
				return fmt.Errorf("create csv file: %w", err)
			}
			defer csvFile.Close()
			csvw, err = export.NewCSVWriter(csvFile)
			if err != nil {
				return fmt.Errorf("write csv header: %w", err)
			}
		}

		// the spreadsheet path is the one sink that has to buffer the
		// whole dataset; everything else streams
		var forExcel []rdw.Record

		cursor := client.Vehicles(rdw.FetchOptions{
			Filters:  filters.Build(),
			PageSize: fetchFlags.pageSize,
			Limit:    fetchFlags.limit,
		})

		total := 0
		var sinkErr error
		err := cursor.Each(cmd.Context(), func(raw rdw.RawRecord) bool {
			translated := rdw.TranslateRecord(raw)
			total++

			if sinkErr = preview.Write(translated); sinkErr != nil {
				return false
			}
			if fetchFlags.xlsxPath != "" {
				forExcel = append(forExcel, translated)
			}
			if csvw != nil {
				if sinkErr = csvw.Write(translated); sinkErr != nil {
					return false
				}
			}
			return true
		})
		if sinkErr != nil {
			return sinkErr
		}
		if err != nil {
			var status *rdw.StatusError
			if errors.As(err, &status) && status.Unauthorized() {
				fmt.Fprintln(os.Stderr, "Hint: provide an app token via --app-token or the RDW_APP_TOKEN env var.")
			}
			return err
		}

		if csvw != nil {
			if err := csvw.Flush(); err != nil {
				return fmt.Errorf("flush csv: %w", err)
			}
			fmt.Printf("CSV export written to %s\n", fetchFlags.csvPath)
		}

		if fetchFlags.xlsxPath != "" && len(forExcel) > 0 {
			if err := export.WriteExcel(forExcel, fetchFlags.xlsxPath); err != nil {
				return err
			}
			fmt.Printf("Excel export written to %s\n", fetchFlags.xlsxPath)
		}

		fmt.Printf("Total records retrieved: %d\n", total)
		if fetchFlags.preview > 0 {
			fmt.Printf("Previewed records: %d\n", preview.Printed())
		}
		if fetchFlags.limit < 0 && fetchFlags.pageSize == rdw.DefaultPageSize {
			fmt.Println("Tip: use --limit to control dataset size or --page-size to tune download batches.")
		}
		if total == 0 {
			fmt.Println("No records matched the filters.")
		}
		return nil
	},
}
