package cli

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/itusdata/valuations-cli-go/internal/config"
	"github.com/itusdata/valuations-cli-go/internal/logging"
	"github.com/itusdata/valuations-cli-go/internal/output"
	"github.com/itusdata/valuations-cli-go/internal/udf"
)

func init() {
	// Add all subcommands
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcapRankCmd)
	rootCmd.AddCommand(sectorRankCmd)
	rootCmd.AddCommand(clearCacheCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(addCmd)
}

// getCmd handles the point lookup
var getCmd = &cobra.Command{
	Use:   "get [accord_code] [field] [date]",
	Short: "Look up one field value for a company on a date",
	Args:  cobra.ExactArgs(3),
	RunE:  handleGet,
}

// seriesCmd handles date-range series
var seriesCmd = &cobra.Command{
	Use:   "series [accord_code] [field] [start_date] [end_date]",
	Short: "Fetch a field series for a company over a date range",
	Args:  cobra.ExactArgs(4),
	RunE:  handleSeries,
}

// matrixCmd handles the cross-sectional matrix
var matrixCmd = &cobra.Command{
	Use:   "matrix [date] [field]",
	Short: "Fetch every company's value of a field on one date",
	Args:  cobra.ExactArgs(2),
	RunE:  handleMatrix,
}

// historyCmd handles the full company history
var historyCmd = &cobra.Command{
	Use:   "history [accord_code] [field]",
	Short: "Fetch the full history of a field for a company",
	Args:  cobra.ExactArgs(2),
	RunE:  handleHistory,
}

// mcapRankCmd ranks a market-cap bucket by PE
var mcapRankCmd = &cobra.Command{
	Use:   "mcap-rank [bucket] [date]",
	Short: "Rank a market-cap bucket by price-earnings value on a date",
	Args:  cobra.ExactArgs(2),
	RunE:  handleMcapRank,
}

// sectorRankCmd ranks a sector by PE
var sectorRankCmd = &cobra.Command{
	Use:   "sector-rank [sector] [date]",
	Short: "Rank a sector by price-earnings value on a date",
	Args:  cobra.ExactArgs(2),
	RunE:  handleSectorRank,
}

// clearCacheCmd empties the query memo
var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Empty the process-local query memo",
	Args:  cobra.NoArgs,
	RunE:  handleClearCache,
}

// statsCmd reports memo counters
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show query memo hit/miss counters",
	Args:  cobra.NoArgs,
	RunE:  handleStats,
}

// fieldsCmd lists queryable columns
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the field names the data file accepts",
	Args:  cobra.NoArgs,
	RunE:  handleFields,
}

// addCmd is the diagnostic echo
var addCmd = &cobra.Command{
	Use:   "add [x] [y]",
	Short: "Diagnostic: add two numbers to verify the wiring",
	Args:  cobra.ExactArgs(2),
	RunE:  handleAdd,
}

// newService loads the settings, points the log at the configured file and
// builds the operation surface.
func newService() (*udf.Service, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logging.Setup(settings.LogPath, verbose)
	return udf.New(settings, nil), nil
}

// render writes the table in the selected output form.
func render(t *output.Table) error {
	if csvOut {
		return output.WriteCSV(os.Stdout, t)
	}
	return output.WriteText(os.Stdout, t)
}

func handleGet(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.DailyData(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	return render(table)
}

func handleSeries(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.Series(args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}
	return render(table)
}

func handleMatrix(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.DailyMatrix(args[0], args[1])
	if err != nil {
		return err
	}
	return render(table)
}

func handleHistory(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.AllValues(args[0], args[1])
	if err != nil {
		return err
	}
	return render(table)
}

func handleMcapRank(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.McapMatrix(args[0], args[1])
	if err != nil {
		return err
	}
	return render(table)
}

func handleSectorRank(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.SectorPE(args[0], args[1])
	if err != nil {
		return err
	}
	return render(table)
}

func handleClearCache(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.ClearCache()
	if err != nil {
		return err
	}
	return render(table)
}

func handleStats(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	stats := svc.CacheStats()
	table := &output.Table{
		Header: []string{"hits", "misses", "entries"},
		Rows:   [][]interface{}{{stats.Hits, stats.Misses, stats.Entries}},
	}
	return render(table)
}

func handleFields(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.Fields()
	if err != nil {
		return err
	}
	return render(table)
}

func handleAdd(cmd *cobra.Command, args []string) error {
	x, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid number '%s'", args[0])
	}
	y, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid number '%s'", args[1])
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	table, err := svc.TestAdd(x, y)
	if err != nil {
		return err
	}
	return render(table)
}
