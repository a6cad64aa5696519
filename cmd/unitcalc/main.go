package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AdrienGallet/unitcalc/internal/catalog"
	"github.com/AdrienGallet/unitcalc/internal/config"
	"github.com/AdrienGallet/unitcalc/internal/dimension"
	"github.com/AdrienGallet/unitcalc/internal/quantity"
	"github.com/AdrienGallet/unitcalc/internal/storage"
	"github.com/AdrienGallet/unitcalc/internal/tui"
)

var (
	dataDir string
	// show flags
	value float64
	unit  string
	dim   []float64
	info  string
	// sheet flags
	preset    string
	saveSheet bool
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "unitcalc",
		Short: "dimensioned-quantity calculator",
		Run: func(cmd *cobra.Command, args []string) {
			if err := tui.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	showCmd := &cobra.Command{
		Use:   "show [name | shorthand]",
		Short: "construct a quantity and print its diagnostic form",
		Args:  cobra.ExactArgs(1),
		RunE:  showQuantity,
	}
	showCmd.Flags().Float64Var(&value, "value", 0, "magnitude (requires --unit)")
	showCmd.Flags().StringVar(&unit, "unit", "", "unit symbol (requires --value)")
	showCmd.Flags().Float64SliceVar(&dim, "dim", nil, "7-element SI dimension vector for unregistered units")
	showCmd.Flags().StringVar(&info, "info", "", "description")

	convertCmd := &cobra.Command{
		Use:   "convert [shorthand] [target-unit]",
		Short: "convert a quantity to another unit of its family",
		Args:  cobra.ExactArgs(2),
		RunE:  convertQuantity,
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "list unit families",
		RunE:  listCatalog,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "walk through a shear-resistance derivation",
		RunE:  runDemo,
	}

	sheetCmd := &cobra.Command{
		Use:   "sheet [path]",
		Short: "evaluate a worksheet file or preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSheet,
	}
	sheetCmd.Flags().StringVar(&preset, "preset", "", "use a built-in worksheet")
	sheetCmd.Flags().BoolVar(&saveSheet, "save", false, "persist the evaluated worksheet")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in worksheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved worksheets",
		RunE:  listSheets,
	}

	exportCmd := &cobra.Command{
		Use:   "export [sheet_id]",
		Short: "export a saved worksheet as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], os.Stdout)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive converter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(showCmd, convertCmd, catalogCmd, demoCmd, sheetCmd, presetsCmd, listCmd, exportCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showQuantity(cmd *cobra.Command, args []string) error {
	spec := quantity.Spec{Name: args[0], Info: info}
	if cmd.Flags().Changed("value") {
		spec.Value = &value
	}
	if cmd.Flags().Changed("unit") {
		spec.Unit = &unit
	}
	if dim != nil {
		v, err := toVector(dim)
		if err != nil {
			return err
		}
		spec.Dimension = &v
	}

	q, err := quantity.FromSpec(spec)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(q.String()))
	fmt.Println(dimStyle.Render(q.Describe()))
	return nil
}

func toVector(entries []float64) (v dimension.Vector, err error) {
	if len(entries) != len(v) {
		return v, fmt.Errorf("dimension must have %d entries, got %d", len(v), len(entries))
	}
	copy(v[:], entries)
	return v, nil
}

func convertQuantity(cmd *cobra.Command, args []string) error {
	q, err := quantity.Parse(args[0])
	if err != nil {
		return err
	}
	converted, err := q.ConvertValue(args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s = %v%s\n", q.Name(), converted, args[1])
	return nil
}

func listCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tBASE\tSYMBOLS\tDIMENSION")
	for _, name := range cat.Families() {
		f, err := cat.Family(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			f.Name, orDot(f.BaseUnit), strings.Join(f.Symbols, " "), f.Dimension)
	}
	return w.Flush()
}

func orDot(s string) string {
	if s == "" {
		return "·"
	}
	return s
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, err := quantity.New("a", 200, "mm", quantity.WithInfo("section depth"))
	if err != nil {
		return err
	}
	b, err := quantity.New("b", 10*1e-3, "cm", quantity.WithInfo("wall thickness"))
	if err != nil {
		return err
	}
	fy, err := quantity.Parse("fy=200MPa")
	if err != nil {
		return err
	}

	fmt.Println(a)
	fmt.Println(dimStyle.Render(a.Describe()))
	fmt.Println(b)
	fmt.Println(fy)

	sum, err := a.Add(b)
	if err != nil {
		return err
	}
	fmt.Println(sum)

	area, err := a.Mul(b)
	if err != nil {
		return err
	}
	force, err := area.Mul(fy)
	if err != nil {
		return err
	}
	azRd, err := force.Div(math.Sqrt(3))
	if err != nil {
		return err
	}
	azRd.Update("Az_Rd", "shear resistance", "")

	fmt.Println(okStyle.Render(azRd.String()))
	fmt.Println(dimStyle.Render(azRd.Describe()))
	return nil
}

func runSheet(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s", preset)
		}
	case len(args) == 1:
		loaded, err := config.Load(args[0])
		if err != nil {
			return err
		}
		cfg = loaded
	default:
		return fmt.Errorf("either a worksheet path or --preset is required")
	}

	quantities, err := cfg.Build()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE\tFAMILY\tBASE\tINFO")
	for _, q := range quantities {
		fmt.Fprintf(w, "%s\t%v%s\t%s\t%v%s\t%s\n",
			q.Name(), q.Value(), q.Unit(), orDot(q.Family()),
			q.BaseValue(), orDot(q.BaseUnit()), q.Info())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if saveSheet {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.Save(cfg.Name, quantities)
		if err != nil {
			return err
		}
		fmt.Println(okStyle.Render("saved " + id))
	}
	return nil
}

func listSheets(cmd *cobra.Command, args []string) error {
	sheets, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(sheets) == 0 {
		fmt.Println("no saved worksheets")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVARIABLES\tTIMESTAMP")
	for _, s := range sheets {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Variables, s.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
