package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"valleyviz/internal/analysis"
	"valleyviz/internal/config"
	"valleyviz/internal/dataset"
	"valleyviz/internal/export"
	"valleyviz/internal/extrema"
	"valleyviz/internal/storage"
	"valleyviz/internal/tui"
	"valleyviz/internal/viz"
	"valleyviz/internal/zeta"
)

var (
	dataDir    string
	configFile string
	// Plot flags
	plotWidth  int
	plotHeight int
	noMarkers  bool
	// Generator flags
	samples int
	mean    float64
	workers int
	// Staircase flags
	xMax   float64
	points int
	// Export flags
	svgWidth  int
	svgHeight int
	outPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "valleyviz",
		Short: "valley scanner dataset visualizer",
		Long:  "Loads |Z| magnitude datasets sampled along the critical line, marks valleys (zero candidates) and mountains, and renders them in the terminal.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "report directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	plotCmd := &cobra.Command{
		Use:   "plot [dataset.csv]",
		Short: "plot a dataset with extremum markers",
		Args:  cobra.ExactArgs(1),
		RunE:  plotDataset,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width in columns")
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height in rows")
	plotCmd.Flags().BoolVar(&noMarkers, "no-markers", false, "hide extremum markers")

	extremaCmd := &cobra.Command{
		Use:   "extrema [dataset.csv]",
		Short: "list detected valleys and mountains",
		Args:  cobra.ExactArgs(1),
		RunE:  listExtrema,
	}

	zerosCmd := &cobra.Command{
		Use:   "zeros [dataset.csv]",
		Short: "list confirmed zeros with spacings",
		Args:  cobra.ExactArgs(1),
		RunE:  listZeros,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [dataset.csv]",
		Short: "spacing statistics over confirmed zeros",
		Args:  cobra.ExactArgs(1),
		RunE:  showStats,
	}

	scanCmd := &cobra.Command{
		Use:   "scan [dataset.csv]",
		Short: "detect extrema and persist a report",
		Args:  cobra.ExactArgs(1),
		RunE:  scanDataset,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored reports",
		RunE:  listReports,
	}

	generateCmd := &cobra.Command{
		Use:   "generate [dataset.csv]",
		Short: "generate a sample dataset with the local evaluator",
		Args:  cobra.ExactArgs(1),
		RunE:  generateDataset,
	}
	generateCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of grid points")
	generateCmd.Flags().Float64Var(&mean, "mean", config.DefaultMean, "critical-line mean m in t = sqrt(N - m^2)")
	generateCmd.Flags().IntVar(&workers, "workers", 0, "evaluation workers (0 = NumCPU)")

	staircaseCmd := &cobra.Command{
		Use:   "staircase [dataset.csv]",
		Short: "psi(x) staircase view from confirmed zeros",
		Args:  cobra.ExactArgs(1),
		RunE:  plotStaircase,
	}
	staircaseCmd.Flags().Float64Var(&xMax, "xmax", config.DefaultXMax, "upper x bound")
	staircaseCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [dataset.csv]",
		Short: "export the marked chart as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 1200, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: dataset name .svg)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [dataset.csv]",
		Short: "export the extremum report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [dataset.csv]",
		Short: "interactive dataset browser",
		Args:  cobra.ExactArgs(1),
		RunE:  browseDataset,
	}

	rootCmd.AddCommand(plotCmd, extremaCmd, zerosCmd, statsCmd, scanCmd, listCmd,
		generateCmd, staircaseCmd, exportSVGCmd, exportJSONCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the optional config file under explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("width") {
		cfg.Plot.Width = plotWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Plot.Height = plotHeight
	}
	if cmd.Flags().Changed("no-markers") {
		cfg.Plot.Markers = !noMarkers
	}
	if cmd.Flags().Changed("samples") {
		cfg.Generator.Samples = samples
	}
	if cmd.Flags().Changed("mean") {
		cfg.Generator.Mean = mean
	}
	if cmd.Flags().Changed("workers") {
		cfg.Generator.Workers = workers
	}
	if cmd.Flags().Changed("xmax") {
		cfg.Staircase.XMax = xMax
	}
	if cmd.Flags().Changed("points") {
		cfg.Staircase.Points = points
	}
	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func loadAndDetect(path string) (dataset.Dataset, extrema.Report, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, extrema.Report{}, err
	}
	report, err := extrema.Detect(ds)
	if err != nil {
		return nil, extrema.Report{}, err
	}
	return ds, report, nil
}

func plotDataset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ds, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("dataset: %s\n", args[0])
	fmt.Printf("samples: %d\n\n", len(ds))

	fmt.Println(viz.PlotDataset(ds, report, viz.PlotOptions{
		Width:   cfg.Plot.Width,
		Height:  cfg.Plot.Height,
		Markers: cfg.Plot.Markers,
		Caption: "|Z| along the critical line",
	}))
	return nil
}

func listExtrema(cmd *cobra.Command, args []string) error {
	ds, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("dataset: %s (%d samples)\n\n", args[0], len(ds))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tKIND\tT\t|Z|\tSPACING")
	for _, p := range report.Points {
		spacing := "-"
		if p.Sample.HasSpacing() {
			spacing = fmt.Sprintf("%.6f", p.Sample.Spacing)
		}
		fmt.Fprintf(w, "%d\t%s\t%.6f\t%.6f\t%s\n",
			p.Index, p.Kind, p.Sample.T, p.Sample.AbsZ, spacing)
	}
	return w.Flush()
}

func listZeros(cmd *cobra.Command, args []string) error {
	_, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}

	confirmed := extrema.ConfirmedValleys(report)
	if len(confirmed) == 0 {
		fmt.Println("no confirmed zeros in dataset")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tT\t|Z|\tSPACING")
	for i, p := range confirmed {
		fmt.Fprintf(w, "%d\t%.6f\t%.2e\t%.6f\n", i+1, p.Sample.T, p.Sample.AbsZ, p.Sample.Spacing)
	}
	return w.Flush()
}

func showStats(cmd *cobra.Command, args []string) error {
	ds, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}

	st := analysis.SpacingStats(report.Valleys())
	lo, hi := ds.Bounds()

	fmt.Printf("dataset: %s\n", args[0])
	fmt.Printf("range:   t ∈ [%.3f, %.3f]\n", lo, hi)
	fmt.Printf("valleys: %d  mountains: %d\n\n", len(report.Valleys()), len(report.Mountains()))

	if st.Count == 0 {
		fmt.Println("no spacing data (no confirmed zeros)")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "confirmed zeros\t%d\n", st.Count)
	fmt.Fprintf(w, "mean spacing\t%.6f\n", st.Mean)
	fmt.Fprintf(w, "min spacing\t%.6f\n", st.Min)
	fmt.Fprintf(w, "max spacing\t%.6f\n", st.Max)
	fmt.Fprintf(w, "stddev\t%.6f\n", st.StdDev)
	return w.Flush()
}

func scanDataset(cmd *cobra.Command, args []string) error {
	ds, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	reportID, err := st.Save(args[0], ds, report)
	if err != nil {
		return err
	}

	fmt.Printf("report id: %s\n", reportID)
	fmt.Printf("valleys: %d  mountains: %d\n", len(report.Valleys()), len(report.Mountains()))
	return nil
}

func listReports(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	reports, err := st.List()
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Println("no reports found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATASET\tTIME\tSAMPLES\tVALLEYS\tMOUNTAINS")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			r.ID,
			r.Dataset,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Samples,
			r.Valleys,
			r.Mountains,
		)
	}
	return w.Flush()
}

func generateDataset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sampler := zeta.Sampler{
		Samples: cfg.Generator.Samples,
		Mean:    cfg.Generator.Mean,
		Workers: cfg.Generator.Workers,
	}

	fmt.Printf("evaluating %d grid points...\n", cfg.Generator.Samples)
	start := time.Now()

	ds, err := sampler.Run(ctx)
	if err != nil {
		return err
	}

	report, err := extrema.Detect(ds)
	if err != nil {
		return err
	}
	ds = extrema.AnnotateSpacings(ds, report)

	if err := dataset.Save(args[0], ds); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("wrote %s: %d samples, %d valleys\n", args[0], len(ds), len(report.Valleys()))
	return nil
}

func plotStaircase(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	_, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}

	confirmed := extrema.ConfirmedValleys(report)
	if len(confirmed) == 0 {
		return fmt.Errorf("no confirmed zeros in dataset")
	}

	gammas := make([]float64, len(confirmed))
	for i, p := range confirmed {
		gammas[i] = p.Sample.T
	}

	xs := analysis.Linspace(1.0, cfg.Staircase.XMax, cfg.Staircase.Points)
	corr := analysis.StaircaseCorrection(gammas, xs)

	mainTerm := make([]float64, len(xs))
	corrected := make([]float64, len(xs))
	for i, x := range xs {
		mainTerm[i] = x
		corrected[i] = x + corr[i]
	}

	fmt.Printf("psi(x) approximation from %d zeros\n\n", len(gammas))
	fmt.Println(viz.StaircasePlot(xs, mainTerm, corrected, 70, 20))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	ds, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}

	svg := export.ChartSVG(ds, report, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("dataset too small to chart")
	}

	path := outPath
	if path == "" {
		base := args[0]
		path = base[:len(base)-len(filepath.Ext(base))] + ".svg"
	}

	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	ds, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}
	return export.ReportJSON(os.Stdout, args[0], ds, report)
}

func browseDataset(cmd *cobra.Command, args []string) error {
	ds, report, err := loadAndDetect(args[0])
	if err != nil {
		return err
	}
	return tui.Browse(ds, report, filepath.Base(args[0]))
}
