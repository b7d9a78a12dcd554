package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/hysym/internal/config"
	"github.com/san-kum/hysym/internal/hybrid"
	"github.com/san-kum/hysym/internal/physics"
	"github.com/san-kum/hysym/internal/storage"
	"github.com/san-kum/hysym/internal/symbolic"
	"github.com/san-kum/hysym/internal/tui"
	"github.com/san-kum/hysym/internal/viz"
)

var (
	dataDir    string
	configFile string
	boundary   string
	dbPath     string
	modeIdx    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hysym",
		Short: "symbolic abstractions for timed hybrid automata",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hysym", "data directory")

	buildCmd := &cobra.Command{
		Use:   "build [system]",
		Short: "build the symbolic model of a benchmark system",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	buildCmd.Flags().StringVar(&boundary, "boundary", "drop", "reset boundary policy (drop|snap)")
	buildCmd.Flags().StringVar(&dbPath, "db", "", "sqlite catalog path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved builds",
		RunE:  runList,
	}

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list available benchmark systems",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range physics.Names() {
				fmt.Println(name)
			}
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [build_id]",
		Short: "show metadata of a saved build",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [system]",
		Short: "plot transition density over the clock grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	plotCmd.Flags().StringVar(&boundary, "boundary", "drop", "reset boundary policy (drop|snap)")
	plotCmd.Flags().IntVar(&modeIdx, "mode", 1, "mode to plot")

	inspectCmd := &cobra.Command{
		Use:   "inspect [system]",
		Short: "browse a built model interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	inspectCmd.Flags().StringVar(&boundary, "boundary", "drop", "reset boundary policy (drop|snap)")

	rootCmd.AddCommand(buildCmd, listCmd, systemsCmd, infoCmd, plotCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.System = args[0]
	}
	if cmd.Flags().Changed("boundary") || cfg.Boundary == "" {
		cfg.Boundary = boundary
	}
	return cfg, nil
}

func buildModel(cfg *config.Config) (*hybrid.System, *symbolic.Model, error) {
	sys, err := physics.Lookup(cfg.System)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Apply(sys); err != nil {
		return nil, nil, err
	}
	policy, err := cfg.BoundaryPolicy()
	if err != nil {
		return nil, nil, err
	}
	model, err := symbolic.Build(sys, symbolic.Options{Boundary: policy})
	if err != nil {
		return nil, nil, err
	}
	return sys, model, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	sys, model, err := buildModel(cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	buildID, err := st.Save(sys.Name, cfg.Boundary, elapsed, model)
	if err != nil {
		return err
	}

	if dbPath == "" {
		dbPath = cfg.Database
	}
	if dbPath != "" {
		cat, err := storage.OpenCatalog(dbPath)
		if err != nil {
			return err
		}
		defer cat.Close()
		meta, err := st.Load(buildID)
		if err != nil {
			return err
		}
		if err := cat.Record(*meta); err != nil {
			return err
		}
	}

	fmt.Println(viz.Summary(sys.Name, model))
	fmt.Printf("\nsaved build %s (%.2fs)\n", buildID, elapsed.Seconds())
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	builds, err := st.List()
	if err != nil {
		return err
	}
	if len(builds) == 0 {
		fmt.Println("no builds")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tSTATES\tINPUTS\tTRANSITIONS\tWHEN")
	for _, b := range builds {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			b.ID, b.System, b.States, b.Inputs, b.Transitions,
			b.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func runInfo(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", meta.ID)
	fmt.Fprintf(w, "system\t%s\n", meta.System)
	fmt.Fprintf(w, "boundary\t%s\n", meta.Boundary)
	fmt.Fprintf(w, "modes\t%d\n", meta.Modes)
	fmt.Fprintf(w, "states\t%d\n", meta.States)
	fmt.Fprintf(w, "inputs\t%d\n", meta.Inputs)
	fmt.Fprintf(w, "transitions\t%d\n", meta.Transitions)
	fmt.Fprintf(w, "elapsed\t%.2fs\n", meta.Elapsed)
	fmt.Fprintf(w, "when\t%s\n", meta.Timestamp.Format(time.RFC3339))
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	_, model, err := buildModel(cfg)
	if err != nil {
		return err
	}
	if modeIdx < 1 || modeIdx > model.NumModes() {
		return fmt.Errorf("mode %d out of range [1, %d]", modeIdx, model.NumModes())
	}
	fmt.Println(viz.Profile(model, modeIdx))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sys, model, err := buildModel(cfg)
	if err != nil {
		return err
	}
	return tui.Run(sys.Name, model)
}
