// Command ift is the single image-processing entry point: load an
// image, place or accept seeds, run the IFT solver, and write a
// segmentation/cost visualization.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ift-go/ift/colortable"
	"github.com/ift-go/ift/costfn"
	"github.com/ift-go/ift/ift"
	"github.com/ift-go/ift/imageio"
	"github.com/ift-go/ift/pixelgrid"
	"github.com/ift-go/ift/seedgen"
	"github.com/ift-go/ift/solverconfig"
)

var flags struct {
	interactive bool
	automatic   int
	function    string
	weight      string
	output      string
	costOutput  string
	show        bool
	optimized   bool
	compare     bool
	profilePath string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run builds and executes the root command, returning the process exit
// code rather than calling os.Exit itself, so tests can drive it without
// terminating the test binary.
func run(args []string) int {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	root := newRootCommand(logger)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCommand(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ift <image-path>",
		Short: "Compute an Image Foresting Transform segmentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runIFT(args[0], logger)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "interactive seed selection (no-op headless)")
	f.IntVarP(&flags.automatic, "automatic", "a", 4, "auto-generate N seeds")
	f.StringVarP(&flags.function, "function", "f", "sum", "cost operator: sum or max")
	f.StringVarP(&flags.weight, "weight", "w", "diff", "arc-weight strategy: diff, grad, or const")
	f.StringVarP(&flags.output, "output", "o", "resultado_ift.png", "output image path")
	f.StringVar(&flags.costOutput, "cost-output", "", "cost image output path (skipped if empty)")
	f.BoolVarP(&flags.show, "show", "s", false, "print execution statistics (no-op for windows, headless)")
	f.BoolVar(&flags.optimized, "optimized", false, "use the bucket-optimized solver")
	f.BoolVar(&flags.compare, "compare", false, "run heap and bucket engines and report a comparison table")
	f.StringVar(&flags.profilePath, "profile", "", "load/save solver tuning knobs from this YAML file")
	return cmd
}

// runIFT implements the body of the root command: validate flags, load
// or build a solverconfig.Profile, load the image, generate seeds, run
// the configured solver(s), write the output, and print stats.
func runIFT(imagePath string, logger *zap.Logger) error {
	if flags.automatic < 1 {
		return fmt.Errorf("ift: --automatic must be >= 1, got %d", flags.automatic)
	}

	profile, err := loadProfile()
	if err != nil {
		return err
	}
	applyFlagOverrides(profile)

	img, err := imageio.Load(imagePath, logger)
	if err != nil {
		return err
	}

	seeds, err := seedgen.Generate(img, profile.Seeds.Automatic)
	if err != nil {
		return fmt.Errorf("ift: generating seeds: %w", err)
	}

	fn, err := buildCostFunction(profile)
	if err != nil {
		return err
	}

	opts := solverOptions(profile)

	var result *ift.Result
	if flags.compare {
		result, err = runCompare(img, seeds, fn, opts)
	} else if profile.Solver.Optimized {
		result, err = ift.SolveOptimized(img, seeds, fn, opts...)
	} else {
		result, err = ift.Solve(img, seeds, fn, opts...)
	}
	if err != nil {
		return fmt.Errorf("ift: solving: %w", err)
	}

	palette := colortable.NewPalette(nil)
	segmentation := result.CreateSegmentationImage(palette.Color)
	if err := imageio.SavePNG(segmentation, profile.Output.Path, logger); err != nil {
		return err
	}

	if profile.Output.CostPath != "" {
		if err := imageio.SavePNG(result.CreateCostImage(), profile.Output.CostPath, logger); err != nil {
			return err
		}
	}

	if flags.show {
		printStats(result)
	}

	if flags.profilePath != "" {
		if err := solverconfig.Save(profile, flags.profilePath); err != nil {
			return err
		}
	}
	return nil
}

func loadProfile() (*solverconfig.Profile, error) {
	if flags.profilePath == "" {
		return solverconfig.DefaultProfile(), nil
	}
	return solverconfig.Load(flags.profilePath)
}

// applyFlagOverrides lets explicit CLI flags win over whatever a loaded
// profile specified, falling back to the profile's own values only when
// neither a profile value nor a flag was given.
func applyFlagOverrides(profile *solverconfig.Profile) {
	profile.Solver.Function = flags.function
	profile.Solver.Weight = flags.weight
	profile.Solver.Optimized = profile.Solver.Optimized || flags.optimized
	profile.Seeds.Automatic = flags.automatic
	profile.Output.Path = flags.output
	if flags.costOutput != "" {
		profile.Output.CostPath = flags.costOutput
	}
}

func buildCostFunction(profile *solverconfig.Profile) (costfn.PathCostFunction, error) {
	var weight costfn.ArcWeightStrategy
	switch profile.Solver.Weight {
	case "diff":
		weight = costfn.IntensityDifference{}
	case "grad":
		weight = costfn.Gradient{Sigma: 1}
	case "const":
		weight = costfn.Constant{Value: 1}
	default:
		return nil, fmt.Errorf("ift: unknown --weight %q", profile.Solver.Weight)
	}

	switch profile.Solver.Function {
	case "sum":
		return costfn.NewSum(weight), nil
	case "max":
		return costfn.NewMax(weight), nil
	default:
		return nil, fmt.Errorf("ift: unknown --function %q", profile.Solver.Function)
	}
}

func solverOptions(profile *solverconfig.Profile) []ift.Option {
	conn := pixelgrid.Connectivity4
	if profile.Solver.EightConnected {
		conn = pixelgrid.Connectivity8
	}
	return []ift.Option{ift.WithPrecision(profile.Solver.Precision), ift.WithConnectivity(conn)}
}

// runCompare runs both engines under --compare, prints the comparison
// table to stdout, and returns the fastest run's Result so the rest of
// runIFT's output pipeline (segmentation PNG, stats) proceeds unchanged.
func runCompare(img *pixelgrid.Image, seeds *pixelgrid.SeedSet, fn costfn.PathCostFunction, opts []ift.Option) (*ift.Result, error) {
	comparison, err := ift.Compare(img, seeds, fn, []ift.NamedConfig{
		{Name: "heap", Engine: ift.EngineHeap, Options: opts},
		{Name: "bucket", Engine: ift.EngineBucket, Options: opts},
	})
	if err != nil {
		return nil, err
	}
	for _, row := range comparison.Report() {
		fmt.Printf("%-8s finalized=%-8d relaxations=%-8d duration=%s\n", row.Name, row.PixelsFinalized, row.Relaxations, row.Duration)
	}
	_, result, ok := comparison.Fastest()
	if !ok {
		return nil, fmt.Errorf("ift: --compare produced no runs")
	}
	return result, nil
}

func printStats(result *ift.Result) {
	costs := make([]float64, 0, len(result.C))
	for _, c := range result.C {
		if c < math.MaxFloat64 {
			costs = append(costs, c)
		}
	}
	fmt.Printf("pixels finalized: %d / %d\n", len(costs), len(result.C))
	fmt.Printf("components: %d\n", result.ComponentCount())
	fmt.Printf("complete: %v, valid forest: %v\n", result.IsComplete(), result.IsValidForest())
	if hist, err := ift.CostHistogram(costs, 10); err == nil {
		fmt.Println(hist)
	}
}
