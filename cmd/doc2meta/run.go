package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/brock-acryl/datahub-documentation-transformer/pkg/config"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/errors"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/records"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/registry"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/store"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/transform"
	"github.com/brock-acryl/datahub-documentation-transformer/pkg/types"
)

var (
	runRecipePath   string
	runInputPath    string
	runOutputPath   string
	runSnapshotPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a transformer recipe over an entity file",
	Long: `Run loads a recipe and an entity record file, transforms every entity,
and writes the resulting change proposals as JSON lines.

With PATCH semantics, existing aspect state can be supplied as a YAML
snapshot via --snapshot; without one, PATCH merges against empty state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe, err := config.LoadRecipe(runRecipePath)
		if err != nil {
			return err
		}

		var aspectStore types.AspectStore
		if runSnapshotPath != "" {
			snapshot, err := store.LoadSnapshot(runSnapshotPath)
			if err != nil {
				return err
			}
			aspectStore = snapshot
		}

		factory, err := registry.GetTransformerFactory(recipe.Transformer.Type)
		if err != nil {
			return err
		}
		transformer, err := factory(recipe.Transformer.Config, aspectStore)
		if err != nil {
			return err
		}

		entities, err := records.LoadEntities(runInputPath)
		if err != nil {
			return err
		}

		var proposals []types.ChangeProposal
		for _, entity := range entities {
			entityProposals, err := transformer.Transform(entity)
			if err != nil {
				// Per-entity failure does not stop the run
				pterm.Warning.WithWriter(os.Stderr).Printf("skipping %s: %v\n", entity.URN, err)
				continue
			}
			proposals = append(proposals, entityProposals...)
		}

		out := os.Stdout
		if runOutputPath != "" && runOutputPath != "-" {
			f, err := os.Create(runOutputPath)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to create output file %s", runOutputPath)
			}
			defer f.Close()
			out = f
		}

		runID := records.NewRunID()
		if err := records.WriteProposals(out, proposals, runID); err != nil {
			return err
		}

		printSummary(transformer, runID, len(entities), len(proposals))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runRecipePath, "recipe", "r", "", "Recipe file (yaml or toml)")
	runCmd.Flags().StringVarP(&runInputPath, "input", "i", "", "Entity record file (yaml)")
	runCmd.Flags().StringVarP(&runOutputPath, "output", "o", "-", "Output file for proposals (JSON lines, - for stdout)")
	runCmd.Flags().StringVarP(&runSnapshotPath, "snapshot", "s", "", "Existing aspect snapshot for PATCH merges (yaml)")
	_ = runCmd.MarkFlagRequired("recipe")
	_ = runCmd.MarkFlagRequired("input")
}

// printSummary renders the run counters to stderr so stdout stays clean
// for the proposal stream
func printSummary(transformer types.Transformer, runID string, entities, proposals int) {
	reporter, ok := transformer.(interface{ Report() transform.ReportSnapshot })
	if !ok {
		pterm.Success.WithWriter(os.Stderr).Printfln("run %s: %d entities, %d proposals", runID, entities, proposals)
		return
	}

	report := reporter.Report()
	data := pterm.TableData{
		{"Entities", fmt.Sprintf("%d", report.Entities)},
		{"Bypassed", fmt.Sprintf("%d", report.Bypassed)},
		{"Pairs extracted", fmt.Sprintf("%d", report.Pairs)},
		{"Rule misses", fmt.Sprintf("%d", report.Misses)},
		{"Proposals", fmt.Sprintf("%d", report.Proposals)},
	}

	aspectNames := make([]string, 0, len(report.ByAspect))
	for name := range report.ByAspect {
		aspectNames = append(aspectNames, string(name))
	}
	sort.Strings(aspectNames)
	for _, name := range aspectNames {
		data = append(data, []string{"  " + name, fmt.Sprintf("%d", report.ByAspect[types.AspectName(name)])})
	}

	summary, err := pterm.DefaultTable.WithData(data).Srender()
	if err == nil {
		fmt.Fprintln(os.Stderr, summary)
	}
	pterm.Success.WithWriter(os.Stderr).Printfln("run %s complete", runID)
}
