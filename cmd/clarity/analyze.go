package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/rupam1998/clarity-ai-app/internal/config"
	"github.com/rupam1998/clarity-ai-app/internal/engine"
	"github.com/rupam1998/clarity-ai-app/internal/ingest"
	"github.com/rupam1998/clarity-ai-app/internal/insight"
	"github.com/rupam1998/clarity-ai-app/internal/models"
	"github.com/rupam1998/clarity-ai-app/internal/normalize"
)

var analyzeFlags struct {
	adsPath string
	seoPath string
	crmPath string
	demoDir string
	goal    string
	budget  float64
	jsonOut bool
	topRows int
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze marketing CSV exports offline",
	Long:  "Merges ads, SEO and CRM CSV files per keyword and prints STOP/FIX/INVEST/OBSERVE recommendations.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlags.adsPath, "ads", "", "advertising CSV export")
	analyzeCmd.Flags().StringVar(&analyzeFlags.seoPath, "seo", "", "SEO keywords CSV export")
	analyzeCmd.Flags().StringVar(&analyzeFlags.crmPath, "crm", "", "CRM leads CSV export")
	analyzeCmd.Flags().StringVar(&analyzeFlags.demoDir, "demo", "", "directory with synthetic demo datasets (instead of --ads)")
	analyzeCmd.Flags().StringVar(&analyzeFlags.goal, "goal", "roas", "optimization goal: roas, conversions, cpa, traffic")
	analyzeCmd.Flags().Float64Var(&analyzeFlags.budget, "budget", 10000, "monthly budget used for scale-up estimates")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.jsonOut, "json", false, "print the raw analysis result as JSON")
	analyzeCmd.Flags().IntVar(&analyzeFlags.topRows, "top", 10, "rows shown per category")
	analyzeCmd.MarkFlagsMutuallyExclusive("ads", "demo")
	analyzeCmd.MarkFlagsOneRequired("ads", "demo")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var (
		ads, seo, crm []normalize.Row
		mode          = "upload"
		err           error
	)
	if analyzeFlags.demoDir != "" {
		mode = "synthetic"
		ads, seo, crm, err = ingest.LoadDemoDir(analyzeFlags.demoDir)
		if err != nil {
			return err
		}
	} else {
		load := func(path string) ([]normalize.Row, error) {
			if path == "" {
				return nil, nil
			}
			return ingest.ReadCSV(path)
		}
		if ads, err = load(analyzeFlags.adsPath); err != nil {
			return err
		}
		if seo, err = load(analyzeFlags.seoPath); err != nil {
			return err
		}
		if crm, err = load(analyzeFlags.crmPath); err != nil {
			return err
		}
	}

	eng := engine.New(cfg.Thresholds, logger, insight.Template{})
	result, err := eng.Analyze(cmd.Context(), engine.Request{
		Mode:   mode,
		Goal:   models.Goal(analyzeFlags.goal),
		Budget: analyzeFlags.budget,
		Data:   engine.RequestData{Ads: ads, Seo: seo, Crm: crm},
	})
	if err != nil {
		return err
	}

	if analyzeFlags.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)
	return nil
}

func printResult(result *models.AnalysisResult) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Println(bold("Marketing Intelligence Report"))
	fmt.Printf("Keywords analyzed: %d • Avg confidence: %d%% • Tracked spend: $%.0f\n",
		result.Stats.TotalUnits, result.Stats.AvgConfidence, result.Stats.TotalSpend)
	fmt.Printf("Monthly savings identified: $%.0f (annual $%.0f)\n\n",
		result.Stats.TotalSavings, result.Stats.AnnualSavings)

	if result.AIInsight != "" {
		fmt.Println(result.AIInsight)
		fmt.Println()
	}

	sections := []struct {
		label string
		paint *color.Color
		recs  []*models.KeywordRecord
	}{
		{"STOP — pause immediately", color.New(color.FgRed, color.Bold), result.Recommendations.Stop},
		{"FIX — optimize these", color.New(color.FgYellow, color.Bold), result.Recommendations.Fix},
		{"INVEST — scale up", color.New(color.FgGreen, color.Bold), result.Recommendations.Invest},
		{"OBSERVE — keep watching", color.New(color.FgHiBlack, color.Bold), result.Recommendations.Observe},
	}
	for _, s := range sections {
		fmt.Println(s.paint.Sprintf("%s (%d)", s.label, len(s.recs)))
		if len(s.recs) == 0 {
			fmt.Println("  nothing in this category")
			fmt.Println()
			continue
		}
		printTable(s.recs, analyzeFlags.topRows)
		fmt.Println()
	}
}

func printTable(recs []*models.KeywordRecord, top int) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	table.Header([]string{"Prio", "Keyword", "Spend", "Reason", "Confidence", "Impact"})

	var rows [][]string
	for i, rec := range recs {
		if i == top {
			break
		}
		spend := "-"
		if rec.Ads != nil && rec.Ads.Spend != nil {
			spend = fmt.Sprintf("$%.0f", *rec.Ads.Spend)
		}
		impact := "-"
		if rec.Classification.Savings != nil {
			impact = fmt.Sprintf("$%.0f", *rec.Classification.Savings)
		} else if rec.Classification.Potential != nil {
			impact = fmt.Sprintf("$%.0f", *rec.Classification.Potential)
		}
		rows = append(rows, []string{
			fmt.Sprintf("P%d", rec.Classification.Priority),
			rec.Keyword,
			spend,
			rec.Classification.Reason,
			fmt.Sprintf("%d%%", rec.Confidence.Score),
			impact,
		})
	}
	table.Bulk(rows)
	table.Render()
}
