// Command demo runs one matching session end to end and prints the rendered
// donation plan and impact report. Answers come from a JSON file or, with no
// arguments, a built-in sample donor.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"givewise/internal/catalog"
	"givewise/internal/infra"
	"givewise/internal/pipeline"
	"givewise/internal/profile"
	"givewise/internal/render"
	providers "givewise/internal/signal"
)

type input struct {
	Answers  profile.RawAnswers `json:"answers"`
	FreeText string             `json:"free_text"`
}

func main() {
	_ = godotenv.Load()

	answersPath := flag.String("answers", "", "path to a JSON file with onboarding answers")
	horizon := flag.Int("horizon", pipeline.DefaultHorizonMonths, "impact horizon in months")
	flag.Parse()

	logger := infra.NewLogger("development")

	in := sampleInput()
	if *answersPath != "" {
		data, err := os.ReadFile(*answersPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("read answers file")
		}
		if err := json.Unmarshal(data, &in); err != nil {
			logger.Fatal().Err(err).Msg("decode answers file")
		}
	}

	ctx := context.Background()
	store, err := catalog.NewStore(ctx, catalog.SeedLoader{})
	if err != nil {
		logger.Fatal().Err(err).Msg("load catalog")
	}

	runner := pipeline.New(store, pipeline.Options{
		Provider:  providers.TextExtractor{},
		Predictor: providers.HeuristicPredictor{},
	}, logger)

	result, err := runner.Run(ctx, in.Answers, in.FreeText, *horizon)
	if pipeline.IsNoMatch(err) {
		fmt.Println("No charity matched this profile.")
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("pipeline failed")
	}

	fmt.Printf("Matched %d charities; best: %s (score %.3f)\n\n",
		len(result.Matches), result.Plan.Charity.Name, result.Matches[0].Score)
	fmt.Println(render.Plan(result.Plan))
	fmt.Println(render.Report(result.Report))
}

func sampleInput() input {
	return input{
		Answers: profile.RawAnswers{
			Name:         "Alex",
			Interests:    []string{"water", "health", "environment"},
			Causes:       []string{"Water & Sanitation", "Environment"},
			IncomeIndex:  2,
			ComfortLevel: "medium",
			Frequency:    "monthly",
			Geography:    "global",
		},
		FreeText: "I care deeply about helping communities get clean water and building a better future for the planet.",
	}
}
