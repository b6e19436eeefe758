// Command fine-ill-eat generates a weekly plan from a preferences JSON file
// and prints it, for quick local use without the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"fine-ill-eat/internal/config"
	"fine-ill-eat/internal/filter"
	"fine-ill-eat/internal/llm"
	"fine-ill-eat/internal/plan"
	"fine-ill-eat/internal/prefs"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	prefsPath := flag.String("prefs", "", "path to a preferences JSON file (empty for defaults)")
	asJSON := flag.Bool("json", false, "print the full result as JSON")
	flag.Parse()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var p prefs.Preferences
	if *prefsPath != "" {
		data, err := os.ReadFile(*prefsPath)
		if err != nil {
			log.Fatalf("Failed to read preferences file: %v", err)
		}
		if err := json.Unmarshal(data, &p); err != nil {
			log.Fatalf("Failed to parse preferences file: %v", err)
		}
	}

	var textGen llm.TextGenerator
	if cfg.HasGenerationBackend() {
		textGen = llm.NewOpenRouterClient(cfg)
	}

	selector := filter.NewSelector(rand.New(rand.NewSource(time.Now().UnixNano())))
	generator := plan.NewGenerator(textGen, selector, nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LLMTimeout+time.Minute)
	defer cancel()

	progress := func(stage, message string) {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", stage, message)
	}

	res, err := generator.Generate(ctx, &p, progress)
	if err != nil {
		log.Fatalf("Plan generation failed: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		return
	}

	printResult(res)
}

func printResult(res *plan.Result) {
	if !res.UsedAgentPath {
		fmt.Printf("Catalog plan (%s)\n\n", res.FallbackReason)
	}
	for _, day := range res.Plan.Days {
		fmt.Printf("%s\n", day.Day)
		fmt.Printf("  Breakfast: %s\n", day.Breakfast.Name)
		fmt.Printf("  Lunch:     %s\n", day.Lunch.Name)
		fmt.Printf("  Dinner:    %s\n", day.Dinner.Name)
	}
	if res.CookSchedule != "" {
		fmt.Printf("\nCook schedule: %s\n", res.CookSchedule)
	}
	if res.IngredientReuse != "" {
		fmt.Printf("Ingredient reuse: %s\n", res.IngredientReuse)
	}

	fmt.Println("\nShopping list:")
	lastCategory := ""
	for _, item := range res.ShoppingList {
		if item.Category != lastCategory {
			fmt.Printf("  %s\n", item.Category)
			lastCategory = item.Category
		}
		fmt.Printf("    - %s (%s)\n", item.Name, item.Quantity)
	}
}
