// ABOUTME: Command-line runner for the dialogue benchmark scenarios
// ABOUTME: Prints a per-scenario summary and exports JSON results

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/moviemate/moviemate/benchmarks/chatbench"
)

func main() {
	scenarioID := flag.String("scenario", "", "Run a specific scenario (recommendation, similar, quiz, mood, fallback). If empty, runs all.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("MovieMate Dialogue Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner := chatbench.NewRunner(*verbose)

	var results []chatbench.Result

	if *scenarioID == "" {
		fmt.Println("Running all dialogue benchmark scenarios...")
		fmt.Println()

		results = runner.RunAllScenarios()
	} else {
		var scenario chatbench.Scenario

		switch *scenarioID {
		case "recommendation":
			scenario = chatbench.GetRecommendationScenario()
		case "similar":
			scenario = chatbench.GetSimilarScenario()
		case "quiz":
			scenario = chatbench.GetQuizScenario()
		case "mood":
			scenario = chatbench.GetMoodScenario()
		case "fallback":
			scenario = chatbench.GetFallbackScenario()
		default:
			log.Fatalf("Unknown scenario: %s (valid options: recommendation, similar, quiz, mood, fallback)", *scenarioID)
		}

		fmt.Printf("Running scenario: %s\n\n", scenario.Name)

		results = []chatbench.Result{runner.RunScenario(scenario)}
	}

	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	passed := 0
	failed := 0

	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.ScenarioID, result.ScenarioName)
		fmt.Printf("  Intent Accuracy: %.2f\n", result.IntentAccuracy)
		fmt.Printf("  Response Fidelity: %.2f\n", result.ResponseFidelity)
		fmt.Printf("  Overall: %.2f\n", result.OverallScore)
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Scenarios: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
