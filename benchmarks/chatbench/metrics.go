// ABOUTME: Deterministic scoring of scenario runs against scripted expectations
// ABOUTME: Intent accuracy plus response fidelity, combined into a pass/fail result

package chatbench

import (
	"fmt"
	"strings"
)

// MetricsCalculator computes scores for benchmark scenarios
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateIntentAccuracy computes the fraction of turns routed to the
// expected intent (0.0-1.0).
func (m *MetricsCalculator) CalculateIntentAccuracy(outcomes []TurnOutcome) (float64, string) {
	if len(outcomes) == 0 {
		return 1.0, "No turns to evaluate"
	}

	mismatches := []string{}
	for i, outcome := range outcomes {
		if outcome.GotIntent != outcome.Turn.WantIntent {
			mismatches = append(mismatches, fmt.Sprintf(
				"turn %d: got %s, want %s",
				i+1, outcome.GotIntent, outcome.Turn.WantIntent,
			))
		}
	}

	accuracy := float64(len(outcomes)-len(mismatches)) / float64(len(outcomes))
	if accuracy == 1.0 {
		return 1.0, "Perfect intent routing - every turn matched"
	}

	return accuracy, fmt.Sprintf(
		"Intent routing errors (%.2f) - %v",
		accuracy, mismatches,
	)
}

// CalculateTurnFidelity scores one reply against its expected and forbidden
// strings (0.0-1.0). Matching is case-insensitive substring containment.
func (m *MetricsCalculator) CalculateTurnFidelity(
	response string,
	wantInResponse []string,
	forbiddenInResponse []string,
) (float64, string) {
	responseUpper := strings.ToUpper(response)

	// Check all expected strings are present
	missingItems := []string{}
	for _, want := range wantInResponse {
		if !strings.Contains(responseUpper, strings.ToUpper(want)) {
			missingItems = append(missingItems, want)
		}
	}

	// Check no forbidden strings are present
	forbiddenFound := []string{}
	for _, forbidden := range forbiddenInResponse {
		if strings.Contains(responseUpper, strings.ToUpper(forbidden)) {
			forbiddenFound = append(forbiddenFound, forbidden)
		}
	}

	if len(missingItems) == 0 && len(forbiddenFound) == 0 {
		return 1.0, "Reply matches expectations"
	}

	if len(missingItems) > 0 && len(forbiddenFound) > 0 {
		return 0.0, fmt.Sprintf(
			"Fidelity failure - missing expected text: %v, forbidden text found: %v",
			missingItems, forbiddenFound,
		)
	}

	if len(missingItems) > 0 {
		return 0.5, fmt.Sprintf(
			"Partial fidelity - missing expected text: %v",
			missingItems,
		)
	}

	return 0.5, fmt.Sprintf(
		"Partial fidelity - forbidden text found: %v",
		forbiddenFound,
	)
}

// EvaluateScenario runs full evaluation over a scenario's recorded outcomes
func (m *MetricsCalculator) EvaluateScenario(scenario Scenario, outcomes []TurnOutcome) Result {
	intentAccuracy, intentDetail := m.CalculateIntentAccuracy(outcomes)

	// Average per-turn fidelity across the whole conversation
	fidelitySum := 0.0
	turnFailures := []string{}
	for i, outcome := range outcomes {
		score, detail := m.CalculateTurnFidelity(
			outcome.GotMessage,
			outcome.Turn.WantInResponse,
			outcome.Turn.ForbiddenInResponse,
		)
		fidelitySum += score
		if score < 1.0 {
			turnFailures = append(turnFailures, fmt.Sprintf("turn %d: %s", i+1, detail))
		}
	}

	fidelity := 1.0
	if len(outcomes) > 0 {
		fidelity = fidelitySum / float64(len(outcomes))
	}

	fidelityDetail := "Every reply matched its expectations"
	if len(turnFailures) > 0 {
		fidelityDetail = strings.Join(turnFailures, "; ")
	}

	overallScore := (intentAccuracy + fidelity) / 2.0

	// The engine is fully deterministic under fixed seeds, so anything short
	// of a clean run is a regression.
	status := "FAIL"
	if intentAccuracy >= 1.0 && fidelity >= 1.0 {
		status = "PASS"
	}

	return Result{
		ScenarioID:       scenario.ID,
		ScenarioName:     scenario.Name,
		IntentAccuracy:   intentAccuracy,
		ResponseFidelity: fidelity,
		OverallScore:     overallScore,
		Status:           status,
		Details: map[string]interface{}{
			"intent_detail":   intentDetail,
			"fidelity_detail": fidelityDetail,
			"turns":           len(outcomes),
		},
	}
}
