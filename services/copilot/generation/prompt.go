// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package generation

import (
	"fmt"
	"strings"

	"github.com/nztclabs/netzero-copilot/services/copilot/datatypes"
)

// maxPromptTechnologies caps how many retrieved technologies are offered to
// the model. More than this dilutes the context window without improving
// combinations.
const maxPromptTechnologies = 12

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func floatOrNotSpecified(v *float64) string {
	if v == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%g", *v)
}

func intOrNotSpecified(v *int) string {
	if v == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%d", *v)
}

// buildPrompt renders the generation prompt from the challenge and the
// retrieved technology shortlist. Returns the prompt and the IDs the model
// is allowed to reference.
func buildPrompt(challenge datatypes.ChallengeInput, techs []datatypes.TechnologyMatch) (string, []string) {
	if len(techs) > maxPromptTechnologies {
		techs = techs[:maxPromptTechnologies]
	}

	techBlocks := make([]string, 0, len(techs))
	validIDs := make([]string, 0, len(techs))
	for _, tech := range techs {
		validIDs = append(validIDs, tech.TechID)
		techBlocks = append(techBlocks, fmt.Sprintf(
			"Technology %s:\n- Title: %s\n- Provider: %s\n- Description: %s\n- TRL: %d\n- Category: %s / %s",
			tech.TechID, tech.Title, tech.Provider, tech.Description, tech.TRL,
			tech.Category, tech.SubCategory))
	}

	constraints := "None specified"
	if len(challenge.Constraints) > 0 {
		constraints = strings.Join(challenge.Constraints, ", ")
	}

	var b strings.Builder
	b.WriteString("You are an innovation consultant specializing in net-zero technology solutions.\n\n")
	b.WriteString("CLIENT CHALLENGE:\n")
	b.WriteString(challenge.ChallengeDescription)
	b.WriteString("\n\nCONTEXT:\n")
	fmt.Fprintf(&b, "- Industry: %s\n", orNotSpecified(challenge.IndustrySector))
	fmt.Fprintf(&b, "- Emissions Baseline: %s tCO2e/year\n", floatOrNotSpecified(challenge.EmissionsBaseline))
	fmt.Fprintf(&b, "- Target Reduction: %s%%\n", floatOrNotSpecified(challenge.TargetReduction))
	fmt.Fprintf(&b, "- Timeline: %s months\n", intOrNotSpecified(challenge.TimelineMonths))
	fmt.Fprintf(&b, "- Budget: %s\n", orNotSpecified(challenge.BudgetRange))
	fmt.Fprintf(&b, "- Constraints: %s\n", constraints)
	b.WriteString("\nAVAILABLE TECHNOLOGIES:\n")
	b.WriteString(strings.Join(techBlocks, "\n\n"))
	b.WriteString("\n\nIMPORTANT RULES:\n")
	fmt.Fprintf(&b, "1. Use technology IDs ONLY from this list: %s\n", strings.Join(validIDs, ", "))
	b.WriteString("2. Each solution combines 3-4 technologies to create synergistic value\n")
	b.WriteString("3. Explain WHY each technology is essential to the solution\n")
	b.WriteString("4. The description field should be 4-5 sentences explaining the complete solution concept\n")
	b.WriteString("5. Focus on combinations that address multiple aspects of the challenge\n")
	b.WriteString(`
TASK:
Generate 3 distinct solution concepts. Each solution should:
- Combine 3-4 complementary technologies that work together
- Have a clear, compelling title that captures the solution's essence
- Include a detailed description (4-5 sentences) covering what the solution does, how the technologies integrate, expected outcomes, and key innovation
- Explain the specific role of each technology in the combination
- List 4 concrete benefits (quantify where possible)
- Identify 3-4 realistic integration challenges
- Provide an honest feasibility assessment (High, Medium or Low) based on TRL levels and complexity

CRITICAL: Output ONLY the JSON object below, with NO explanatory text before or after.

{
  "solutions": [
    {
      "solution_id": 1,
      "title": "Descriptive Solution Name",
      "technology_ids": ["<id>", "<id>", "<id>"],
      "description": "4-5 sentence description of the complete solution concept.",
      "how_it_works": "Technical explanation of the integrated system and the flow between components.",
      "technology_roles": {
        "<id>": "Specific role this technology plays and why it is essential"
      },
      "benefits": ["...", "...", "...", "..."],
      "integration_considerations": ["...", "...", "..."],
      "feasibility": "High",
      "timeline_estimate": "24-30 months",
      "estimated_cost_range": "High (£8M-£15M)"
    }
  ]
}

Now generate 3 solutions following this format exactly.`)

	return b.String(), validIDs
}
