package document

import "finesight-api/pkg/gemini"

const legalDocumentPrompt = `
Role and Goal:
You are "Lexi," an AI Legal Document Assistant powered by Google Cloud's generative AI. Your mission is to help everyday users—including individuals and small businesses—with little or no legal background—to understand, interpret, and navigate complex legal documents such as contracts, agreements, rental terms, loan forms, or service terms.

You should:
- Translate legal jargon into clear, practical, and empathetic explanations.
- Focus on helping users understand what they are agreeing to, highlighting important clauses, potential risks, and user-specific implications.
- Encourage users to ask clarifying questions and seek professional advice when needed.
- Create a safe, private, and supportive environment, assuring users that you are here to assist—not to replace legal counsel.

Important Notes:
- Always ensure that your output is structured and machine-readable as a single JSON object.
- Prioritize clarity, brevity, and relevance while covering key aspects of the document.
- Avoid overwhelming users with unnecessary details—focus on what matters most for decision-making.
- If terms are ambiguous, explain them in simple, step-by-step fashion.
- Your explanations must be empathetic, trustworthy, and non-alarming.

Core Task:
When a user provides you with text from a legal document, analyze it comprehensively and generate a single, valid JSON object containing your full analysis. Do not include any text or explanations outside of the JSON object itself.

Analysis Requirements:
Provide a thorough analysis covering all aspects of the legal document including:
- Summary and parties involved
- Payment terms, duration, and termination conditions
- Privacy, liability, and dispute resolution
- Warranties, compliance, and intellectual property
- Red flags and additional considerations
- Actionable questions for the user

JSON Output Format:
Your response must strictly adhere to the comprehensive JSON structure with all required fields populated based on the document content. If a section doesn't apply to the document, provide "Not applicable" or "Not specified in this document" as appropriate.

Now analyze the following legal document text:

`

const ragPromptTemplate = `You are a helpful legal document assistant. Based on the provided document context, answer the user's question accurately and clearly.

Context from the legal document:
%s

User Question: %s

Please provide a clear, helpful answer based on the document context above. If something is not covered in the document, try referring to general knowledge but clarify that it's outside the provided context. Try saying something relevant but don't say the document does not provide information on that topic.`

func stringProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func objectProperty(description string, required []string, properties map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"required":    required,
		"properties":  properties,
	}
}

func arrayProperty(description string, items map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": description,
		"items":       items,
	}
}

// legalAnalysisSchema constrains the model to the exact shape LegalAnalysis
// unmarshals. Sent as the responseSchema of the generateContent call.
func legalAnalysisSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"summary": stringProperty(
				"A concise, high-level summary of the document's purpose and how it affects the user in simple terms.",
			),
			"parties": arrayProperty(
				"List of parties involved in the agreement with their roles and responsibilities.",
				objectProperty("", []string{"role", "details"}, map[string]interface{}{
					"role":    stringProperty("Role or title of the party involved"),
					"details": stringProperty("Explanation of this party's involvement and obligations."),
				}),
			),
			"paymentDetails": objectProperty(
				"Detailed information on payment terms and related conditions.",
				[]string{"amount", "penalties", "refunds"},
				map[string]interface{}{
					"amount":    stringProperty("How much is involved, payment terms, and schedules."),
					"penalties": stringProperty("Potential fines or consequences for missing payments."),
					"refunds":   stringProperty("Conditions under which payments may be refunded or canceled."),
				},
			),
			"durationAndTermination": objectProperty(
				"Terms related to the duration and termination of the agreement.",
				[]string{"startDate", "endDate", "renewal", "termination"},
				map[string]interface{}{
					"startDate":   stringProperty("When the agreement starts."),
					"endDate":     stringProperty("When the agreement ends or how long it runs."),
					"renewal":     stringProperty("Automatic renewal terms, if any."),
					"termination": stringProperty("How and when the contract can be ended."),
				},
			),
			"confidentialityAndPrivacy": objectProperty(
				"Privacy protections and confidentiality rules.",
				[]string{"dataHandling", "restrictions"},
				map[string]interface{}{
					"dataHandling": stringProperty("How personal or sensitive information is handled."),
					"restrictions": stringProperty("Limitations on sharing or usage of data."),
				},
			),
			"liabilityAndIndemnity": objectProperty(
				"Liability clauses and indemnity responsibilities.",
				[]string{"responsibility", "limits"},
				map[string]interface{}{
					"responsibility": stringProperty("Who is responsible for damages or losses."),
					"limits":         stringProperty("Limitations or exclusions to liability."),
				},
			),
			"disputeResolution": objectProperty(
				"Dispute resolution terms and applicable legal frameworks.",
				[]string{"process", "jurisdiction"},
				map[string]interface{}{
					"process":      stringProperty("How disagreements will be resolved."),
					"jurisdiction": stringProperty("Which laws or courts apply."),
				},
			),
			"warrantiesAndGuarantees": objectProperty(
				"Warranties and guarantees that are offered in the agreement.",
				[]string{"promises", "coverage"},
				map[string]interface{}{
					"promises": stringProperty("What assurances or guarantees are provided."),
					"coverage": stringProperty("What is included or excluded from guarantees."),
				},
			),
			"forceMajeure": objectProperty(
				"Clauses regarding uncontrollable events and their impact.",
				[]string{"events", "impact"},
				map[string]interface{}{
					"events": stringProperty("Uncontrollable events that affect obligations."),
					"impact": stringProperty("How obligations change during such events."),
				},
			),
			"intellectualProperty": objectProperty(
				"Intellectual property rights and usage terms.",
				[]string{"ownership", "usage"},
				map[string]interface{}{
					"ownership": stringProperty("Who owns the content or inventions."),
					"usage":     stringProperty("Terms for how intellectual property can be used."),
				},
			),
			"complianceAndRegulations": objectProperty(
				"Compliance rules and penalties for violating them.",
				[]string{"requirements", "penalties"},
				map[string]interface{}{
					"requirements": stringProperty("Legal rules or licenses needed to comply."),
					"penalties":    stringProperty("Consequences of non-compliance."),
				},
			),
			"amendmentsAndModifications": objectProperty(
				"Terms for amending or modifying the contract.",
				[]string{"process", "consent"},
				map[string]interface{}{
					"process": stringProperty("How changes to the document are made."),
					"consent": stringProperty("Who must approve changes."),
				},
			),
			"assignmentAndTransfer": objectProperty(
				"Rules around transferring obligations or rights.",
				[]string{"conditions"},
				map[string]interface{}{
					"conditions": stringProperty("When responsibilities or rights can be transferred."),
				},
			),
			"insuranceRequirements": objectProperty(
				"Insurance clauses relevant to the agreement.",
				[]string{"coverage"},
				map[string]interface{}{
					"coverage": stringProperty("Insurance needed and who pays for it."),
				},
			),
			"signaturesAndWitnesses": objectProperty(
				"Rules for validating signatures and witnesses.",
				[]string{"protocols"},
				map[string]interface{}{
					"protocols": stringProperty("How signatures are collected and validated."),
				},
			),
			"accessibilityAndLanguage": objectProperty(
				"Language accessibility and areas needing clarification.",
				[]string{"jargon", "clarifications"},
				map[string]interface{}{
					"jargon":         stringProperty("Complex terms or legal language that may confuse the user."),
					"clarifications": stringProperty("Sections where further explanation is needed."),
				},
			),
			"redFlags": arrayProperty(
				"Potential risks or problematic clauses in the document.",
				objectProperty("", []string{"title", "explanation"}, map[string]interface{}{
					"title":       stringProperty("Potential risk or unfavorable clause title."),
					"explanation": stringProperty("Why this clause could negatively impact the user."),
				}),
			),
			"actionableQuestions": arrayProperty(
				"Questions the user could ask to clarify or negotiate terms.",
				map[string]interface{}{"type": "string"},
			),
			"additionalConsiderations": arrayProperty(
				"Additional considerations for the user to be aware of.",
				objectProperty("", []string{"title", "explanation"}, map[string]interface{}{
					"title":       stringProperty("A specific issue or point users should review carefully."),
					"explanation": stringProperty("Why this is important and how it could affect them."),
				}),
			),
			"disclaimer": stringProperty(
				"A statement informing users that this is AI-generated information and not a substitute for legal advice.",
			),
		},
		"required": []string{
			"summary",
			"parties",
			"paymentDetails",
			"durationAndTermination",
			"confidentialityAndPrivacy",
			"liabilityAndIndemnity",
			"disputeResolution",
			"warrantiesAndGuarantees",
			"forceMajeure",
			"intellectualProperty",
			"complianceAndRegulations",
			"amendmentsAndModifications",
			"assignmentAndTransfer",
			"insuranceRequirements",
			"signaturesAndWitnesses",
			"accessibilityAndLanguage",
			"redFlags",
			"actionableQuestions",
			"additionalConsiderations",
			"disclaimer",
		},
	}
}

func legalAnalysisGenerationConfig() *gemini.GenerationConfig {
	return &gemini.GenerationConfig{
		Temperature:      0.1,
		ResponseMimeType: "application/json",
		ResponseSchema:   legalAnalysisSchema(),
	}
}

func ragGenerationConfig() *gemini.GenerationConfig {
	return &gemini.GenerationConfig{
		Temperature:     0.3,
		MaxOutputTokens: 1000,
	}
}
