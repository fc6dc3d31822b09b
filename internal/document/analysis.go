package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type Party struct {
	Role    string `json:"role"`
	Details string `json:"details"`
}

type PaymentDetails struct {
	Amount    string `json:"amount"`
	Penalties string `json:"penalties"`
	Refunds   string `json:"refunds"`
}

type DurationAndTermination struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Renewal     string `json:"renewal"`
	Termination string `json:"termination"`
}

type ConfidentialityAndPrivacy struct {
	DataHandling string `json:"dataHandling"`
	Restrictions string `json:"restrictions"`
}

type LiabilityAndIndemnity struct {
	Responsibility string `json:"responsibility"`
	Limits         string `json:"limits"`
}

type DisputeResolution struct {
	Process      string `json:"process"`
	Jurisdiction string `json:"jurisdiction"`
}

type WarrantiesAndGuarantees struct {
	Promises string `json:"promises"`
	Coverage string `json:"coverage"`
}

type ForceMajeure struct {
	Events string `json:"events"`
	Impact string `json:"impact"`
}

type IntellectualProperty struct {
	Ownership string `json:"ownership"`
	Usage     string `json:"usage"`
}

type ComplianceAndRegulations struct {
	Requirements string `json:"requirements"`
	Penalties    string `json:"penalties"`
}

type AmendmentsAndModifications struct {
	Process string `json:"process"`
	Consent string `json:"consent"`
}

type AssignmentAndTransfer struct {
	Conditions string `json:"conditions"`
}

type InsuranceRequirements struct {
	Coverage string `json:"coverage"`
}

type SignaturesAndWitnesses struct {
	Protocols string `json:"protocols"`
}

type AccessibilityAndLanguage struct {
	Jargon         string `json:"jargon"`
	Clarifications string `json:"clarifications"`
}

type Flag struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

// LegalAnalysis is the structured output of the legal analysis model call.
type LegalAnalysis struct {
	Summary                    string                     `json:"summary"`
	Parties                    []Party                    `json:"parties"`
	PaymentDetails             PaymentDetails             `json:"paymentDetails"`
	DurationAndTermination     DurationAndTermination     `json:"durationAndTermination"`
	ConfidentialityAndPrivacy  ConfidentialityAndPrivacy  `json:"confidentialityAndPrivacy"`
	LiabilityAndIndemnity      LiabilityAndIndemnity      `json:"liabilityAndIndemnity"`
	DisputeResolution          DisputeResolution          `json:"disputeResolution"`
	WarrantiesAndGuarantees    WarrantiesAndGuarantees    `json:"warrantiesAndGuarantees"`
	ForceMajeure               ForceMajeure               `json:"forceMajeure"`
	IntellectualProperty       IntellectualProperty       `json:"intellectualProperty"`
	ComplianceAndRegulations   ComplianceAndRegulations   `json:"complianceAndRegulations"`
	AmendmentsAndModifications AmendmentsAndModifications `json:"amendmentsAndModifications"`
	AssignmentAndTransfer      AssignmentAndTransfer      `json:"assignmentAndTransfer"`
	InsuranceRequirements      InsuranceRequirements      `json:"insuranceRequirements"`
	SignaturesAndWitnesses     SignaturesAndWitnesses     `json:"signaturesAndWitnesses"`
	AccessibilityAndLanguage   AccessibilityAndLanguage   `json:"accessibilityAndLanguage"`
	RedFlags                   []Flag                     `json:"redFlags"`
	ActionableQuestions        []string                   `json:"actionableQuestions"`
	AdditionalConsiderations   []Flag                     `json:"additionalConsiderations"`
	Disclaimer                 string                     `json:"disclaimer"`
}

// ParseLegalAnalysis unmarshals the model response. When the response carries
// text around the JSON object it falls back to the outermost {...} block.
func ParseLegalAnalysis(responseText string) (*LegalAnalysis, error) {
	var analysis LegalAnalysis
	if err := json.Unmarshal([]byte(responseText), &analysis); err == nil {
		return &analysis, nil
	}

	start := strings.Index(responseText, "{")
	end := strings.LastIndex(responseText, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("unable to parse model response as valid JSON")
	}

	if err := json.Unmarshal([]byte(responseText[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("unable to parse model response as valid JSON: %w", err)
	}

	return &analysis, nil
}

// BuildCombinedReport renders the extracted text and the analysis as one
// plain-text report. The report is what gets chunked and embedded, so answers
// can draw on both the raw document and the analysis.
func BuildCombinedReport(extractedText string, analysis *LegalAnalysis, originalFileName string, generatedAt time.Time) string {
	separator := "\n" + strings.Repeat("=", 80) + "\n"

	var report strings.Builder
	report.WriteString("LEGAL DOCUMENT ANALYSIS REPORT\n")
	report.WriteString(fmt.Sprintf("Generated on: %s\n", generatedAt.Format(time.RFC1123)))
	report.WriteString(fmt.Sprintf("Original Document: %s\n", originalFileName))
	report.WriteString(separator)

	report.WriteString("ORIGINAL DOCUMENT CONTENT\n")
	report.WriteString(separator)
	report.WriteString(extractedText)
	report.WriteString(separator)

	report.WriteString("AI LEGAL ANALYSIS\n")
	report.WriteString(separator)

	report.WriteString(fmt.Sprintf("SUMMARY:\n%s\n\n", analysis.Summary))

	if len(analysis.Parties) > 0 {
		report.WriteString("PARTIES INVOLVED:\n")
		for i, party := range analysis.Parties {
			report.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, party.Role, party.Details))
		}
		report.WriteString("\n")
	}

	report.WriteString("PAYMENT DETAILS:\n")
	report.WriteString(fmt.Sprintf("Amount: %s\n", analysis.PaymentDetails.Amount))
	report.WriteString(fmt.Sprintf("Penalties: %s\n", analysis.PaymentDetails.Penalties))
	report.WriteString(fmt.Sprintf("Refunds: %s\n\n", analysis.PaymentDetails.Refunds))

	report.WriteString("DURATION AND TERMINATION:\n")
	report.WriteString(fmt.Sprintf("Start Date: %s\n", analysis.DurationAndTermination.StartDate))
	report.WriteString(fmt.Sprintf("End Date: %s\n", analysis.DurationAndTermination.EndDate))
	report.WriteString(fmt.Sprintf("Renewal: %s\n", analysis.DurationAndTermination.Renewal))
	report.WriteString(fmt.Sprintf("Termination: %s\n\n", analysis.DurationAndTermination.Termination))

	report.WriteString("CONFIDENTIALITY AND PRIVACY:\n")
	report.WriteString(fmt.Sprintf("Data Handling: %s\n", analysis.ConfidentialityAndPrivacy.DataHandling))
	report.WriteString(fmt.Sprintf("Restrictions: %s\n\n", analysis.ConfidentialityAndPrivacy.Restrictions))

	report.WriteString("LIABILITY AND INDEMNITY:\n")
	report.WriteString(fmt.Sprintf("Responsibility: %s\n", analysis.LiabilityAndIndemnity.Responsibility))
	report.WriteString(fmt.Sprintf("Limits: %s\n\n", analysis.LiabilityAndIndemnity.Limits))

	report.WriteString("DISPUTE RESOLUTION:\n")
	report.WriteString(fmt.Sprintf("Process: %s\n", analysis.DisputeResolution.Process))
	report.WriteString(fmt.Sprintf("Jurisdiction: %s\n\n", analysis.DisputeResolution.Jurisdiction))

	report.WriteString("WARRANTIES AND GUARANTEES:\n")
	report.WriteString(fmt.Sprintf("Promises: %s\n", analysis.WarrantiesAndGuarantees.Promises))
	report.WriteString(fmt.Sprintf("Coverage: %s\n\n", analysis.WarrantiesAndGuarantees.Coverage))

	if len(analysis.RedFlags) > 0 {
		report.WriteString("RED FLAGS AND RISKS:\n")
		for i, flag := range analysis.RedFlags {
			report.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, flag.Title, flag.Explanation))
		}
		report.WriteString("\n")
	}

	if len(analysis.ActionableQuestions) > 0 {
		report.WriteString("ACTIONABLE QUESTIONS:\n")
		for i, question := range analysis.ActionableQuestions {
			report.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
		}
		report.WriteString("\n")
	}

	if len(analysis.AdditionalConsiderations) > 0 {
		report.WriteString("ADDITIONAL CONSIDERATIONS:\n")
		for i, consideration := range analysis.AdditionalConsiderations {
			report.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, consideration.Title, consideration.Explanation))
		}
		report.WriteString("\n")
	}

	report.WriteString(separator)
	report.WriteString(fmt.Sprintf("DISCLAIMER:\n%s\n", analysis.Disclaimer))

	return report.String()
}

// FlattenToFields maps the nested analysis onto the flattened string fields
// of file. Sub-sections are joined with " | " so a single field stays a
// readable one-liner.
func (a *LegalAnalysis) FlattenToFields(file *FileDocument) {
	file.Summary = a.Summary

	file.PartiesInvolved = make([]string, 0, len(a.Parties))
	for _, party := range a.Parties {
		file.PartiesInvolved = append(file.PartiesInvolved, fmt.Sprintf("%s: %s", party.Role, party.Details))
	}

	file.PaymentDetails = fmt.Sprintf(
		"%s | Penalties: %s | Refunds: %s",
		a.PaymentDetails.Amount, a.PaymentDetails.Penalties, a.PaymentDetails.Refunds,
	)
	file.DurationAndTermination = fmt.Sprintf(
		"Start: %s | End: %s | Renewal: %s | Termination: %s",
		a.DurationAndTermination.StartDate, a.DurationAndTermination.EndDate,
		a.DurationAndTermination.Renewal, a.DurationAndTermination.Termination,
	)
	file.ConfidentialityAndPrivacy = fmt.Sprintf(
		"Data Handling: %s | Restrictions: %s",
		a.ConfidentialityAndPrivacy.DataHandling, a.ConfidentialityAndPrivacy.Restrictions,
	)
	file.LiabilityAndIndemnity = fmt.Sprintf(
		"Responsibility: %s | Limits: %s",
		a.LiabilityAndIndemnity.Responsibility, a.LiabilityAndIndemnity.Limits,
	)
	file.DisputeResolution = fmt.Sprintf(
		"Process: %s | Jurisdiction: %s",
		a.DisputeResolution.Process, a.DisputeResolution.Jurisdiction,
	)
	file.WarrantiesAndGuarantees = fmt.Sprintf(
		"Promises: %s | Coverage: %s",
		a.WarrantiesAndGuarantees.Promises, a.WarrantiesAndGuarantees.Coverage,
	)
	file.ForceMajeure = fmt.Sprintf(
		"Events: %s | Impact: %s",
		a.ForceMajeure.Events, a.ForceMajeure.Impact,
	)
	file.IntellectualProperty = fmt.Sprintf(
		"Ownership: %s | Usage: %s",
		a.IntellectualProperty.Ownership, a.IntellectualProperty.Usage,
	)
	file.ComplianceAndRegulations = fmt.Sprintf(
		"Requirements: %s | Penalties: %s",
		a.ComplianceAndRegulations.Requirements, a.ComplianceAndRegulations.Penalties,
	)
	file.AmendmentsAndModifications = fmt.Sprintf(
		"Process: %s | Consent: %s",
		a.AmendmentsAndModifications.Process, a.AmendmentsAndModifications.Consent,
	)
	file.AssignmentAndTransfer = fmt.Sprintf("Conditions: %s", a.AssignmentAndTransfer.Conditions)
	file.InsuranceRequirements = fmt.Sprintf("Coverage: %s", a.InsuranceRequirements.Coverage)
	file.SignaturesAndWitnesses = fmt.Sprintf("Protocols: %s", a.SignaturesAndWitnesses.Protocols)
	file.AccessibilityAndLanguage = fmt.Sprintf(
		"Jargon: %s | Clarifications: %s",
		a.AccessibilityAndLanguage.Jargon, a.AccessibilityAndLanguage.Clarifications,
	)

	file.RedFlags = make([]string, 0, len(a.RedFlags))
	for _, flag := range a.RedFlags {
		file.RedFlags = append(file.RedFlags, fmt.Sprintf("%s: %s", flag.Title, flag.Explanation))
	}

	file.ActionableQuestions = a.ActionableQuestions

	file.AdditionalConsiderations = make([]string, 0, len(a.AdditionalConsiderations))
	for _, consideration := range a.AdditionalConsiderations {
		file.AdditionalConsiderations = append(
			file.AdditionalConsiderations,
			fmt.Sprintf("%s: %s", consideration.Title, consideration.Explanation),
		)
	}

	file.Disclaimer = a.Disclaimer
}
