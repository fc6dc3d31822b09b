//go:build unit

package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegalAnalysis(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		analysis, err := ParseLegalAnalysis(testAnalysisJson)

		require.NoError(t, err)
		assert.Equal(t, "A service agreement between two parties.", analysis.Summary)
		assert.Equal(t, "30 days notice", analysis.DurationAndTermination.Termination)
		require.Len(t, analysis.RedFlags, 1)
		assert.Equal(t, "Auto-renewal", analysis.RedFlags[0].Title)
	})

	t.Run("when json is wrapped in surrounding text should still parse", func(t *testing.T) {
		wrapped := "Here is the analysis you asked for:\n```json\n" + testAnalysisJson + "\n```\nLet me know if you need more."

		analysis, err := ParseLegalAnalysis(wrapped)

		require.NoError(t, err)
		assert.Equal(t, "A service agreement between two parties.", analysis.Summary)
	})

	t.Run("when response contains no json should return error", func(t *testing.T) {
		analysis, err := ParseLegalAnalysis("I cannot analyze this document.")

		assert.Nil(t, analysis)
		assert.ErrorContains(t, err, "unable to parse model response as valid JSON")
	})

	t.Run("when braces wrap malformed json should return error", func(t *testing.T) {
		analysis, err := ParseLegalAnalysis("{summary: unquoted}")

		assert.Nil(t, analysis)
		assert.ErrorContains(t, err, "unable to parse model response as valid JSON")
	})
}

func TestLegalAnalysis_FlattenToFields(t *testing.T) {
	analysis, err := ParseLegalAnalysis(testAnalysisJson)
	require.NoError(t, err)

	var file FileDocument
	analysis.FlattenToFields(&file)

	assert.Equal(t, "A service agreement between two parties.", file.Summary)
	assert.Equal(t, []string{"Provider: Delivers the service."}, file.PartiesInvolved)
	assert.Equal(t, "100 USD monthly | Penalties: 5% late fee | Refunds: None", file.PaymentDetails)
	assert.Equal(
		t,
		"Start: 2024-01-01 | End: 2025-01-01 | Renewal: Automatic | Termination: 30 days notice",
		file.DurationAndTermination,
	)
	assert.Equal(t, "Data Handling: Encrypted | Restrictions: No sharing", file.ConfidentialityAndPrivacy)
	assert.Equal(t, "Conditions: Not without consent", file.AssignmentAndTransfer)
	assert.Equal(t, []string{"Auto-renewal: Renews without notice."}, file.RedFlags)
	assert.Equal(t, []string{"Can the notice period be extended?"}, file.ActionableQuestions)
	assert.Equal(t, []string{"Insurance: Not covered."}, file.AdditionalConsiderations)
	assert.Equal(t, "This is AI-generated information, not legal advice.", file.Disclaimer)
}

func TestBuildCombinedReport(t *testing.T) {
	analysis, err := ParseLegalAnalysis(testAnalysisJson)
	require.NoError(t, err)

	generatedAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	report := BuildCombinedReport("The raw contract text.", analysis, TestFileName, generatedAt)

	assert.Contains(t, report, "LEGAL DOCUMENT ANALYSIS REPORT")
	assert.Contains(t, report, "Original Document: "+TestFileName)
	assert.Contains(t, report, "ORIGINAL DOCUMENT CONTENT")
	assert.Contains(t, report, "The raw contract text.")
	assert.Contains(t, report, "AI LEGAL ANALYSIS")
	assert.Contains(t, report, "SUMMARY:\nA service agreement between two parties.")
	assert.Contains(t, report, "1. Provider: Delivers the service.")
	assert.Contains(t, report, "RED FLAGS AND RISKS:\n1. Auto-renewal: Renews without notice.")
	assert.Contains(t, report, "ACTIONABLE QUESTIONS:\n1. Can the notice period be extended?")
	assert.Contains(t, report, "DISCLAIMER:\nThis is AI-generated information, not legal advice.")
}
