package output

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/reglet-dev/attrkit/internal/application/dto"
	"github.com/reglet-dev/attrkit/internal/version"
)

// SARIFFormatter formats sheet reports as SARIF 2.1.0 JSON.
// Each attribute becomes a rule and each assignment a result, so rejected
// assignments show up as failures in code scanning tools.
type SARIFFormatter struct {
	writer io.Writer
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer) *SARIFFormatter {
	return &SARIFFormatter{writer: writer}
}

// unknownAttributeRuleID reports assignments to names the sheet does not
// declare.
const unknownAttributeRuleID = "unknown-attribute"

// Format writes the report as a SARIF log with a single run.
func (f *SARIFFormatter) Format(report *dto.SheetReport) error {
	return f.FormatAll([]*dto.SheetReport{report})
}

// FormatAll writes one SARIF log with a run per sheet.
func (f *SARIFFormatter) FormatAll(reports []*dto.SheetReport) error {
	sarifReport := sarif.NewReport()
	for _, report := range reports {
		sarifReport.AddRun(sheetRun(report))
	}

	if err := sarifReport.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}
	_, err := f.writer.Write([]byte("\n"))
	return err
}

func sheetRun(report *dto.SheetReport) *sarif.Run {
	run := sarif.NewRunWithInformationURI("attrkit", "https://github.com/reglet-dev/attrkit")
	toolVersion := version.Get().Version
	run.Tool.Driver.Version = &toolVersion

	declared := make(map[string]bool, len(report.Attributes))
	for _, attr := range report.Attributes {
		declared[attr.Name] = true
		run.Tool.Driver.AddRule(attributeRule(attr))
	}

	unknownRuleAdded := false
	for _, outcome := range report.Assignments {
		ruleID := outcome.Attribute
		if !declared[ruleID] {
			ruleID = unknownAttributeRuleID
			if !unknownRuleAdded {
				run.Tool.Driver.AddRule(unknownAttributeRule())
				unknownRuleAdded = true
			}
		}
		run.AddResult(assignmentResult(report, ruleID, outcome))
	}

	props := sarif.NewPropertyBag()
	props.Add("sheet", report.SheetName)
	props.Add("sheetVersion", report.SheetVersion)
	if report.Metadata.RequestID != "" {
		props.Add("requestId", report.Metadata.RequestID)
	}
	run.WithProperties(props)

	return run
}

func unknownAttributeRule() *sarif.ReportingDescriptor {
	desc := "Assignment to an attribute the sheet does not declare"
	return sarif.NewReportingDescriptor().
		WithID(unknownAttributeRuleID).
		WithName(unknownAttributeRuleID).
		WithShortDescription(&sarif.MultiformatMessageString{Text: &desc}).
		WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})
}

func attributeRule(attr dto.AttributeReport) *sarif.ReportingDescriptor {
	rule := sarif.NewReportingDescriptor().WithID(attr.Name)
	rule.WithName(attr.Name)

	desc := attr.Description
	if desc == "" {
		desc = attr.Name
	}
	rule.WithShortDescription(&sarif.MultiformatMessageString{
		Text: &desc,
	})
	rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
		Level: "error",
	})

	props := sarif.NewPropertyBag()
	props.Add("raw", attr.Raw)
	if attr.Derived != nil {
		props.Add("derived", *attr.Derived)
	}
	rule.WithProperties(props)

	return rule
}

func assignmentResult(report *dto.SheetReport, ruleID string, outcome dto.AssignmentOutcome) *sarif.Result {
	result := sarif.NewRuleResult(ruleID)

	if outcome.Applied {
		result.Level = "note"
		result.Kind = "pass"
		result.Message = sarif.NewTextMessage(fmt.Sprintf("%s set to %v", outcome.Attribute, outcome.Value))
	} else {
		result.Level = "error"
		result.Kind = "fail"
		result.Message = sarif.NewTextMessage(outcome.Error)
	}

	if report.SheetPath != "" {
		loc := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithURI(report.SheetPath)),
		)
		result.Locations = []*sarif.Location{loc}
	}

	props := sarif.NewPropertyBag()
	props.Add("attribute", outcome.Attribute)
	props.Add("value", outcome.Value)
	if outcome.Input != "" {
		props.Add("input", outcome.Input)
	}
	result.WithProperties(props)

	return result
}
