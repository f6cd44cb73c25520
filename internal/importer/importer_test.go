package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validImport() *ScheduleImport {
	return &ScheduleImport{
		ProjectName: "Maple St remodel",
		Estimate: []LineItemImport{
			{Ref: "est-1", Name: "Foundation pour", Category: "subcontractor",
				Start: "2026-03-01", End: "2026-03-07",
				PayeeID: "sub-9", PayeeName: "Hardline Concrete"},
			{Ref: "est-2", Name: "Framing walls", Category: "labor",
				Start: "2026-03-08", End: "2026-03-20",
				Progress: intPtr(10), DependsOn: []string{"est-1"}},
		},
		ChangeOrders: []ChangeOrderImport{
			{Number: "CO-1", LineItems: []LineItemImport{
				{Ref: "co1-1", Name: "Upgrade windows", Category: "material",
					Start: "2026-03-21", End: "2026-03-23",
					DependsOn: []string{"est-2"}},
			}},
		},
	}
}

func TestLoadScheduleImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.json")
	data := `{
		"project_name": "Maple St remodel",
		"estimate": [
			{"ref": "est-1", "name": "Foundation pour", "category": "labor",
			 "start": "2026-03-01", "end": "2026-03-07"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	schema, err := LoadScheduleImport(path)
	require.NoError(t, err)
	assert.Equal(t, "Maple St remodel", schema.ProjectName)
	require.Len(t, schema.Estimate, 1)
	assert.Equal(t, "est-1", schema.Estimate[0].Ref)
}

func TestLoadScheduleImport_MissingFile(t *testing.T) {
	_, err := LoadScheduleImport(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadScheduleImport_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := LoadScheduleImport(path)
	assert.Error(t, err)
}

func TestValidateScheduleImport_Valid(t *testing.T) {
	assert.Empty(t, ValidateScheduleImport(validImport()))
}

func TestValidateScheduleImport_CollectsAllErrors(t *testing.T) {
	schema := &ScheduleImport{
		Estimate: []LineItemImport{
			{Ref: "", Name: "", Category: "gold", Start: "bad-date", End: "",
				Progress: intPtr(150)},
		},
	}
	errs := ValidateScheduleImport(schema)
	// project_name, ref, name, category, start parse, end, progress
	assert.GreaterOrEqual(t, len(errs), 6)

	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	joined := ""
	for _, m := range messages {
		joined += m + "\n"
	}
	assert.Contains(t, joined, "project_name is required")
	assert.Contains(t, joined, "ref is required")
	assert.Contains(t, joined, "invalid category")
	assert.Contains(t, joined, "outside 0-100")
}

func TestValidateScheduleImport_DuplicateRef(t *testing.T) {
	schema := validImport()
	schema.ChangeOrders[0].LineItems[0].Ref = "est-1"
	errs := ValidateScheduleImport(schema)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), `duplicate ref "est-1"`)
}

func TestValidateScheduleImport_DanglingDependsOn(t *testing.T) {
	schema := validImport()
	schema.Estimate[1].DependsOn = []string{"no-such-ref"}
	errs := ValidateScheduleImport(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `depends_on "no-such-ref"`)
}

func TestValidateScheduleImport_SelfDependency(t *testing.T) {
	schema := validImport()
	schema.Estimate[0].DependsOn = []string{"est-1"}
	errs := ValidateScheduleImport(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "depends on itself")
}

func TestValidateScheduleImport_StartAfterEnd(t *testing.T) {
	schema := validImport()
	schema.Estimate[0].Start = "2026-03-10"
	schema.Estimate[0].End = "2026-03-01"
	errs := ValidateScheduleImport(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "is after end")
}

func TestValidateScheduleImport_MissingChangeOrderNumber(t *testing.T) {
	schema := validImport()
	schema.ChangeOrders[0].Number = ""
	errs := ValidateScheduleImport(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "number is required")
}

func TestConvert(t *testing.T) {
	gen, err := Convert(validImport())
	require.NoError(t, err)
	require.Len(t, gen.Tasks, 3)

	byRef := make(map[string]domain.Task)
	for _, task := range gen.Tasks {
		byRef[task.SourceLineID] = task
	}

	foundation := byRef["est-1"]
	assert.NotEmpty(t, foundation.ID)
	assert.Equal(t, "Foundation pour", foundation.Name)
	assert.Equal(t, domain.CategorySubcontractor, foundation.Category)
	assert.Equal(t, domain.SourceEstimate, foundation.Source)
	assert.Equal(t, "Hardline Concrete", foundation.PayeeName)
	assert.False(t, foundation.IsChangeOrder)

	framing := byRef["est-2"]
	assert.Equal(t, 10, framing.Progress)
	require.Len(t, framing.Dependencies, 1)
	assert.Equal(t, foundation.ID, framing.Dependencies[0].ID,
		"depends_on refs are rewritten to generated ids")
	assert.Equal(t, "Foundation pour", framing.Dependencies[0].Name)

	co := byRef["co1-1"]
	assert.True(t, co.IsChangeOrder)
	assert.Equal(t, "CO-1", co.ChangeOrderNumber)
	assert.Equal(t, domain.SourceChangeOrder, co.Source)
	require.Len(t, co.Dependencies, 1)
	assert.Equal(t, framing.ID, co.Dependencies[0].ID)
}

func TestConvert_DefaultsEmptyCategory(t *testing.T) {
	schema := &ScheduleImport{
		ProjectName: "p",
		Estimate: []LineItemImport{
			{Ref: "a", Name: "Misc", Start: "2026-03-01", End: "2026-03-02"},
		},
	}
	gen, err := Convert(schema)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, gen.Tasks[0].Category)
	assert.Equal(t, 0, gen.Tasks[0].Progress)
}
