package domain

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type CostCategory string

const (
	CategoryLabor         CostCategory = "labor"
	CategorySubcontractor CostCategory = "subcontractor"
	CategoryMaterial      CostCategory = "material"
	CategoryEquipment     CostCategory = "equipment"
	CategoryPermits       CostCategory = "permits"
	CategoryOther         CostCategory = "other"
)

// ValidCostCategories is the canonical set of accepted category strings.
var ValidCostCategories = map[string]bool{
	"labor": true, "subcontractor": true, "material": true,
	"equipment": true, "permits": true, "other": true,
}

// TaskSource records which approved source table a task was materialized from.
type TaskSource string

const (
	SourceEstimate    TaskSource = "estimate"
	SourceChangeOrder TaskSource = "change_order"
)

// ValidTaskSources is the canonical set of accepted source strings.
var ValidTaskSources = map[string]bool{
	"estimate": true, "change_order": true,
}
