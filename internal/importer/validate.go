package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sitewise/internal/domain"
)

// ValidateScheduleImport checks a schedule export for errors before
// conversion. Returns every validation error found, not just the first.
func ValidateScheduleImport(schema *ScheduleImport) []error {
	var errs []error

	if schema.ProjectName == "" {
		errs = append(errs, fmt.Errorf("project_name is required"))
	}
	if len(schema.Estimate) == 0 && len(schema.ChangeOrders) == 0 {
		errs = append(errs, fmt.Errorf("import contains no line items"))
	}

	refs := make(map[string]bool)
	collect := func(prefix string, items []LineItemImport) {
		for i, item := range items {
			where := fmt.Sprintf("%s[%d]", prefix, i)
			if item.Ref == "" {
				errs = append(errs, fmt.Errorf("%s: ref is required", where))
			} else if refs[item.Ref] {
				errs = append(errs, fmt.Errorf("%s: duplicate ref %q", where, item.Ref))
			} else {
				refs[item.Ref] = true
			}
			if item.Name == "" {
				errs = append(errs, fmt.Errorf("%s: name is required", where))
			}
			if item.Category != "" && !domain.ValidCostCategories[item.Category] {
				errs = append(errs, fmt.Errorf("%s: invalid category %q", where, item.Category))
			}
			errs = append(errs, validateItemDates(where, item)...)
			if item.Progress != nil && (*item.Progress < 0 || *item.Progress > 100) {
				errs = append(errs, fmt.Errorf("%s: progress %d is outside 0-100", where, *item.Progress))
			}
		}
	}

	collect("estimate", schema.Estimate)
	for i, co := range schema.ChangeOrders {
		if co.Number == "" {
			errs = append(errs, fmt.Errorf("change_orders[%d]: number is required", i))
		}
		collect(fmt.Sprintf("change_orders[%d].line_items", i), co.LineItems)
	}

	// Dependency refs must resolve within the import. Dangling refs against
	// the live schedule are a warning-time concern, but an import file is a
	// closed set.
	checkDeps := func(prefix string, items []LineItemImport) {
		for i, item := range items {
			for _, dep := range item.DependsOn {
				if !refs[dep] {
					errs = append(errs, fmt.Errorf("%s[%d]: depends_on %q does not match any ref", prefix, i, dep))
				}
				if dep == item.Ref {
					errs = append(errs, fmt.Errorf("%s[%d]: item depends on itself", prefix, i))
				}
			}
		}
	}
	checkDeps("estimate", schema.Estimate)
	for i, co := range schema.ChangeOrders {
		checkDeps(fmt.Sprintf("change_orders[%d].line_items", i), co.LineItems)
	}

	return errs
}

func validateItemDates(where string, item LineItemImport) []error {
	var errs []error
	var start, end time.Time

	if item.Start == "" {
		errs = append(errs, fmt.Errorf("%s: start is required", where))
	} else {
		t, err := domain.ParseDate(where+".start", item.Start)
		if err != nil {
			errs = append(errs, err)
		} else {
			start = t
		}
	}
	if item.End == "" {
		errs = append(errs, fmt.Errorf("%s: end is required", where))
	} else {
		t, err := domain.ParseDate(where+".end", item.End)
		if err != nil {
			errs = append(errs, err)
		} else {
			end = t
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		errs = append(errs, fmt.Errorf("%s: start %s is after end %s", where, item.Start, item.End))
	}
	return errs
}
