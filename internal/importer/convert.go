package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sitewise/internal/domain"
	"github.com/google/uuid"
)

// Generated holds the domain records produced from a validated import.
type Generated struct {
	Tasks []domain.Task
}

// Convert materializes tasks from a validated schedule export. Each line
// item becomes one task; refs are rewritten to generated task ids, including
// inside dependency lists.
func Convert(schema *ScheduleImport) (*Generated, error) {
	now := time.Now().UTC()

	idByRef := make(map[string]string)
	nameByRef := make(map[string]string)
	assign := func(items []LineItemImport) {
		for _, item := range items {
			idByRef[item.Ref] = uuid.New().String()
			nameByRef[item.Ref] = item.Name
		}
	}
	assign(schema.Estimate)
	for _, co := range schema.ChangeOrders {
		assign(co.LineItems)
	}

	var gen Generated
	build := func(items []LineItemImport, source domain.TaskSource, coNumber string) error {
		for _, item := range items {
			start, err := domain.ParseDate(item.Ref+".start", item.Start)
			if err != nil {
				return err
			}
			end, err := domain.ParseDate(item.Ref+".end", item.End)
			if err != nil {
				return err
			}

			category := domain.CostCategory(item.Category)
			if item.Category == "" {
				category = domain.CategoryOther
			}
			progress := 0
			if item.Progress != nil {
				progress = *item.Progress
			}

			task := domain.Task{
				ID:                idByRef[item.Ref],
				Name:              item.Name,
				Category:          category,
				Start:             start,
				End:               end,
				Progress:          progress,
				IsChangeOrder:     source == domain.SourceChangeOrder,
				ChangeOrderNumber: coNumber,
				PayeeID:           item.PayeeID,
				PayeeName:         item.PayeeName,
				Source:            source,
				SourceLineID:      item.Ref,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			for _, dep := range item.DependsOn {
				id, ok := idByRef[dep]
				if !ok {
					return fmt.Errorf("%s: depends_on %q does not match any ref", item.Ref, dep)
				}
				task.Dependencies = append(task.Dependencies, domain.TaskRef{
					ID:   id,
					Name: nameByRef[dep],
				})
			}
			gen.Tasks = append(gen.Tasks, task)
		}
		return nil
	}

	if err := build(schema.Estimate, domain.SourceEstimate, ""); err != nil {
		return nil, err
	}
	for _, co := range schema.ChangeOrders {
		if err := build(co.LineItems, domain.SourceChangeOrder, co.Number); err != nil {
			return nil, err
		}
	}
	return &gen, nil
}
