package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/sitewise/internal/db"
	"github.com/alexanderramin/sitewise/internal/importer"
	"github.com/alexanderramin/sitewise/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportSchedule(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadScheduleImport(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}

	if errs := importer.ValidateScheduleImport(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import: %w", err)
	}

	result := &ImportResult{ProjectName: schema.ProjectName}

	// All rows commit or none do: a half-imported schedule would produce
	// misleading warnings.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		taskRepo := repository.NewSQLiteTaskRepo(tx)
		depRepo := repository.NewSQLiteDependencyRepo(tx)

		for i := range generated.Tasks {
			t := &generated.Tasks[i]
			if err := taskRepo.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Name, err)
			}
			result.TaskCount++
			for _, ref := range t.Dependencies {
				if err := depRepo.Create(ctx, t.ID, ref); err != nil {
					return fmt.Errorf("creating dependency %q -> %q: %w", t.Name, ref.Name, err)
				}
				result.DependencyCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// formatValidationErrors flattens accumulated validation errors into a
// single error listing every problem.
func formatValidationErrors(errs []error) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("import validation failed with %d error(s):", len(errs)))
	for _, err := range errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return fmt.Errorf("%s", b.String())
}
