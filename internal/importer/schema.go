package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ScheduleImport is the top-level JSON structure for a schedule export:
// the approved estimate's line items plus any approved change orders.
type ScheduleImport struct {
	ProjectName  string              `json:"project_name"`
	Estimate     []LineItemImport    `json:"estimate"`
	ChangeOrders []ChangeOrderImport `json:"change_orders,omitempty"`
}

// ChangeOrderImport groups the line items of one approved change order.
type ChangeOrderImport struct {
	Number    string           `json:"number"`
	LineItems []LineItemImport `json:"line_items"`
}

// LineItemImport is one schedulable line item.
type LineItemImport struct {
	Ref       string   `json:"ref"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Progress  *int     `json:"progress,omitempty"`
	PayeeID   string   `json:"payee_id,omitempty"`
	PayeeName string   `json:"payee_name,omitempty"`
	DependsOn []string `json:"depends_on,omitempty"`
}

// LoadScheduleImport reads and decodes a schedule export file.
func LoadScheduleImport(path string) (*ScheduleImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema ScheduleImport
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
