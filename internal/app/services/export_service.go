package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// ErrExportGenerateFail is returned when the workbook cannot be rendered
var ErrExportGenerateFail = errors.New("failed to generate Excel file")

// Sheet names of the complaint export workbook
const (
	ComplaintsSheet = "Complaints"
	SummarySheet    = "Summary"
)

// ComplaintExportHeaders is the header row of the complaints sheet
var ComplaintExportHeaders = []string{
	"ID", "Student", "Roll Number", "Branch", "Complaint Type", "Location",
	"Specific Item", "Problem Description", "Suggestions", "Status",
	"Teacher Approved", "Approval Note", "Created At", "Updated At",
}

// ExportService renders admin complaint listings as spreadsheets
type ExportService interface {
	// ExportComplaints returns an .xlsx workbook of the complaints matching
	// filter and a suggested file name.
	ExportComplaints(ctx context.Context, filter repositories.ComplaintFilter) (*bytes.Buffer, string, error)
}

type exportServiceImpl struct {
	complaints repositories.IComplaintRepository
	now        func() time.Time
	logger     zerolog.Logger
}

// NewExportService creates a new export service instance
func NewExportService(complaints repositories.IComplaintRepository, logger zerolog.Logger) ExportService {
	return &exportServiceImpl{
		complaints: complaints,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *exportServiceImpl) ExportComplaints(ctx context.Context, filter repositories.ComplaintFilter) (*bytes.Buffer, string, error) {
	list, err := s.complaints.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ComplaintsSheet); err != nil {
		s.logger.Error().Err(err).Msg("Failed to rename export sheet")
		return nil, "", ErrExportGenerateFail
	}
	if err := writeComplaintRows(f, list); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write complaint rows")
		return nil, "", ErrExportGenerateFail
	}
	if err := writeStatusSummary(f, list); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write export summary")
		return nil, "", ErrExportGenerateFail
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write Excel workbook")
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("complaints_%s.xlsx", s.now().UTC().Format("20060102_150405"))
	s.logger.Info().Int("rows", len(list)).Str("filename", filename).Msg("Complaints exported")
	return buf, filename, nil
}

func writeComplaintRows(f *excelize.File, list []*models.Complaint) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(ComplaintsSheet, "A1", &ComplaintExportHeaders); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(ComplaintExportHeaders))
	if err := f.SetCellStyle(ComplaintsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, c := range list {
		approved := "No"
		if c.TeacherApproved {
			approved = "Yes"
		}
		row := []interface{}{
			c.ID,
			c.Name,
			c.RollNumber,
			c.Branch,
			c.ComplaintType,
			c.Location,
			helpers.StringValue(c.SpecificItem),
			c.ProblemDescription,
			helpers.StringValue(c.Suggestions),
			string(c.Status),
			approved,
			helpers.StringValue(c.ApprovalNote),
			helpers.FormatTimestamp(c.CreatedAt),
			helpers.StringValue(helpers.FormatOptionalTimestamp(c.UpdatedAt)),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ComplaintsSheet, cell, &row); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 8, "B": 22, "C": 14, "D": 10, "E": 18, "F": 16, "H": 48, "I": 32, "J": 12, "L": 32, "M": 20, "N": 20}
	for col, w := range widths {
		if err := f.SetColWidth(ComplaintsSheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// writeStatusSummary adds a per-status count of the exported rows
func writeStatusSummary(f *excelize.File, list []*models.Complaint) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	counts := make(map[models.ComplaintStatus]int, len(models.AllStatuses))
	for _, c := range list {
		counts[c.Status]++
	}

	if err := f.SetSheetRow(SummarySheet, "A1", &[]interface{}{"Status", "Count"}); err != nil {
		return err
	}
	for i, status := range models.AllStatuses {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SummarySheet, cell, &[]interface{}{string(status), counts[status]}); err != nil {
			return err
		}
	}
	totalCell, _ := excelize.CoordinatesToCellName(1, len(models.AllStatuses)+2)
	return f.SetSheetRow(SummarySheet, totalCell, &[]interface{}{"Total", len(list)})
}
