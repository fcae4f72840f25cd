package xlsexport

import (
	"bytes"
	"fmt"

	dbmodels "connect-skills-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.Evaluation) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Candidate", "Contacts", "City", "Vacancy", "Applied", "Score", "Video status", "Feedback"}

func (i impl) ExportApplicationList(list []dbmodels.Evaluation) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build xlsx header")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Applications")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Evaluation, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Candidate"
		col := 1
		if item.Candidate != nil {
			name := fmt.Sprintf("%v %v", item.Candidate.FirstName, item.Candidate.LastName)
			if err := writeColumn(f, sheet, col, row, name); err != nil {
				return row, err
			}
		}

		// "Contacts"
		col++
		if item.Candidate != nil {
			if err := writeColumn(f, sheet, col, row, item.Candidate.Phone); err != nil {
				return row, err
			}
		}

		// "City"
		col++
		if item.Candidate != nil {
			if err := writeColumn(f, sheet, col, row, item.Candidate.City); err != nil {
				return row, err
			}
		}

		// "Vacancy"
		col++
		if item.Vacancy != nil {
			if err := writeColumn(f, sheet, col, row, item.Vacancy.Title); err != nil {
				return row, err
			}
		}

		// "Applied"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Score"
		col++
		if err := writeColumn(f, sheet, col, row, item.Score); err != nil {
			return row, err
		}

		// "Video status"
		col++
		if item.Breakdown.Video != nil {
			if err := writeColumn(f, sheet, col, row, item.Breakdown.Video.Status); err != nil {
				return row, err
			}
		}

		// "Feedback"
		col++
		if item.Breakdown.Feedback != nil {
			if err := writeColumn(f, sheet, col, row, item.Breakdown.Feedback.Status); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
