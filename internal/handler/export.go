package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/manoranjan-programmer/fiesta-ignitron/internal/models"
	"github.com/manoranjan-programmer/fiesta-ignitron/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX downloads the authenticated user's submission history as a
// spreadsheet, newest first.
func (h *TeamHandler) ExportXLSX(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "")
		return
	}

	var teams []models.Team
	if err := h.DB.WithContext(c.Request.Context()).
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&teams).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	f := excelize.NewFile()
	sheetName := "Submissions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Team", "Bids", "Datasets", "Credits", "Score", "Submitted"}
	for i, head := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, t := range teams {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.TeamName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), strings.Join(t.Bids, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), strings.Join(t.SelectedData, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Credits)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Score)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.CreatedAt.Format("2006-01-02 15:04"))
	}

	_ = f.SetColWidth(sheetName, "A", "C", 28)
	_ = f.SetColWidth(sheetName, "D", "F", 14)

	c.Header("Content-Disposition", `attachment; filename="team-submissions.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		// headers are already out; nothing sane to send at this point
		return
	}
}
