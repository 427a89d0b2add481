package registrations

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"ID", "Время", "Фамилия", "Имя", "Отчество", "Учебное заведение",
	"Страна", "Город", "E-mail", "Телефон", "Мероприятие", "Баллы", "Награда",
}

// ExportRegistrationsExcel Export registrations as XLSX
// @Summary Export registrations to Excel
// @Description Download all registrations with their latest test results as an XLSX workbook. Admin surface, unauthenticated (documented limitation).
// @Tags Registrations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /registrations/export [get]
func ExportRegistrationsExcel(c *gin.Context) {
	registrations, err := svc.ListRegistrations()
	if err != nil {
		log.Printf("Error fetching registrations for export: %v", err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchRegistrations)
		return
	}
	if len(registrations) == 0 {
		respondWithError(c, http.StatusBadRequest, ErrNoDataToExport)
		return
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	const sheet = "Участники"
	xlsx.SetSheetName("Sheet1", sheet)
	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(sheet, cell, header)
	}

	for i, reg := range registrations {
		score, award := "", ""
		if len(reg.Results) > 0 {
			latest := reg.Results[len(reg.Results)-1]
			score = fmt.Sprintf("%d/%d", latest.Score, latest.TotalQuestions)
			award = latest.AwardTier
		}
		row := []interface{}{
			reg.ID, reg.CreatedAt.Format(time.RFC3339), reg.Surname, reg.Name,
			reg.Patronymic, reg.Organization, reg.Country, reg.City,
			reg.Email, reg.Phone, reg.EventID, score, award,
		}
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			xlsx.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="registrations.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xlsx.Write(c.Writer); err != nil {
		log.Printf("Error writing XLSX export: %v", err)
	}
}
