package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column order is fixed; downstream spreadsheets key on it.
const csvHeader = "TrainingRecordEventId,TrainingEventId,StartDate,EndDate,Hours,Minutes,Evidence," +
	"ServiceProviderExternal,CostTrainingMaterials,CostTrainers,CostTrainingFacilities," +
	"ScholarshipsBursaries,CourseFees,Accommodation,Travel,Meal,AdministrationCosts," +
	"EquipmentDepreciation,TotalCosts,TotalDurationMinutes,EventType,TrainingEventName," +
	"Region,Province,Municipality,Site,PersonnelNumber,EmployeeFirstName,EmployeeLastName," +
	"EmployeeKnownName,EmployeeInitials,EmployeeRace,EmployeeGender,EmployeeDisability," +
	"EmployeeEELevel,EmployeeEECategory,EmployeeJobTitle,EmployeeJobGrade,EmployeeIDNumber," +
	"EmployeeSite,EmployeeHighestQualification,EmployeeNotes,NonEmployeeIDNumber"

const csvDateLayout = "2006-01-02 15:04:05"

// BuildCSV renders rows into the fixed-column report. Text fields are
// always quoted with embedded quotes doubled; dates, numbers, and
// booleans stay bare.
func BuildCSV(rows []TrainingReportRow) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\r\n")

	for _, row := range rows {
		cells := []string{
			strconv.Itoa(row.TrainingRecordEventID),
			strconv.Itoa(row.TrainingEventID),
			row.StartDate.Format(csvDateLayout),
			row.EndDate.Format(csvDateLayout),
			intCell(row.Hours),
			intCell(row.Minutes),
			boolCell(row.Evidence),
			textCell(row.ServiceProviderExternal),
			costCell(row.CostTrainingMaterials),
			costCell(row.CostTrainers),
			costCell(row.CostTrainingFacilities),
			costCell(row.ScholarshipsBursaries),
			costCell(row.CourseFees),
			costCell(row.Accommodation),
			costCell(row.Travel),
			costCell(row.Meal),
			costCell(row.AdministrationCosts),
			costCell(row.EquipmentDepreciation),
			fmt.Sprintf("%.2f", row.TotalCosts()),
			strconv.Itoa(row.TotalDurationMinutes()),
			textCell(row.EventType),
			textCell(row.TrainingEventName),
			textCell(row.Region),
			textCell(row.Province),
			textCell(row.Municipality),
			textCell(row.Site),
			textCell(row.PersonnelNumber),
			textCell(row.EmployeeFirstName),
			textCell(row.EmployeeLastName),
			textCell(row.EmployeeKnownName),
			textCell(row.EmployeeInitials),
			textCell(row.EmployeeRace),
			textCell(row.EmployeeGender),
			boolCell(row.EmployeeDisability),
			textCell(row.EmployeeEELevel),
			textCell(row.EmployeeEECategory),
			textCell(row.EmployeeJobTitle),
			textCell(row.EmployeeJobGrade),
			textCell(row.EmployeeIDNumber),
			textCell(row.EmployeeSite),
			textCell(row.EmployeeHighestQualification),
			textCell(row.EmployeeNotes),
			textCell(row.NonEmployeeIDNumber),
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\r\n")
	}

	return b.String()
}

// CSVFileName stamps the export so repeated downloads never collide.
func CSVFileName(now time.Time) string {
	return "training_records_" + now.Format("20060102_150405") + ".csv"
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func textCell(s *string) string {
	if s == nil {
		return `""`
	}
	return quote(*s)
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// Booleans keep the .NET casing the downstream spreadsheets expect.
func boolCell(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "True"
	}
	return "False"
}

func costCell(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}
