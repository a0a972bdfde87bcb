package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shotput/boxpacker/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
)

// ExportManifestPDF renders a packing slip: one page per parcel listing
// its items, dimensions, weight, and running subtotal against maxWeight,
// followed by a summary page. Parcels carry no item coordinates, so
// unlike a cut-layout diagram this is a table, not a drawing.
func ExportManifestPDF(path string, result model.PackResult, maxWeight float64) error {
	if len(result.Parcels) == 0 && result.LastParcel == nil {
		return fmt.Errorf("no parcels to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	// LastParcel, when present, replaces the final entry of Parcels with
	// a smaller box rather than adding a physical parcel to the
	// shipment, so the final page renders its downgraded box instead of
	// the original.
	total := len(result.Parcels)
	for i, parcel := range result.Parcels {
		box := result.Box
		if result.LastParcel != nil && i == total-1 {
			box = result.LastParcel.Box
			parcel = result.LastParcel.Parcel
		}
		pdf.AddPage()
		renderParcelPage(pdf, box, parcel, maxWeight, i+1, total)
	}
	if total == 0 && result.LastParcel != nil {
		pdf.AddPage()
		renderParcelPage(pdf, result.LastParcel.Box, result.LastParcel.Parcel, maxWeight, 1, 1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, maxWeight)

	return pdf.OutputFileAndClose(path)
}

func renderParcelPage(pdf *fpdf.Fpdf, box model.Box, parcel model.Parcel, maxWeight float64, index, total int) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8, fmt.Sprintf("Parcel %d of %d", index, total), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+9)
	dims := box.Interior
	boxLine := fmt.Sprintf("Box: %s (%.1f x %.1f x %.1f cm, tare %.0f g)", box.Name, dims[0], dims[1], dims[2], box.TareWeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, boxLine, "", 1, "L", false, 0, "")

	tableTop := marginTop + headerHeight + 8.0
	colWidths := []float64{70, 45, 35, 30}
	headers := []string{"Item", "Dimensions (cm)", "Weight (g)", "Subtotal (g)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, tableTop)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	rowY := tableTop + 6
	var subtotal float64
	for _, item := range parcel.Items {
		subtotal += item.Weight
		pdf.SetXY(marginLeft, rowY)
		pdf.CellFormat(colWidths[0], 6, item.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, fmt.Sprintf("%.1f x %.1f x %.1f", item.Dims[0], item.Dims[1], item.Dims[2]), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, fmt.Sprintf("%.0f", item.Weight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%.0f", subtotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
		rowY += 6
	}

	total := parcel.TotalWeight(box.TareWeight)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, rowY+4)
	status := "within limit"
	if total > maxWeight {
		status = "OVER LIMIT"
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 6,
		fmt.Sprintf("Total weight (items + tare): %.0f g / %.0f g max (%s)", total, maxWeight, status), "", 1, "L", false, 0, "")
}

func renderSummaryPage(pdf *fpdf.Fpdf, result model.PackResult, maxWeight float64) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8, "Shipment Summary", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(marginLeft, marginTop+9, pageWidth-marginRight, marginTop+9)

	parcelCount := len(result.Parcels)

	var totalItems int
	var totalWeight float64
	for i, p := range result.Parcels {
		if result.LastParcel != nil && i == len(result.Parcels)-1 {
			totalItems += len(result.LastParcel.Parcel.Items)
			totalWeight += result.LastParcel.Parcel.TotalWeight(result.LastParcel.Box.TareWeight)
			continue
		}
		totalItems += len(p.Items)
		totalWeight += p.TotalWeight(result.Box.TareWeight)
	}

	summaryItems := []struct{ label, value string }{
		{"Box Used", result.Box.Name},
		{"Total Parcels", fmt.Sprintf("%d", parcelCount)},
		{"Total Items Packed", fmt.Sprintf("%d", totalItems)},
		{"Total Shipment Weight", fmt.Sprintf("%.0f g", totalWeight)},
		{"Max Weight Per Parcel", fmt.Sprintf("%.0f g", maxWeight)},
	}
	if result.LastParcel != nil {
		summaryItems = append(summaryItems, struct{ label, value string }{"Last Parcel Downgraded To", result.LastParcel.Box.Name})
	}

	pdf.SetFont("Helvetica", "", 10)
	y := marginTop + 16
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(70, 6, item.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, item.value, "", 1, "L", false, 0, "")
		y += 6
	}
}
