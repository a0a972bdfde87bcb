package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/shotput/boxpacker/internal/model"
)

// ParcelLabelInfo holds the data encoded into each parcel label's QR code.
type ParcelLabelInfo struct {
	ParcelIndex int     `json:"parcel_index"`
	BoxName     string  `json:"box_name"`
	ItemCount   int     `json:"item_count"`
	TotalWeight float64 `json:"total_weight_g"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// ExportParcelLabels generates a PDF of QR-coded labels, one per parcel,
// encoding the box name, item count, and total weight. Laid out on a
// standard label sheet (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportParcelLabels(path string, result model.PackResult) error {
	labels := collectParcelLabels(result)
	if len(labels) == 0 {
		return fmt.Errorf("no parcels to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderParcelLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for parcel %d: %w", label.ParcelIndex, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// collectParcelLabels builds one label per physical parcel. LastParcel, when
// present, describes the final parcel shipped in a smaller box rather than
// an additional parcel, so it replaces that entry instead of appending one.
func collectParcelLabels(result model.PackResult) []ParcelLabelInfo {
	var labels []ParcelLabelInfo
	total := len(result.Parcels)
	for i, p := range result.Parcels {
		box, parcel := result.Box, p
		if result.LastParcel != nil && i == total-1 {
			box, parcel = result.LastParcel.Box, result.LastParcel.Parcel
		}
		labels = append(labels, ParcelLabelInfo{
			ParcelIndex: i + 1,
			BoxName:     box.Name,
			ItemCount:   len(parcel.Items),
			TotalWeight: parcel.TotalWeight(box.TareWeight),
		})
	}
	if total == 0 && result.LastParcel != nil {
		labels = append(labels, ParcelLabelInfo{
			ParcelIndex: 1,
			BoxName:     result.LastParcel.Box.Name,
			ItemCount:   len(result.LastParcel.Parcel.Items),
			TotalWeight: result.LastParcel.Parcel.TotalWeight(result.LastParcel.Box.TareWeight),
		})
	}
	return labels
}

func renderParcelLabel(pdf *fpdf.Fpdf, x, y float64, info ParcelLabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_parcel_%d", info.ParcelIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Parcel %d", info.ParcelIndex), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, info.BoxName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	details := fmt.Sprintf("%d items, %.0f g", info.ItemCount, info.TotalWeight)
	pdf.CellFormat(textW, 3, details, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)

	return nil
}
