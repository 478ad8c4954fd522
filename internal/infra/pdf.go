package infra

// pdf.go — Operations report generation using go-pdf/fpdf.
// Produces an A4 report for a recalada: ship and arrival header, then one
// table per atencion listing its numbered turnos with state, assigned guide
// and check-in/out times. Written to storagePath/recalada_{codigo}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateRecaladaPDF renders the operations report for a recalada with its
// atenciones preloaded (including turnos). Returns the path of the file.
func GenerateRecaladaPDF(rec *model.Recalada, guiaEmails map[string]string, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := filepath.Join(storagePath, fmt.Sprintf("recalada_%s.pdf", rec.Codigo))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Reporte de Operaciones", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Recalada %s", rec.Codigo), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 9)
	if rec.Buque != nil {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Buque: %s (%s)  Capacidad: %d",
			rec.Buque.Nombre, rec.Buque.Naviera, rec.Buque.Capacidad), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Arribo programado: %s   Zarpe programado: %s",
		rec.FechaArriboProgramada.Format("02/01/2006 15:04"),
		rec.FechaZarpeProgramada.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Estado: %s", rec.Estado), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── One block per atencion ───────────────────────────────────────────────
	colNum := contentW * 0.10
	colEstado := contentW * 0.22
	colGuia := contentW * 0.40
	colHoras := contentW * 0.28

	for i, at := range rec.Atenciones {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 7, fmt.Sprintf("Atencion %d — %s a %s (%d turnos, %s)",
			i+1,
			at.FechaInicio.Format("02/01 15:04"),
			at.FechaFin.Format("15:04"),
			at.TurnosTotal, at.Estado), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(colNum, 5, "Turno", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colEstado, 5, "Estado", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colGuia, 5, "Guia", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colHoras, 5, "Check-in / Check-out", "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		for _, t := range rec.Atenciones[i].Turnos {
			guia := "-"
			if t.GuiaID != nil {
				if correo, ok := guiaEmails[t.GuiaID.String()]; ok {
					guia = correo
				} else {
					guia = t.GuiaID.String()
				}
			}
			horas := "-"
			if t.CheckInAt != nil {
				horas = t.CheckInAt.Format("15:04")
				if t.CheckOutAt != nil {
					horas += " / " + t.CheckOutAt.Format("15:04")
				}
			}
			pdf.CellFormat(colNum, 5, fmt.Sprintf("%d", t.Numero), "", 0, "L", false, 0, "")
			pdf.CellFormat(colEstado, 5, t.Estado, "", 0, "L", false, 0, "")
			pdf.CellFormat(colGuia, 5, guia, "", 0, "L", false, 0, "")
			pdf.CellFormat(colHoras, 5, horas, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
