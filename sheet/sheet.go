// Package sheet renders Sudoku boards as printable PDF worksheets.
package sheet

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/santidefelice/cspkit/sudoku"
	"github.com/signintech/gopdf"
)

const (
	cellSize   = 48.0
	gridSize   = cellSize * 9
	marginTop  = 120.0
	titleSize  = 18.0
	digitSize  = 24.0
	lightWidth = 0.6
	heavyWidth = 2.0
)

// Page is one worksheet: a board plus its caption.
type Page struct {
	Title string
	Grid  sudoku.Grid
}

type Options struct {
	// FontPath points to a TTF file used for captions and digits. PDF has no
	// font of its own, so this is required.
	FontPath string
}

// Write renders one page per board into a PDF file.
func Write(pages []Page, saveAs string, options Options) error {
	if len(pages) == 0 {
		return fmt.Errorf("no boards to render")
	}

	if options.FontPath == "" {
		return fmt.Errorf("a TTF font file is required for PDF output")
	}
	if _, err := os.Stat(options.FontPath); err != nil {
		return fmt.Errorf("failed to access font file %s: %s", options.FontPath, err)
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	err := pdf.AddTTFFont("sheet", options.FontPath)
	if err != nil {
		return fmt.Errorf("failed to load font %s: %s", options.FontPath, err)
	}

	for _, page := range pages {
		pdf.AddPage()

		if err := drawPage(&pdf, page); err != nil {
			return err
		}
	}

	err = pdf.WritePdf(saveAs)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %s", saveAs, err)
	}

	log.Infof("output save as: %s", saveAs)

	return nil
}

func drawPage(pdf *gopdf.GoPdf, page Page) error {
	pageWidth := gopdf.PageSizeA4.W
	left := (pageWidth - gridSize) / 2

	if page.Title != "" {
		if err := pdf.SetFont("sheet", "", titleSize); err != nil {
			return fmt.Errorf("failed to select font: %s", err)
		}

		pdf.SetXY(left, marginTop-2*titleSize)
		if err := pdf.Cell(nil, page.Title); err != nil {
			return fmt.Errorf("failed to draw title: %s", err)
		}
	}

	// Cell grid with heavy box borders every third line.
	for i := 0; i <= 9; i++ {
		if i%3 == 0 {
			pdf.SetLineWidth(heavyWidth)
		} else {
			pdf.SetLineWidth(lightWidth)
		}

		offset := float64(i) * cellSize
		pdf.Line(left, marginTop+offset, left+gridSize, marginTop+offset)
		pdf.Line(left+offset, marginTop, left+offset, marginTop+gridSize)
	}

	if err := pdf.SetFont("sheet", "", digitSize); err != nil {
		return fmt.Errorf("failed to select font: %s", err)
	}

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			value := page.Grid[i][j]
			if value == 0 {
				continue
			}

			// Digit roughly centered in its cell.
			x := left + float64(j)*cellSize + cellSize/2 - digitSize/4
			y := marginTop + float64(i)*cellSize + cellSize/2 - digitSize/2

			pdf.SetXY(x, y)
			if err := pdf.Cell(nil, fmt.Sprintf("%d", value)); err != nil {
				return fmt.Errorf("failed to draw digit at (%d, %d): %s", i, j, err)
			}
		}
	}

	return nil
}
