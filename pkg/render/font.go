package render

import (
	"log/slog"
	"os"

	"github.com/go-pdf/fpdf"
)

// FontFamily is the name the CJK font registers under.
const FontFamily = "cnfont"

// fallbackFamily is a PDF core font used when no CJK font file is available.
// Chinese text may render incorrectly with it.
const fallbackFamily = "Helvetica"

// fontCandidates are tried in order: Windows fonts first, then common Linux
// CJK fonts. Only plain TTF files; collections (.ttc) cannot be embedded.
var fontCandidates = []string{
	`C:\Windows\Fonts\simhei.ttf`,
	`C:\Windows\Fonts\simfang.ttf`,
	`C:\Windows\Fonts\msyh.ttf`,
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttf",
}

// registerFont registers the first available CJK font with the document and
// returns the family name to draw with. An override path, when non-empty, is
// tried before the built-in candidates.
func registerFont(pdf *fpdf.Fpdf, override string) string {
	candidates := fontCandidates
	if override != "" {
		candidates = append([]string{override}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		pdf.AddUTF8Font(FontFamily, "", path)
		if pdf.Err() {
			slog.Warn("failed to register font", "path", path, "error", pdf.Error())
			pdf.ClearError()
			continue
		}
		slog.Debug("registered CJK font", "path", path)
		return FontFamily
	}

	slog.Warn("no CJK font file found, Chinese text may render incorrectly")
	return fallbackFamily
}
