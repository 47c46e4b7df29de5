package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

// Formats accepted by Render. FormatMD is an alias clients use for markdown.
const (
	FormatMarkdown = "markdown"
	FormatMD       = "md"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// ErrUnsupportedFormat is returned for any format outside the supported set.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// supportedFormats feeds error messages; the md alias is deliberately not
// advertised.
var supportedFormats = []string{FormatMarkdown, FormatCSV, FormatJSON}

const (
	exportTimeLayout   = "2006-01-02 15:04"
	filenameDateLayout = "20060102"
)

// Document is a rendered study plan ready to be sent as a download.
type Document struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Render produces the export document for an aggregated plan. The timestamp
// is passed in so offline and test renders are reproducible; it feeds both
// the document header and the filename.
func Render(format string, plan model.Plan, rules *program.Rules, now time.Time) (Document, error) {
	switch format {
	case FormatMarkdown, FormatMD:
		return renderMarkdown(plan, rules, now), nil
	case FormatCSV:
		return renderCSV(plan, rules, now), nil
	case FormatJSON:
		return renderJSON(plan, rules, now)
	default:
		return Document{}, fmt.Errorf("%w: %q (use: %s)", ErrUnsupportedFormat, format, strings.Join(supportedFormats, ", "))
	}
}

func filename(now time.Time, ext string) string {
	return fmt.Sprintf("studienplan_%s.%s", now.Format(filenameDateLayout), ext)
}
