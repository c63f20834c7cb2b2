package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/randalmurphal/laskit/data"
)

// ErrOutput indicates an artifact could not be written.
var ErrOutput = errors.New("output failed")

// CSV renders a header list and data matrix under the canonical contract:
//
//	join(header, ",") + "\n" + join(each row joined on ",", "\n")
//
// A matrix with no rows still yields the header line followed by a
// newline.
func CSV(header []string, m data.Matrix) string {
	lines := make([]string, 0, len(m))
	for _, row := range m {
		lines = append(lines, strings.Join(row.Strings(), ","))
	}
	return strings.Join(header, ",") + "\n" + strings.Join(lines, "\n")
}

// WriteCSV renders the CSV artifact to a writer.
func WriteCSV(w io.Writer, header []string, m data.Matrix) error {
	if _, err := io.WriteString(w, CSV(header, m)); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}
