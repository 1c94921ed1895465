package progress

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/directory"
)

// Certificate attests that an employee completed a module.
type Certificate struct {
	Employee    directory.Employee
	Module      catalog.Module
	CompletedAt time.Time
}

// Certificates returns one certificate per completed module in s.
func Certificates(s *Summary) []Certificate {
	var out []Certificate
	for _, m := range s.Modules {
		if m.Status != Completed {
			continue
		}
		out = append(out, Certificate{
			Employee:    s.Employee,
			Module:      m.Module,
			CompletedAt: m.CompletedAt,
		})
	}
	return out
}

var nonWord = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Filename returns a file name for the certificate.
func (c Certificate) Filename() string {
	title := strings.Trim(nonWord.ReplaceAllString(c.Module.Title, "_"), "_")
	return fmt.Sprintf("Certificate_%s.txt", title)
}

// WriteText renders the certificate as plain text.
func (c Certificate) WriteText(w io.Writer) error {
	rule := strings.Repeat("═", 51)
	lines := []string{
		rule,
		centered("CERTIFICATE OF COMPLETION", 51),
		rule,
		"",
		centered("Employee Legacy Readiness Education", 51),
		"",
		"This certifies that",
		"",
		centered(c.Employee.Name(), 51),
		"",
		"has successfully completed the module:",
		"",
		centered(fmt.Sprintf("%q", c.Module.Title), 51),
		"",
		fmt.Sprintf("Date: %s", c.CompletedAt.Format("January 2, 2006")),
		"",
		rule,
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
