package commands

import "github.com/de-tools/report-builder/pkg/models/domain"

// Reporter renders a built report configuration for the console.
type Reporter interface {
	Handle(report *domain.Report) error
}
