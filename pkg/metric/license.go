package metric

import (
	"context"
	"strings"

	"github.com/mchmarny/modelrep/pkg/artifact"
)

// compatibleLicenses are tokens that indicate a permissive, redistributable
// license. Matching is substring-based and case-insensitive.
var compatibleLicenses = []string{
	"mit",
	"bsd",
	"bsd-2-clause",
	"bsd-3-clause",
	"apache",
	"apache-2.0",
	"apache 2.0",
	"lgpl",
	"lgpl-2.1",
	"lgplv2.1",
	"cc0",
	"public domain",
	"public-domain",
	"open source",
	"permissive",
	"free",
}

// readmePatterns are literal phrases checked when neither the license field
// nor the raw readme text yields a match.
var readmePatterns = []string{
	"license: mit",
	"license: apache",
	"license: bsd",
	"mit license",
	"apache license",
	"bsd license",
}

// LicenseMetric scores 1.0 for any compatible license signal, 0.0 otherwise.
type LicenseMetric struct{}

func (m LicenseMetric) Name() string {
	return "license"
}

func (m LicenseMetric) Score(_ context.Context, a *artifact.Metadata) (float64, error) {
	if a == nil {
		return 0, nil
	}

	license := strings.ToLower(strings.TrimSpace(a.License))
	if license != "" && containsAny(license, compatibleLicenses) {
		return 1.0, nil
	}

	readme := strings.ToLower(a.Readme)
	if readme == "" {
		return 0, nil
	}
	if containsAny(readme, compatibleLicenses) {
		return 1.0, nil
	}
	if containsAny(readme, readmePatterns) {
		return 1.0, nil
	}

	return 0, nil
}
