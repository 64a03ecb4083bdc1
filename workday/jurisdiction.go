package workday

import "strings"

// Jurisdiction identifies an Australian state or territory by its code.
type Jurisdiction string

// The eight Australian jurisdiction codes. Codes are case-sensitive.
const (
	ACT Jurisdiction = "ACT"
	NSW Jurisdiction = "NSW"
	NT  Jurisdiction = "NT"
	QLD Jurisdiction = "QLD"
	SA  Jurisdiction = "SA"
	TAS Jurisdiction = "TAS"
	VIC Jurisdiction = "VIC"
	WA  Jurisdiction = "WA"
)

// JurisdictionNone means no jurisdiction was supplied: only the weekday rule
// applies and no holiday exclusion is performed.
const JurisdictionNone Jurisdiction = ""

// Jurisdictions lists the valid codes in the order they are reported to
// callers.
var Jurisdictions = []Jurisdiction{ACT, NSW, NT, QLD, SA, TAS, VIC, WA}

// detailUnknownJurisdiction names every valid code, matching the order of
// Jurisdictions.
var detailUnknownJurisdiction = "Invalid state. Must be one of " + joinJurisdictions()

func joinJurisdictions() string {
	codes := make([]string, len(Jurisdictions))
	for i, j := range Jurisdictions {
		codes[i] = string(j)
	}
	return strings.Join(codes, ", ")
}

// ParseJurisdiction validates a raw state code. Empty text yields
// JurisdictionNone; anything else must be one of the enumerated codes.
func ParseJurisdiction(text string) (Jurisdiction, error) {
	if text == "" {
		return JurisdictionNone, nil
	}
	for _, j := range Jurisdictions {
		if Jurisdiction(text) == j {
			return j, nil
		}
	}
	return JurisdictionNone, newValidationError(ErrUnknownJurisdiction, detailUnknownJurisdiction)
}
