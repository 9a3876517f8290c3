package verdict

import (
	"net/http"

	"github.com/veriscan-io/veriscan-cli/internal/domain/scan"
	"github.com/veriscan-io/veriscan-cli/internal/evidence"
)

// Classify maps completed evidence to a result status. It is a pure function
// with a fixed decision order; calling it twice with identical evidence
// yields the identical status.
//
// isSocialTarget widens the block handling: a blocked social or directory
// profile is evidence a human must review, never evidence of absence.
func Classify(ev *evidence.Evidence, isSocialTarget bool) scan.ResultStatus {
	if ev == nil {
		return scan.StatusError
	}

	// 1. Transport errors. "Not found" DNS answers mean the record is absent;
	// everything else is a probe failure.
	if ev.Errors != nil && ev.Errors.Code != "" {
		switch ev.Errors.Code {
		case evidence.CodeNXDomain, evidence.CodeNoRecord:
			return scan.StatusAbsent
		}
		return scan.StatusError
	}

	// 2. DNS checks classify off the parsed policy flags.
	if ev.DNS != nil {
		flags := ev.DNS.ParsedFlags
		if exists, ok := flags["exists"].(bool); ok && !exists {
			return scan.StatusAbsent
		}
		if boolFlag(flags, "isStrict") || boolFlag(flags, "hardFail") {
			return scan.StatusPresentConfirmed
		}
		return scan.StatusPresentPartial
	}

	// 3. An HTTP probe that captured no status is a failed probe.
	if ev.Fetch == nil || ev.Fetch.HTTPStatus == 0 {
		return scan.StatusError
	}

	status := ev.Fetch.HTTPStatus

	// 4. Blocked social targets require a human; the block itself proves
	// something is there.
	if isSocialTarget {
		blocked := ev.Errors != nil && ev.Errors.BlockReason != ""
		if blocked || status == http.StatusUnauthorized || status == http.StatusForbidden {
			return scan.StatusManualRequired
		}
	}

	// 5. Success responses: rich extraction confirms, a bare 2xx is partial.
	if status >= 200 && status < 300 {
		if ev.HasRichSignals() {
			return scan.StatusPresentConfirmed
		}
		return scan.StatusPresentPartial
	}

	// 6. Hard not-found means absent. Any other HTTP failure still proves a
	// server is answering there, which is weak presence, not an error.
	if status == http.StatusNotFound || status == http.StatusGone {
		return scan.StatusAbsent
	}
	return scan.StatusPresentPartial
}

func boolFlag(flags map[string]any, key string) bool {
	v, ok := flags[key].(bool)
	return ok && v
}
