package prober

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/veriscan-io/veriscan-cli/internal/evidence"
	consts "github.com/veriscan-io/veriscan-cli/internal/shared/constants"
)

// DNSProber resolves TXT records for policy surfaces (SPF, DMARC, DKIM,
// MTA-STS, BIMI, TLS-RPT) and parses their policy flags.
type DNSProber struct {
	Timeout     time.Duration
	Nameservers []string // optional custom nameservers
	Resolver    *net.Resolver
}

func (d *DNSProber) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return consts.DNSTimeout
}

func (d *DNSProber) resolver() *net.Resolver {
	if d.Resolver != nil {
		return d.Resolver
	}
	r := &net.Resolver{PreferGo: true}
	if len(d.Nameservers) > 0 {
		dialer := &net.Dialer{Timeout: d.timeout()}
		nameserver := d.Nameservers[0]
		r.Dial = func(ctx context.Context, network, address string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, nameserver)
		}
	}
	return r
}

// QueryName derives the DNS name to look up for a record type. Policy records
// live under fixed prefixes; everything else queries the domain directly.
func QueryName(domain, recordType string) string {
	switch recordType {
	case "DMARC":
		return "_dmarc." + domain
	case "DKIM":
		return "default._domainkey." + domain
	case "MTA-STS":
		return "_mta-sts." + domain
	case "BIMI":
		return "default._bimi." + domain
	case "TLS-RPT":
		return "_smtp._tls." + domain
	}
	return domain
}

// Query resolves TXT records for the derived name and returns evidence. It
// never returns an error: lookup failures are recorded in the errors group.
func (d *DNSProber) Query(ctx context.Context, domain, recordType string) *evidence.Evidence {
	queried := QueryName(domain, recordType)
	ev := evidence.New(queried, "TXT", "DNS")
	ev.DNS = &evidence.DNS{
		RecordType:  recordType,
		QueriedHost: queried,
	}

	lookupCtx, cancel := context.WithTimeout(ctx, d.timeout())
	defer cancel()

	values, err := d.resolver().LookupTXT(lookupCtx, queried)
	if err != nil {
		var dnsErr *net.DNSError
		switch {
		case errors.As(err, &dnsErr) && dnsErr.IsNotFound:
			ev.SetError(evidence.CodeNXDomain, err.Error())
		case errors.As(err, &dnsErr) && strings.Contains(dnsErr.Err, "no answer"):
			ev.SetError(evidence.CodeNoRecord, err.Error())
		default:
			ev.SetError(evidence.CodeDNSError, err.Error())
		}
		return ev
	}

	if len(values) == 0 {
		ev.SetError(evidence.CodeNoRecord, "no TXT records returned for "+queried)
		ev.DNS.ParsedFlags = map[string]any{"exists": false}
		return ev
	}

	ev.DNS.Values = values
	ev.DNS.ParsedFlags = parseTXTFlags(recordType, values[0])
	return ev
}

// parseTXTFlags interprets the first TXT record per fixed per-type rules.
func parseTXTFlags(recordType, record string) map[string]any {
	flags := map[string]any{"exists": true}

	switch recordType {
	case "DMARC":
		flags["valid"] = strings.HasPrefix(record, "v=DMARC1")
		if policy := tagValue(record, "p"); policy != "" {
			flags["dmarcPolicy"] = policy
			flags["isStrict"] = policy == "reject" || policy == "quarantine"
		}
		if rua := tagValue(record, "rua"); rua != "" {
			flags["rua"] = rua
		}
	case "SPF":
		valid := strings.HasPrefix(record, "v=spf1")
		flags["valid"] = valid
		flags["hardFail"] = strings.Contains(record, "-all")
		flags["softFail"] = strings.Contains(record, "~all")
	case "DKIM":
		flags["hasPublicKey"] = tagValue(record, "p") != ""
	case "MTA-STS":
		flags["valid"] = strings.HasPrefix(record, "v=STSv1")
	case "BIMI":
		flags["valid"] = strings.HasPrefix(record, "v=BIMI1")
		if logo := tagValue(record, "l"); logo != "" {
			flags["logoUrl"] = logo
		}
	case "TLS-RPT":
		flags["valid"] = strings.HasPrefix(record, "v=TLSRPTv1")
		if rua := tagValue(record, "rua"); rua != "" {
			flags["rua"] = rua
		}
	}

	return flags
}

// tagValue extracts a value from a semicolon-separated tag=value record.
func tagValue(record, tag string) string {
	for _, part := range strings.Split(record, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, tag+"=") {
			return strings.TrimSpace(strings.TrimPrefix(part, tag+"="))
		}
	}
	return ""
}
