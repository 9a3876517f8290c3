package prober

import (
	"strings"

	"github.com/veriscan-io/veriscan-cli/internal/domain/entity"
	"github.com/veriscan-io/veriscan-cli/internal/domain/surface"
)

// Resolution is the outcome of target resolution: either a concrete URL to
// probe, or the list of canonical entity fields whose absence blocked it.
type Resolution struct {
	URL           string
	MissingInputs []string
}

func missing(fields ...string) Resolution {
	return Resolution{MissingInputs: fields}
}

// ResolveTarget decides the concrete URL to probe for a surface. It is a pure
// function: all ambiguity is settled by the fixed precedence below, never by
// scoring.
//
//  1. no entity profile at all
//  2. no canonical domain
//  3. profile surfaces (social / directory / knowledge) use the mapped
//     entity field
//  4. well-known paths append to the canonical domain
//  5. homepage surfaces use the canonical domain root
//  6. a canonicalInputNeeded hint naming an absent field blocks resolution
//  7. surfaces without any check mode are unresolvable
//  8. everything else defaults to the homepage
func ResolveTarget(ent *entity.CanonicalEntity, rule surface.Rule) Resolution {
	if ent == nil {
		return missing(entity.FieldEntityProfile)
	}
	domain := ent.Web.CanonicalDomain
	if domain == "" {
		return missing(entity.FieldCanonicalDomain)
	}

	switch rule.Kind.Class {
	case surface.ClassProfile:
		return resolveProfile(ent, rule.Kind.EntityField)
	case surface.ClassWellKnownPath:
		return Resolution{URL: "https://" + domain + rule.Kind.Path}
	case surface.ClassHomepage:
		return Resolution{URL: "https://" + domain}
	}

	if rule.CanonicalInput != "" && !ent.HasField(rule.CanonicalInput) {
		return missing(rule.CanonicalInput)
	}
	if rule.CheckMode == "" {
		return missing("unknown_input")
	}
	return Resolution{URL: "https://" + domain}
}

// resolveProfile turns an entity field into a probe URL. Handle-style fields
// get the platform's profile URL shape; directory fields already store full
// URLs.
func resolveProfile(ent *entity.CanonicalEntity, field string) Resolution {
	value := ent.Field(field)
	if value == "" {
		return missing(field)
	}

	handle := strings.TrimPrefix(value, "@")
	switch field {
	case entity.FieldLinkedInSlug:
		return Resolution{URL: "https://www.linkedin.com/company/" + handle}
	case entity.FieldYouTubeHandle:
		return Resolution{URL: "https://www.youtube.com/@" + handle}
	case entity.FieldXHandle:
		return Resolution{URL: "https://x.com/" + handle}
	case entity.FieldInstagramHandle:
		return Resolution{URL: "https://www.instagram.com/" + handle + "/"}
	case entity.FieldFacebookPage:
		return Resolution{URL: "https://www.facebook.com/" + handle}
	}

	// Directory and knowledge-graph fields hold full URLs already.
	return Resolution{URL: value}
}
