// Package page models the site's client-side navigation as an explicit
// finite-state machine: a closed set of pages, a parser for composite
// page names, and a pure transition function that returns the effects a
// renderer must apply. Navigation state lives only in memory and is never
// persisted or synced to the URL.
package page

import (
	"fmt"
	"strings"
)

// Page is one of the site's named pages.
type Page int

const (
	Home Page = iota
	Services
	ServicesDetail
	Audience
	AudienceDetail
	Products
	ProductsDetail
	About
	Contact
)

var pageNames = map[Page]string{
	Home:           "home",
	Services:       "services",
	ServicesDetail: "services-detail",
	Audience:       "audience",
	AudienceDetail: "audience-detail",
	Products:       "products",
	ProductsDetail: "products-detail",
	About:          "about",
	Contact:        "contact",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

// State is the current navigation state. DetailID is set only on detail
// pages.
type State struct {
	Page     Page
	DetailID string
}

// detailPrefixes maps composite-name prefixes to their detail pages.
var detailPrefixes = []struct {
	prefix string
	page   Page
}{
	{"services-detail-", ServicesDetail},
	{"audience-detail-", AudienceDetail},
	{"products-detail-", ProductsDetail},
}

// ParseTarget resolves a page name into a State. Detail pages carry the
// entity identifier in a composite name (services-detail-<id>). Unknown
// names are rejected.
func ParseTarget(target string) (State, error) {
	for _, d := range detailPrefixes {
		if strings.HasPrefix(target, d.prefix) {
			id := strings.TrimPrefix(target, d.prefix)
			if id == "" {
				return State{}, fmt.Errorf("page %q: missing detail id", target)
			}
			return State{Page: d.page, DetailID: id}, nil
		}
	}
	for p, name := range pageNames {
		if target == name {
			// Bare detail names are only reachable with an id.
			if p == ServicesDetail || p == AudienceDetail || p == ProductsDetail {
				return State{}, fmt.Errorf("page %q: missing detail id", target)
			}
			return State{Page: p}, nil
		}
	}
	return State{}, fmt.Errorf("unknown page %q", target)
}

// EffectKind enumerates the render-side effects of a navigation.
type EffectKind int

const (
	// HidePage removes the previously active page from view.
	HidePage EffectKind = iota
	// ShowPage makes the newly active page visible.
	ShowPage
	// RefilterServices recomputes the filtered services listing.
	RefilterServices
	// RefilterAudiences recomputes the filtered audiences listing.
	RefilterAudiences
	// RenderServiceDetail fills the service detail view for DetailID.
	RenderServiceDetail
	// RenderAudienceDetail fills the audience detail view for DetailID.
	RenderAudienceDetail
	// RenderProductDetail fills the product detail view for DetailID.
	RenderProductDetail
	// RenderCaseStudies fills the case studies listing.
	RenderCaseStudies
	// RenderAbout fills the about page content.
	RenderAbout
)

// Effect is one render instruction produced by Navigate. The transition
// function computes effects; applying them (DOM work, in the browser) is
// the renderer's job.
type Effect struct {
	Kind     EffectKind
	Page     Page
	DetailID string
}

// Navigate computes the transition from the current state to the target
// page name. It returns the next state and the ordered effects to apply.
// The current state is returned unchanged on an invalid target.
func Navigate(cur State, target string) (State, []Effect, error) {
	next, err := ParseTarget(target)
	if err != nil {
		return cur, nil, err
	}

	var effects []Effect

	// Detail content is prepared before the page swap so the incoming
	// page is never shown empty.
	switch next.Page {
	case ServicesDetail:
		effects = append(effects, Effect{Kind: RenderServiceDetail, DetailID: next.DetailID})
	case AudienceDetail:
		effects = append(effects, Effect{Kind: RenderAudienceDetail, DetailID: next.DetailID})
	case ProductsDetail:
		effects = append(effects, Effect{Kind: RenderProductDetail, DetailID: next.DetailID})
	}

	if cur.Page != next.Page {
		effects = append(effects, Effect{Kind: HidePage, Page: cur.Page})
	}
	effects = append(effects, Effect{Kind: ShowPage, Page: next.Page})

	switch next.Page {
	case Services:
		effects = append(effects, Effect{Kind: RefilterServices})
	case Audience:
		effects = append(effects, Effect{Kind: RefilterAudiences})
	case Products:
		effects = append(effects, Effect{Kind: RenderCaseStudies})
	case About:
		effects = append(effects, Effect{Kind: RenderAbout})
	}

	return next, effects, nil
}

// Root returns the navigation root for a page, used to highlight the
// matching top-level nav entry (services-detail highlights services).
func (p Page) Root() Page {
	switch p {
	case ServicesDetail:
		return Services
	case AudienceDetail:
		return Audience
	case ProductsDetail:
		return Products
	default:
		return p
	}
}
