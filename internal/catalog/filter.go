package catalog

import "strings"

// ServiceListing is the filtered view of the services catalog. NoResults is
// the explicit empty-state signal the listing page surfaces.
type ServiceListing struct {
	Rows      []Service `json:"rows"`
	NoResults bool      `json:"noResults"`
}

// AudienceListing is the filtered view of the audiences catalog.
type AudienceListing struct {
	Rows      []Audience `json:"rows"`
	NoResults bool       `json:"noResults"`
}

// FilterServices filters the services catalog. Category "" or "all"
// matches every service; otherwise a service matches when its id contains
// the category (hyphens ignored). The query matches case-insensitively as
// a substring of title, short, or long description; an empty query matches
// everything. The result is never nil.
func FilterServices(query, category string) ServiceListing {
	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), "-", "")

	rows := []Service{}
	for _, s := range services {
		if cat != "" && cat != "all" && !strings.Contains(strings.ReplaceAll(s.ID, "-", ""), cat) {
			continue
		}
		if q != "" && !containsFold(q, s.Title, s.Short, s.Long) {
			continue
		}
		rows = append(rows, s)
	}
	return ServiceListing{Rows: rows, NoResults: len(rows) == 0}
}

// FilterAudiences filters the audiences catalog by case-insensitive
// substring over title, short, long, and the joined segment names. The
// result is never nil.
func FilterAudiences(query string) AudienceListing {
	q := strings.ToLower(strings.TrimSpace(query))

	rows := []Audience{}
	for _, a := range audiences {
		if q != "" && !containsFold(q, a.Title, a.Short, a.Long, strings.Join(a.Segments, " ")) {
			continue
		}
		rows = append(rows, a)
	}
	return AudienceListing{Rows: rows, NoResults: len(rows) == 0}
}

// containsFold reports whether any of the fields contains the
// already-lowercased query.
func containsFold(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
