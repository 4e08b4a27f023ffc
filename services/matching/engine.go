package matching

import (
	"strings"

	"raisedesk/models"
)

// stringSet is a hash set of labels.
type stringSet map[string]struct{}

func newStringSet(values []string) stringSet {
	set := make(stringSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// FindMatches returns the clients that satisfy every preference of investor
// and are currently raising, in their input order. An empty preference set
// matches nothing. The result is never nil.
func FindMatches(investor models.Investor, clients []models.Client) []models.Client {
	matches := []models.Client{}
	if len(clients) == 0 {
		return matches
	}

	sectors := newStringSet(investor.PreferredSectors)
	stages := newStringSet(investor.PreferredStages)
	geographies := newStringSet(investor.PreferredGeographies)

	for _, c := range clients {
		if c.Status != models.ClientStatusRaising {
			continue
		}
		if !sectors.has(c.Sector) || !stages.has(c.Stage) || !geographies.has(c.Geography) {
			continue
		}
		if !investor.InvestmentSize.Contains(c.FundingNeeded) {
			continue
		}
		matches = append(matches, c)
	}
	return matches
}

// FilterInvestors narrows investors by a case-insensitive search over name,
// company and email, and by the sector, stage and geography facets. Facets
// are conjunctive and an empty value imposes no constraint.
func FilterInvestors(investors []models.Investor, q models.InvestorQuery) []models.Investor {
	search := strings.ToLower(q.Search)
	out := []models.Investor{}
	for _, inv := range investors {
		if search != "" && !containsAny(search, inv.Name, inv.Company, inv.Email) {
			continue
		}
		if q.Sector != "" && !contains(inv.PreferredSectors, q.Sector) {
			continue
		}
		if q.Stage != "" && !contains(inv.PreferredStages, q.Stage) {
			continue
		}
		if q.Geography != "" && !contains(inv.PreferredGeographies, q.Geography) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// FilterClients applies the same search over name, company and email, with
// facets compared by equality against the client's single labels.
func FilterClients(clients []models.Client, q models.ClientQuery) []models.Client {
	search := strings.ToLower(q.Search)
	out := []models.Client{}
	for _, c := range clients {
		if search != "" && !containsAny(search, c.Name, c.Company, c.Email) {
			continue
		}
		if (q.Sector != "" && c.Sector != q.Sector) ||
			(q.Stage != "" && c.Stage != q.Stage) ||
			(q.Geography != "" && c.Geography != q.Geography) ||
			(q.Status != "" && c.Status != q.Status) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// containsAny reports whether the lower-cased needle occurs in any field.
func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
