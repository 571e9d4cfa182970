// Package forms holds the static translation catalogs of the questionnaire app.
//
// The catalogs are built once at package initialization and never change.
// All three embed the same audio recorder and salesperson subtrees.
package forms

import "github.com/dmitrymomot/formcatalog/core/catalog"

// Catalog names.
const (
	GeneralName    = "general"
	ApparelName    = "apparel"
	IndustrialName = "industrial"
)

// General returns the catalog with the app chrome and the FMCG questionnaire.
func General() *catalog.Catalog { return general }

// Apparel returns the apparel brand questionnaire catalog.
func Apparel() *catalog.Catalog { return apparel }

// Industrial returns the industrial goods questionnaire catalog.
func Industrial() *catalog.Catalog { return industrial }

// All returns every catalog in a fixed order: general, apparel, industrial.
func All() []*catalog.Catalog {
	return []*catalog.Catalog{general, apparel, industrial}
}

// Names returns the catalog names in the order of All.
func Names() []string {
	return []string{GeneralName, ApparelName, IndustrialName}
}

// Get returns the catalog with the given name.
func Get(name string) (*catalog.Catalog, bool) {
	switch name {
	case GeneralName:
		return general, true
	case ApparelName:
		return apparel, true
	case IndustrialName:
		return industrial, true
	}
	return nil, false
}

// CheckShared compares every shared subtree of cs against the first catalog.
// It returns one line per difference, prefixed with the catalog name.
func CheckShared(cs ...*catalog.Catalog) []string {
	if len(cs) < 2 {
		return nil
	}

	var out []string
	base := cs[0]
	for _, c := range cs[1:] {
		for _, prefix := range SharedSubtrees {
			for _, d := range catalog.CompareShape(base, c, prefix) {
				out = append(out, c.Name()+": "+d)
			}
			for _, p := range catalog.CompareText(base, c, prefix) {
				out = append(out, c.Name()+": text differs at "+p)
			}
		}
	}
	return out
}
