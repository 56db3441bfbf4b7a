package view

import "strings"

// CategoryOption describes a selectable technology category for the admin UI.
type CategoryOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type categoryAsset struct {
	Key   string
	Label string
	SVG   string
}

var (
	categoryDefinitions = []categoryAsset{
		{Key: "linguagens", Label: "Linguagens", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M17.25 6.75 22.5 12l-5.25 5.25m-10.5 0L1.5 12l5.25-5.25m7.5-3-4.5 16.5"/></svg>`},
		{Key: "markups-estilos", Label: "Markups & Estilos", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M9.53 16.122a3 3 0 0 0-5.78 1.128 2.25 2.25 0 0 1-2.4 2.245 4.5 4.5 0 0 0 8.4-2.245c0-.399-.078-.78-.22-1.128Zm0 0a15.998 15.998 0 0 0 3.388-1.62m-5.043-.025a15.994 15.994 0 0 1 1.622-3.395m3.42 3.42a15.995 15.995 0 0 0 4.764-4.648l3.876-5.814a1.151 1.151 0 0 0-1.597-1.597L14.146 6.32a15.996 15.996 0 0 0-4.649 4.763"/></svg>`},
		{Key: "frameworks-libs", Label: "Frameworks & Libs", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="m21 7.5-9-5.25L3 7.5m18 0-9 5.25m9-5.25v9l-9 5.25M3 7.5l9 5.25M3 7.5v9l9 5.25m0-9v9"/></svg>`},
		{Key: "infra-devops", Label: "Infra & DevOps", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M2.25 15a4.5 4.5 0 0 0 4.5 4.5H18a3.75 3.75 0 0 0 1.332-7.257 3 3 0 0 0-3.758-3.848 5.25 5.25 0 0 0-10.233 2.33A4.502 4.502 0 0 0 2.25 15Z"/></svg>`},
		{Key: "gerenciamento-dados", Label: "Gerenciamento de Dados", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M20.25 6.375c0 2.278-3.694 4.125-8.25 4.125S3.75 8.653 3.75 6.375m16.5 0c0-2.278-3.694-4.125-8.25-4.125S3.75 4.097 3.75 6.375m16.5 0v11.25c0 2.278-3.694 4.125-8.25 4.125s-8.25-1.847-8.25-4.125V6.375"/></svg>`},
		{Key: "ferramentas-utilitarios", Label: "Ferramentas & Utilitários", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M11.42 15.17 17.25 21A2.652 2.652 0 0 0 21 17.25l-5.877-5.877M11.42 15.17l2.496-3.03c.317-.384.74-.626 1.208-.766M11.42 15.17l-4.655 5.653a2.548 2.548 0 1 1-3.586-3.586l6.837-5.63m5.108-.233c.55-.164 1.163-.188 1.743-.14a4.5 4.5 0 0 0 4.486-6.336l-3.276 3.277a3.004 3.004 0 0 1-2.25-2.25l3.276-3.276a4.5 4.5 0 0 0-6.336 4.486c.091 1.076-.071 2.264-.904 2.95l-.102.085"/></svg>`},
	}
	defaultCategory = categoryAsset{Key: "default", Label: "Outros", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M12 6.042A8.967 8.967 0 0 0 6 3.75c-1.052 0-2.062.18-3 .512v14.25A8.987 8.987 0 0 1 6 18c2.305 0 4.408.867 6 2.292m0-14.25a8.966 8.966 0 0 1 6-2.292c1.052 0 2.062.18 3 .512v14.25A8.987 8.987 0 0 0 18 18a8.967 8.967 0 0 0-6 2.292m0-14.25v14.25"/></svg>`}
	categoryByLabel = func() map[string]categoryAsset {
		lookup := make(map[string]categoryAsset, len(categoryDefinitions))
		for _, c := range categoryDefinitions {
			lookup[c.Label] = c
		}
		return lookup
	}()
)

// CategoryOptions exposes the fixed category catalogue in display order.
func CategoryOptions() []CategoryOption {
	options := make([]CategoryOption, 0, len(categoryDefinitions))
	for _, c := range categoryDefinitions {
		options = append(options, CategoryOption{Key: c.Key, Label: c.Label})
	}
	return options
}

// CategoryLabels returns the stored category values.
func CategoryLabels() []string {
	labels := make([]string, 0, len(categoryDefinitions))
	for _, c := range categoryDefinitions {
		labels = append(labels, c.Label)
	}
	return labels
}

// IsCategory reports whether label is one of the catalogue entries.
func IsCategory(label string) bool {
	_, ok := categoryByLabel[strings.TrimSpace(label)]
	return ok
}

// CategorySVG resolves the icon for a stored category label, falling back to the default icon.
func CategorySVG(label string) string {
	if c, ok := categoryByLabel[strings.TrimSpace(label)]; ok {
		return c.SVG
	}
	return defaultCategory.SVG
}

// CategoryGroup is one category with its technologies, as shown on the index page.
type CategoryGroup[T any] struct {
	Label string
	SVG   string
	Items []T
}

// GroupByCategory buckets items by category in catalogue order. Items with an
// unknown category are collected last under the default group.
func GroupByCategory[T any](items []T, category func(T) string) []CategoryGroup[T] {
	buckets := make(map[string][]T, len(categoryDefinitions))
	var others []T
	for _, item := range items {
		label := strings.TrimSpace(category(item))
		if _, ok := categoryByLabel[label]; ok {
			buckets[label] = append(buckets[label], item)
			continue
		}
		others = append(others, item)
	}

	groups := make([]CategoryGroup[T], 0, len(categoryDefinitions)+1)
	for _, c := range categoryDefinitions {
		if len(buckets[c.Label]) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup[T]{Label: c.Label, SVG: c.SVG, Items: buckets[c.Label]})
	}
	if len(others) > 0 {
		groups = append(groups, CategoryGroup[T]{Label: defaultCategory.Label, SVG: defaultCategory.SVG, Items: others})
	}
	return groups
}
