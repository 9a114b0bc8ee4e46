// Package intent maps free-text hiring queries to a small taxonomy of
// skill, ability, and level tags via keyword matching. The extracted intent
// drives the category balancing decision in the recommendation engine; it
// never influences ranking scores directly.
package intent
