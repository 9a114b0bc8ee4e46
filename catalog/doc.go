// Package catalog loads and saves assessment catalogs.
//
// Catalogs are flat files in JSON or CSV form. Both formats carry the same
// fields; CSV joins multi-valued test types with a pipe. A built-in sample
// catalog is available through Sample for development and seeding.
package catalog
