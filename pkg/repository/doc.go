// Package repository discovers installed packages under a list of search
// roots and selects versions and variants for requests.
//
// Each root is laid out as <root>/<name>/<version>/<descriptor>. When the
// same name and version exist under several roots the first root wins,
// the way PATH lookups do.
package repository
